// Info command summarizes a package.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionInfo is one version's summary row for info output.
type versionInfo struct {
	Name              string `json:"name"`
	Current           bool   `json:"current"`
	Entities          int    `json:"entities"`
	Configurations    int    `json:"configurations"`
	Attributes        int    `json:"attributes"`
	Relationships     int    `json:"relationships"`
	FetchedProperties int    `json:"fetchedProperties"`
}

// packageInfo is the full info output.
type packageInfo struct {
	Name     string        `json:"name"`
	Path     string        `json:"path"`
	Versions []versionInfo `json:"versions"`
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Summarize the package and its versions",
	Long: `Info lists every version in the package with the current version marked
and per-version object counts.

Example:
  mompack info --package Library.xcdatamodeld
  mompack info --json`,
	Args: cobra.NoArgs,
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	doc, err := openDocument()
	if err != nil {
		return err
	}

	info := packageInfo{
		Name: doc.Name(),
		Path: doc.Path(),
	}
	for _, name := range doc.VersionNames() {
		m, _ := doc.Version(name)
		row := versionInfo{
			Name:           name,
			Current:        name == doc.CurrentVersion(),
			Entities:       len(m.Entities),
			Configurations: len(m.Configurations),
		}
		for _, e := range m.Entities {
			row.Attributes += len(e.Attributes)
			row.Relationships += len(e.Relationships)
			row.FetchedProperties += len(e.FetchedProperties)
		}
		info.Versions = append(info.Versions, row)
	}

	if flagJSON {
		return printJSON(info)
	}

	fmt.Println("Package:", info.Name)
	fmt.Println("Path:   ", info.Path)
	for _, row := range info.Versions {
		marker := " "
		if row.Current {
			marker = "*"
		}
		fmt.Printf("%s %s  (%d entities, %d configurations, %d attributes, %d relationships, %d fetched properties)\n",
			marker, row.Name, row.Entities, row.Configurations, row.Attributes, row.Relationships, row.FetchedProperties)
	}
	return nil
}
