// Fp list command prints an entity's fetched properties.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fpListCmd = &cobra.Command{
	Use:   "list <entity>",
	Short: "List an entity's fetched properties",
	Long: `List prints every fetched property of the named entity in declaration
order.

Example:
  mompack fp list Person
  mompack fp list Person --json`,
	Args: cobra.ExactArgs(1),
	RunE: runFpList,
}

func runFpList(cmd *cobra.Command, args []string) error {
	doc, err := openDocument()
	if err != nil {
		return err
	}
	e, err := findEntity(doc.Model(), args[0])
	if err != nil {
		return err
	}

	if flagJSON {
		type row struct {
			Name       string `json:"name"`
			Predicate  string `json:"predicate"`
			FetchLimit *int   `json:"fetchLimit,omitempty"`
		}
		rows := make([]row, 0, len(e.FetchedProperties))
		for _, fp := range e.FetchedProperties {
			rows = append(rows, row{Name: fp.Name, Predicate: fp.Predicate, FetchLimit: fp.FetchLimit})
		}
		return printJSON(rows)
	}

	for _, fp := range e.FetchedProperties {
		line := fmt.Sprintf("%s  %q", fp.Name, fp.Predicate)
		if fp.FetchLimit != nil {
			line += fmt.Sprintf("  limit=%d", *fp.FetchLimit)
		}
		fmt.Println(line)
	}
	return nil
}
