// Versions list command prints the package's version names.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List version names",
	Long: `List prints every version name in lexicographic order, with the current
version marked.

Example:
  mompack versions list
  mompack versions list --json`,
	Args: cobra.NoArgs,
	RunE: runVersionsList,
}

func runVersionsList(cmd *cobra.Command, args []string) error {
	doc, err := openDocument()
	if err != nil {
		return err
	}

	if flagJSON {
		type row struct {
			Name    string `json:"name"`
			Current bool   `json:"current"`
		}
		rows := make([]row, 0, len(doc.VersionNames()))
		for _, name := range doc.VersionNames() {
			rows = append(rows, row{Name: name, Current: name == doc.CurrentVersion()})
		}
		return printJSON(rows)
	}

	for _, name := range doc.VersionNames() {
		marker := " "
		if name == doc.CurrentVersion() {
			marker = "*"
		}
		fmt.Println(marker, name)
	}
	return nil
}
