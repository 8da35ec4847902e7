// Configuration list command prints the current version's configurations.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var configurationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configurations",
	Long: `List prints every configuration in the current version with its member
entities.

Example:
  mompack config list
  mompack config list --json`,
	Args: cobra.NoArgs,
	RunE: runConfigurationList,
}

func runConfigurationList(cmd *cobra.Command, args []string) error {
	doc, err := openDocument()
	if err != nil {
		return err
	}
	m := doc.Model()

	if flagJSON {
		type row struct {
			Name           string   `json:"name"`
			MemberEntities []string `json:"memberEntities"`
		}
		rows := make([]row, 0, len(m.Configurations))
		for _, c := range m.Configurations {
			rows = append(rows, row{Name: c.Name, MemberEntities: c.MemberEntities})
		}
		return printJSON(rows)
	}

	for _, c := range m.Configurations {
		fmt.Printf("%s  [%s]\n", c.Name, strings.Join(c.MemberEntities, ", "))
	}
	return nil
}
