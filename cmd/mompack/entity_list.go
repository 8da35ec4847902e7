// Entity list command prints the current version's entities.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var entityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List entities",
	Long: `List prints every entity in the current version in declaration order.

Example:
  mompack entity list
  mompack entity list --json`,
	Args: cobra.NoArgs,
	RunE: runEntityList,
}

func runEntityList(cmd *cobra.Command, args []string) error {
	doc, err := openDocument()
	if err != nil {
		return err
	}
	m := doc.Model()

	if flagJSON {
		type row struct {
			Name              string `json:"name"`
			ClassName         string `json:"className,omitempty"`
			ParentEntity      string `json:"parentEntity,omitempty"`
			IsAbstract        bool   `json:"isAbstract"`
			Attributes        int    `json:"attributes"`
			Relationships     int    `json:"relationships"`
			FetchedProperties int    `json:"fetchedProperties"`
		}
		rows := make([]row, 0, len(m.Entities))
		for _, e := range m.Entities {
			rows = append(rows, row{
				Name:              e.Name,
				ClassName:         e.ClassName,
				ParentEntity:      e.ParentEntity,
				IsAbstract:        e.IsAbstract,
				Attributes:        len(e.Attributes),
				Relationships:     len(e.Relationships),
				FetchedProperties: len(e.FetchedProperties),
			})
		}
		return printJSON(rows)
	}

	for _, e := range m.Entities {
		line := e.Name
		if e.ParentEntity != "" {
			line += " : " + e.ParentEntity
		}
		if e.IsAbstract {
			line += " (abstract)"
		}
		fmt.Printf("%s  (%d attributes, %d relationships, %d fetched properties)\n",
			line, len(e.Attributes), len(e.Relationships), len(e.FetchedProperties))
	}
	return nil
}
