// Rel list command prints an entity's relationships.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var relListCmd = &cobra.Command{
	Use:   "list <entity>",
	Short: "List an entity's relationships",
	Long: `List prints every relationship of the named entity in declaration order.

Example:
  mompack rel list Person
  mompack rel list Person --json`,
	Args: cobra.ExactArgs(1),
	RunE: runRelList,
}

func runRelList(cmd *cobra.Command, args []string) error {
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
			Name                string `json:"name"`
			DestinationEntity   string `json:"destinationEntity"`
			InverseRelationship string `json:"inverseRelationship,omitempty"`
			DeleteRule          string `json:"deleteRule"`
			IsToMany            bool   `json:"isToMany"`
			IsOrdered           bool   `json:"isOrdered"`
			IsOptional          bool   `json:"isOptional"`
			IsTransient         bool   `json:"isTransient"`
			MinCount            *int   `json:"minCount,omitempty"`
			MaxCount            *int   `json:"maxCount,omitempty"`
		}
		rows := make([]row, 0, len(e.Relationships))
		for _, r := range e.Relationships {
			rows = append(rows, row{
				Name:                r.Name,
				DestinationEntity:   r.DestinationEntity,
				InverseRelationship: r.InverseRelationship,
				DeleteRule:          r.DeleteRule,
				IsToMany:            r.IsToMany,
				IsOrdered:           r.IsOrdered,
				IsOptional:          r.IsOptional,
				IsTransient:         r.IsTransient,
				MinCount:            r.MinCount,
				MaxCount:            r.MaxCount,
			})
		}
		return printJSON(rows)
	}

	for _, r := range e.Relationships {
		arrow := "->"
		if r.IsToMany {
			arrow = "->>"
		}
		line := fmt.Sprintf("%s %s %s  (%s)", r.Name, arrow, r.DestinationEntity, r.DeleteRule)
		if r.InverseRelationship != "" {
			line += "  inverse=" + r.InverseRelationship
		}
		if r.IsOrdered {
			line += "  ordered"
		}
		if !r.IsOptional {
			line += "  required"
		}
		if r.IsTransient {
			line += "  transient"
		}
		fmt.Println(line)
	}
	return nil
}
