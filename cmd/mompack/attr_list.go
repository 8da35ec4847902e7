// Attr list command prints an entity's attributes.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var attrListCmd = &cobra.Command{
	Use:   "list <entity>",
	Short: "List an entity's attributes",
	Long: `List prints every attribute of the named entity in declaration order.

Example:
  mompack attr list Person
  mompack attr list Person --json`,
	Args: cobra.ExactArgs(1),
	RunE: runAttrList,
}

func runAttrList(cmd *cobra.Command, args []string) error {
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
			Name         string  `json:"name"`
			Type         string  `json:"type"`
			DefaultValue *string `json:"defaultValue,omitempty"`
			IsOptional   bool    `json:"isOptional"`
			IsTransient  bool    `json:"isTransient"`
			IsIndexed    bool    `json:"isIndexed"`
		}
		rows := make([]row, 0, len(e.Attributes))
		for _, a := range e.Attributes {
			rows = append(rows, row{
				Name:         a.Name,
				Type:         a.Type,
				DefaultValue: a.DefaultValue,
				IsOptional:   a.IsOptional,
				IsTransient:  a.IsTransient,
				IsIndexed:    a.IsIndexed,
			})
		}
		return printJSON(rows)
	}

	for _, a := range e.Attributes {
		line := fmt.Sprintf("%s  %s", a.Name, a.Type)
		if !a.IsOptional {
			line += "  required"
		}
		if a.IsTransient {
			line += "  transient"
		}
		if a.IsIndexed {
			line += "  indexed"
		}
		if a.DefaultValue != nil {
			line += fmt.Sprintf("  default=%q", *a.DefaultValue)
		}
		fmt.Println(line)
	}
	return nil
}
