// Attr remove command deletes an attribute from an entity.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var attrRemoveCmd = &cobra.Command{
	Use:   "remove <entity> <name>",
	Short: "Remove an attribute",
	Long: `Remove deletes the first attribute with the given name from the named
entity.

Example:
  mompack attr remove Person age`,
	Args: cobra.ExactArgs(2),
	RunE: runAttrRemove,
}

func runAttrRemove(cmd *cobra.Command, args []string) error {
	entityName, name := args[0], args[1]

	doc, err := openDocument()
	if err != nil {
		return err
	}
	e, err := findEntity(doc.Model(), entityName)
	if err != nil {
		return err
	}
	a, err := findAttribute(e, name)
	if err != nil {
		return err
	}
	doc.RemoveAttribute(e.ID, a.ID)
	if err := saveDocument(doc); err != nil {
		return err
	}

	fmt.Printf("Removed attribute %s from %s\n", name, entityName)
	return nil
}
