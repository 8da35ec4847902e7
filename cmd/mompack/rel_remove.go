// Rel remove command deletes a relationship from an entity.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var relRemoveCmd = &cobra.Command{
	Use:   "remove <entity> <name>",
	Short: "Remove a relationship",
	Long: `Remove deletes the first relationship with the given name from the named
entity. An inverse on the destination keeps its dangling name; mompack
check reports it.

Example:
  mompack rel remove Person employer`,
	Args: cobra.ExactArgs(2),
	RunE: runRelRemove,
}

func runRelRemove(cmd *cobra.Command, args []string) error {
	entityName, name := args[0], args[1]

	doc, err := openDocument()
	if err != nil {
		return err
	}
	e, err := findEntity(doc.Model(), entityName)
	if err != nil {
		return err
	}
	r, err := findRelationship(e, name)
	if err != nil {
		return err
	}
	doc.RemoveRelationship(e.ID, r.ID)
	if err := saveDocument(doc); err != nil {
		return err
	}

	fmt.Printf("Removed relationship %s from %s\n", name, entityName)
	return nil
}
