// Fp remove command deletes a fetched property from an entity.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fpRemoveCmd = &cobra.Command{
	Use:   "remove <entity> <name>",
	Short: "Remove a fetched property",
	Long: `Remove deletes the first fetched property with the given name from the
named entity.

Example:
  mompack fp remove Person adults`,
	Args: cobra.ExactArgs(2),
	RunE: runFpRemove,
}

func runFpRemove(cmd *cobra.Command, args []string) error {
	entityName, name := args[0], args[1]

	doc, err := openDocument()
	if err != nil {
		return err
	}
	e, err := findEntity(doc.Model(), entityName)
	if err != nil {
		return err
	}
	fp, err := findFetchedProperty(e, name)
	if err != nil {
		return err
	}
	doc.RemoveFetchedProperty(e.ID, fp.ID)
	if err := saveDocument(doc); err != nil {
		return err
	}

	fmt.Printf("Removed fetched property %s from %s\n", name, entityName)
	return nil
}
