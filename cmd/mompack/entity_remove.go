// Entity remove command deletes an entity from the current version.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var entityRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove an entity",
	Long: `Remove deletes the first entity with the given name. Relationships and
configurations referring to it keep the dangling name; mompack check
reports those.

Example:
  mompack entity remove Person`,
	Args: cobra.ExactArgs(1),
	RunE: runEntityRemove,
}

func runEntityRemove(cmd *cobra.Command, args []string) error {
	name := args[0]

	doc, err := openDocument()
	if err != nil {
		return err
	}
	e, err := findEntity(doc.Model(), name)
	if err != nil {
		return err
	}
	doc.RemoveEntity(e.ID)
	if err := saveDocument(doc); err != nil {
		return err
	}

	fmt.Println("Removed entity", name)
	return nil
}
