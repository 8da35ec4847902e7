// Entity command groups the entity subcommands.
package main

import (
	"github.com/spf13/cobra"
)

var entityCmd = &cobra.Command{
	Use:   "entity",
	Short: "Manage entities in the current version",
	Long: `Entity groups the entity edits: list, add, and remove. Edits apply to
the current version and are saved to disk on success. Entities are
addressed by name; with duplicate names the first match wins.`,
}

func init() {
	entityCmd.AddCommand(entityListCmd)
	entityCmd.AddCommand(entityAddCmd)
	entityCmd.AddCommand(entityRemoveCmd)
}
