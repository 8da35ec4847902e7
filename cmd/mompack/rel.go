// Rel command groups the relationship subcommands.
package main

import (
	"github.com/spf13/cobra"
)

var relCmd = &cobra.Command{
	Use:   "rel",
	Short: "Manage relationships on an entity",
	Long: `Rel groups the relationship edits: list, add, and remove. Edits apply to
the current version and are saved to disk on success. Relationships are
addressed by entity name and relationship name; with duplicate names the
first match wins.`,
}

func init() {
	relCmd.AddCommand(relListCmd)
	relCmd.AddCommand(relAddCmd)
	relCmd.AddCommand(relRemoveCmd)
}
