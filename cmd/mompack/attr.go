// Attr command groups the attribute subcommands.
package main

import (
	"github.com/spf13/cobra"
)

var attrCmd = &cobra.Command{
	Use:   "attr",
	Short: "Manage attributes on an entity",
	Long: `Attr groups the attribute edits: list, add, and remove. Edits apply to
the current version and are saved to disk on success. Attributes are
addressed by entity name and attribute name; with duplicate names the
first match wins.`,
}

func init() {
	attrCmd.AddCommand(attrListCmd)
	attrCmd.AddCommand(attrAddCmd)
	attrCmd.AddCommand(attrRemoveCmd)
}
