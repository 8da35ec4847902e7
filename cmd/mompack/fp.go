// Fp command groups the fetched property subcommands.
package main

import (
	"github.com/spf13/cobra"
)

var fpCmd = &cobra.Command{
	Use:   "fp",
	Short: "Manage fetched properties on an entity",
	Long: `Fp groups the fetched property edits: list, add, and remove. Edits apply
to the current version and are saved to disk on success.`,
}

func init() {
	fpCmd.AddCommand(fpListCmd)
	fpCmd.AddCommand(fpAddCmd)
	fpCmd.AddCommand(fpRemoveCmd)
}
