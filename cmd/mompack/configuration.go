// Configuration command groups the configuration subcommands.
package main

import (
	"github.com/spf13/cobra"
)

var configurationCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configurations in the current version",
	Long: `Config groups the configuration edits: list, add, and remove. A
configuration is a named subset of entities; members are name references
and may dangle.`,
}

func init() {
	configurationCmd.AddCommand(configurationListCmd)
	configurationCmd.AddCommand(configurationAddCmd)
	configurationCmd.AddCommand(configurationRemoveCmd)
}
