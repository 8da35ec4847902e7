// Versions command groups the version lifecycle subcommands.
package main

import (
	"github.com/spf13/cobra"
)

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "Manage the versions of a package",
	Long: `Versions groups the package version lifecycle: list, create, rename,
delete, and switch. Lifecycle operations apply directly and are saved to
disk on success.`,
}

func init() {
	versionsCmd.AddCommand(versionsListCmd)
	versionsCmd.AddCommand(versionsCreateCmd)
	versionsCmd.AddCommand(versionsRenameCmd)
	versionsCmd.AddCommand(versionsDeleteCmd)
	versionsCmd.AddCommand(versionsSwitchCmd)
}
