// Export command groups the export subcommands.
package main

import (
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a version to another representation",
}

func init() {
	exportCmd.AddCommand(exportSqliteCmd)
}
