// Version command for the mompack CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the mompack release version, reported by both
// `mompack version` and `mompack --version`.
const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the mompack version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("mompack", version)
	},
}
