// Versions switch command changes the current version.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionsSwitchCmd = &cobra.Command{
	Use:   "switch <name>",
	Short: "Make a version current",
	Long: `Switch makes the named version current and records the choice in the
package's .xccurrentversion sidecar.

Example:
  mompack versions switch Model_v2`,
	Args: cobra.ExactArgs(1),
	RunE: runVersionsSwitch,
}

func runVersionsSwitch(cmd *cobra.Command, args []string) error {
	name := args[0]

	doc, err := openDocument()
	if err != nil {
		return err
	}
	if !doc.SwitchTo(name) {
		return fmt.Errorf("version %q not found", name)
	}
	if err := saveDocument(doc); err != nil {
		return err
	}

	fmt.Println("Current version:", name)
	return nil
}
