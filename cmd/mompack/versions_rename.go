// Versions rename command moves a version to a new name.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionsRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a version",
	Long: `Rename moves a version to a new name. The on-disk version directory and
the current-version sidecar follow on save.

Example:
  mompack versions rename Model Model_v1`,
	Args: cobra.ExactArgs(2),
	RunE: runVersionsRename,
}

func runVersionsRename(cmd *cobra.Command, args []string) error {
	oldName, newName := args[0], args[1]

	doc, err := openDocument()
	if err != nil {
		return err
	}
	if err := doc.RenameVersion(oldName, newName); err != nil {
		return fmt.Errorf("rename version %q: %w", oldName, err)
	}
	if err := saveDocument(doc); err != nil {
		return err
	}

	fmt.Printf("Renamed version %s to %s\n", oldName, newName)
	return nil
}
