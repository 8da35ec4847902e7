// Versions delete command removes a version from the package.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a version",
	Long: `Delete removes a version and its on-disk directory. The last remaining
version cannot be deleted. Deleting the current version makes the
lexicographically first remaining version current.

Example:
  mompack versions delete Experiment`,
	Args: cobra.ExactArgs(1),
	RunE: runVersionsDelete,
}

func runVersionsDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	doc, err := openDocument()
	if err != nil {
		return err
	}
	if err := doc.DeleteVersion(name); err != nil {
		return fmt.Errorf("delete version %q: %w", name, err)
	}
	if err := saveDocument(doc); err != nil {
		return err
	}

	fmt.Println("Deleted version", name)
	fmt.Println("Current version:", doc.CurrentVersion())
	return nil
}
