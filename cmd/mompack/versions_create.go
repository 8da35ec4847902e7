// Versions create command adds a new version to the package.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionsCreateBasedOn string

var versionsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new version",
	Long: `Create clones an existing version under a new name and switches to it.
The source is the current version unless --based-on names another one.

Example:
  mompack versions create Model_v2
  mompack versions create Experiment --based-on Model_v2`,
	Args: cobra.ExactArgs(1),
	RunE: runVersionsCreate,
}

func init() {
	versionsCreateCmd.Flags().StringVar(&versionsCreateBasedOn, "based-on", "", "source version (default: current)")
}

func runVersionsCreate(cmd *cobra.Command, args []string) error {
	name := args[0]

	doc, err := openDocument()
	if err != nil {
		return err
	}
	if _, err := doc.CreateVersion(name, versionsCreateBasedOn); err != nil {
		return fmt.Errorf("create version %q: %w", name, err)
	}
	if err := saveDocument(doc); err != nil {
		return err
	}

	fmt.Println("Created version", name)
	return nil
}
