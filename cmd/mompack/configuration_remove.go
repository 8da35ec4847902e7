// Configuration remove command deletes a configuration.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configurationRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a configuration",
	Long: `Remove deletes the first configuration with the given name.

Example:
  mompack config remove Cloud`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigurationRemove,
}

func runConfigurationRemove(cmd *cobra.Command, args []string) error {
	name := args[0]

	doc, err := openDocument()
	if err != nil {
		return err
	}
	c, err := findConfiguration(doc.Model(), name)
	if err != nil {
		return err
	}
	doc.RemoveConfiguration(c.ID)
	if err := saveDocument(doc); err != nil {
		return err
	}

	fmt.Println("Removed configuration", name)
	return nil
}
