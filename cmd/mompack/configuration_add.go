// Configuration add command appends a new configuration.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configurationAddMembers []string

var configurationAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a configuration",
	Long: `Add appends a new configuration to the current version. Members are
entity name references and do not need to exist yet.

Example:
  mompack config add Cloud
  mompack config add Local --members Person,Company`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigurationAdd,
}

func init() {
	configurationAddCmd.Flags().StringSliceVar(&configurationAddMembers, "members", nil, "member entity names")
}

func runConfigurationAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	doc, err := openDocument()
	if err != nil {
		return err
	}

	c := doc.AddConfiguration(name)
	if len(configurationAddMembers) > 0 {
		doc.SetConfigurationMembers(c.ID, configurationAddMembers)
	}
	if err := saveDocument(doc); err != nil {
		return err
	}

	fmt.Println("Added configuration", name)
	return nil
}
