// Entity add command appends a new entity to the current version.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	entityAddClass    string
	entityAddParent   string
	entityAddAbstract bool
)

var entityAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an entity",
	Long: `Add appends a new entity to the current version. The parent entity is a
name reference; it does not need to exist yet.

Example:
  mompack entity add Person
  mompack entity add Employee --parent Person --class MyApp.Employee
  mompack entity add Resource --abstract`,
	Args: cobra.ExactArgs(1),
	RunE: runEntityAdd,
}

func init() {
	entityAddCmd.Flags().StringVar(&entityAddClass, "class", "", "represented class name")
	entityAddCmd.Flags().StringVar(&entityAddParent, "parent", "", "parent entity name")
	entityAddCmd.Flags().BoolVar(&entityAddAbstract, "abstract", false, "mark the entity abstract")
}

func runEntityAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	doc, err := openDocument()
	if err != nil {
		return err
	}

	e := doc.AddEntity(name)
	if entityAddClass != "" {
		doc.SetEntityClassName(e.ID, entityAddClass)
	}
	if entityAddParent != "" {
		doc.SetEntityParent(e.ID, entityAddParent)
	}
	if entityAddAbstract {
		doc.SetEntityAbstract(e.ID, true)
	}
	if err := saveDocument(doc); err != nil {
		return err
	}

	fmt.Println("Added entity", name)
	return nil
}
