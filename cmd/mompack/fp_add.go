// Fp add command appends a new fetched property to an entity.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fpAddLimit int

var fpAddCmd = &cobra.Command{
	Use:   "add <entity> <name> <predicate>",
	Short: "Add a fetched property",
	Long: `Add appends a new fetched property to the named entity. The predicate is
stored as an opaque string.

Example:
  mompack fp add Person adults "age >= 18"
  mompack fp add Person recent "createdAt > $NOW - 86400" --limit 10`,
	Args: cobra.ExactArgs(3),
	RunE: runFpAdd,
}

func init() {
	fpAddCmd.Flags().IntVar(&fpAddLimit, "limit", 0, "fetch limit (default: unlimited)")
}

func runFpAdd(cmd *cobra.Command, args []string) error {
	entityName, name, predicate := args[0], args[1], args[2]

	doc, err := openDocument()
	if err != nil {
		return err
	}
	e, err := findEntity(doc.Model(), entityName)
	if err != nil {
		return err
	}

	fp := doc.AddFetchedProperty(e.ID, name, predicate)
	if cmd.Flags().Changed("limit") {
		doc.SetFetchedPropertyFetchLimit(fp.ID, &fpAddLimit)
	}
	if err := saveDocument(doc); err != nil {
		return err
	}

	fmt.Printf("Added fetched property %s to %s\n", name, entityName)
	return nil
}
