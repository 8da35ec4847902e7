// Attr add command appends a new attribute to an entity.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mompack/mompack/pkg/model"
)

var (
	attrAddType      string
	attrAddDefault   string
	attrAddOptional  bool
	attrAddTransient bool
	attrAddIndexed   bool
)

var attrAddCmd = &cobra.Command{
	Use:   "add <entity> <name>",
	Short: "Add an attribute",
	Long: `Add appends a new attribute to the named entity. New attributes are
optional unless --optional=false is given.

Example:
  mompack attr add Person name --type String --optional=false
  mompack attr add Person age --type "Integer 32" --default 0 --indexed
  mompack attr add Person avatar --type "Binary Data" --transient`,
	Args: cobra.ExactArgs(2),
	RunE: runAttrAdd,
}

func init() {
	attrAddCmd.Flags().StringVar(&attrAddType, "type", model.AttributeTypeString, "attribute type")
	attrAddCmd.Flags().StringVar(&attrAddDefault, "default", "", "default value")
	attrAddCmd.Flags().BoolVar(&attrAddOptional, "optional", true, "attribute may be absent")
	attrAddCmd.Flags().BoolVar(&attrAddTransient, "transient", false, "attribute skips the persistent store")
	attrAddCmd.Flags().BoolVar(&attrAddIndexed, "indexed", false, "single-column index hint")
}

func runAttrAdd(cmd *cobra.Command, args []string) error {
	entityName, name := args[0], args[1]

	if !model.IsValidAttributeType(attrAddType) {
		return fmt.Errorf("unknown attribute type %q (valid: %s)",
			attrAddType, strings.Join(model.AttributeTypes(), ", "))
	}

	doc, err := openDocument()
	if err != nil {
		return err
	}
	e, err := findEntity(doc.Model(), entityName)
	if err != nil {
		return err
	}

	a := doc.AddAttribute(e.ID, name, attrAddType)
	if cmd.Flags().Changed("default") {
		doc.SetAttributeDefault(a.ID, &attrAddDefault)
	}
	if cmd.Flags().Changed("optional") {
		doc.SetAttributeOptional(a.ID, attrAddOptional)
	}
	if attrAddTransient {
		doc.SetAttributeTransient(a.ID, true)
	}
	if attrAddIndexed {
		doc.SetAttributeIndexed(a.ID, true)
	}
	if err := saveDocument(doc); err != nil {
		return err
	}

	fmt.Printf("Added attribute %s to %s\n", name, entityName)
	return nil
}
