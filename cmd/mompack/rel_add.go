// Rel add command appends a new relationship to an entity.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mompack/mompack/pkg/model"
)

var (
	relAddInverse    string
	relAddDeleteRule string
	relAddToMany     bool
	relAddOrdered    bool
	relAddOptional   bool
	relAddTransient  bool
	relAddMin        int
	relAddMax        int
)

var relAddCmd = &cobra.Command{
	Use:   "add <entity> <name> <destination>",
	Short: "Add a relationship",
	Long: `Add appends a new relationship to the named entity. The destination and
inverse are name references; they do not need to exist yet. New
relationships are optional to-one with the Nullify delete rule.

Example:
  mompack rel add Person employer Company
  mompack rel add Person friends Person --to-many --inverse friends
  mompack rel add Company staff Person --to-many --ordered --delete-rule Cascade --min 1`,
	Args: cobra.ExactArgs(3),
	RunE: runRelAdd,
}

func init() {
	relAddCmd.Flags().StringVar(&relAddInverse, "inverse", "", "inverse relationship name on the destination")
	relAddCmd.Flags().StringVar(&relAddDeleteRule, "delete-rule", model.DeleteRuleNullify, "delete rule")
	relAddCmd.Flags().BoolVar(&relAddToMany, "to-many", false, "to-many cardinality")
	relAddCmd.Flags().BoolVar(&relAddOrdered, "ordered", false, "to-many keeps order")
	relAddCmd.Flags().BoolVar(&relAddOptional, "optional", true, "relationship may be absent")
	relAddCmd.Flags().BoolVar(&relAddTransient, "transient", false, "relationship skips the persistent store")
	relAddCmd.Flags().IntVar(&relAddMin, "min", 0, "lower cardinality bound")
	relAddCmd.Flags().IntVar(&relAddMax, "max", 0, "upper cardinality bound")
}

func runRelAdd(cmd *cobra.Command, args []string) error {
	entityName, name, destination := args[0], args[1], args[2]

	if !model.IsValidDeleteRule(relAddDeleteRule) {
		return fmt.Errorf("unknown delete rule %q (valid: %s)",
			relAddDeleteRule, strings.Join(model.DeleteRules(), ", "))
	}

	doc, err := openDocument()
	if err != nil {
		return err
	}
	e, err := findEntity(doc.Model(), entityName)
	if err != nil {
		return err
	}

	r := doc.AddRelationship(e.ID, name, destination)
	if relAddInverse != "" {
		doc.SetRelationshipInverse(r.ID, relAddInverse)
	}
	if cmd.Flags().Changed("delete-rule") {
		doc.SetRelationshipDeleteRule(r.ID, relAddDeleteRule)
	}
	if relAddToMany {
		doc.SetRelationshipToMany(r.ID, true)
	}
	if relAddOrdered {
		doc.SetRelationshipOrdered(r.ID, true)
	}
	if cmd.Flags().Changed("optional") {
		doc.SetRelationshipOptional(r.ID, relAddOptional)
	}
	if relAddTransient {
		doc.SetRelationshipTransient(r.ID, true)
	}
	if cmd.Flags().Changed("min") {
		doc.SetRelationshipMinCount(r.ID, &relAddMin)
	}
	if cmd.Flags().Changed("max") {
		doc.SetRelationshipMaxCount(r.ID, &relAddMax)
	}
	if err := saveDocument(doc); err != nil {
		return err
	}

	fmt.Printf("Added relationship %s to %s\n", name, entityName)
	return nil
}
