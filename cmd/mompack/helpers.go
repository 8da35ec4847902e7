// Shared helpers for mompack CLI commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/mompack/mompack/pkg/editor"
	"github.com/mompack/mompack/pkg/model"
)

// resolvePackagePath returns the package directory to operate on:
// --package flag first, default_package from config second. No selection
// at all is a user error.
func resolvePackagePath() (string, error) {
	if flagPackage != "" {
		return flagPackage, nil
	}
	if defaultPackage != "" {
		return defaultPackage, nil
	}
	return "", fmt.Errorf("no package selected (use --package or set default_package in config)")
}

// openDocument resolves the package selection and loads it into an
// editing session.
func openDocument() (*editor.Document, error) {
	path, err := resolvePackagePath()
	if err != nil {
		return nil, err
	}
	doc, err := editor.Open(path, logger)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return doc, nil
}

// saveDocument writes the edited document back to its package directory.
// Save failures are system errors: the edit was valid, the disk was not.
func saveDocument(doc *editor.Document) error {
	if err := doc.Save(); err != nil {
		return sysErrf("save %s: %w", doc.Path(), err)
	}
	return nil
}

// resolveModel returns the named version's model, or the current one when
// version is empty.
func resolveModel(doc *editor.Document, version string) (*model.Model, error) {
	if version == "" {
		return doc.Model(), nil
	}
	m, ok := doc.Version(version)
	if !ok {
		return nil, fmt.Errorf("version %q not found", version)
	}
	return m, nil
}

// findEntity returns the first entity with the given name.
func findEntity(m *model.Model, name string) (*model.Entity, error) {
	e := m.EntityNamed(name)
	if e == nil {
		return nil, fmt.Errorf("entity %q not found", name)
	}
	return e, nil
}

// findAttribute returns the first attribute with the given name on the
// entity.
func findAttribute(e *model.Entity, name string) (*model.Attribute, error) {
	a := e.AttributeNamed(name)
	if a == nil {
		return nil, fmt.Errorf("attribute %q not found on entity %q", name, e.Name)
	}
	return a, nil
}

// findRelationship returns the first relationship with the given name on
// the entity.
func findRelationship(e *model.Entity, name string) (*model.Relationship, error) {
	r := e.RelationshipNamed(name)
	if r == nil {
		return nil, fmt.Errorf("relationship %q not found on entity %q", name, e.Name)
	}
	return r, nil
}

// findFetchedProperty returns the first fetched property with the given
// name on the entity.
func findFetchedProperty(e *model.Entity, name string) (*model.FetchedProperty, error) {
	fp := e.FetchedPropertyNamed(name)
	if fp == nil {
		return nil, fmt.Errorf("fetched property %q not found on entity %q", name, e.Name)
	}
	return fp, nil
}

// findConfiguration returns the first configuration with the given name.
func findConfiguration(m *model.Model, name string) (*model.Configuration, error) {
	c := m.ConfigurationNamed(name)
	if c == nil {
		return nil, fmt.Errorf("configuration %q not found", name)
	}
	return c, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}
