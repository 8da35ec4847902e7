package model

import "fmt"

// Finding kinds reported by Validate.
const (
	FindingEmptyName        = "empty-name"
	FindingDuplicateName    = "duplicate-name"
	FindingDanglingRef      = "dangling-reference"
	FindingUnknownAttribute = "unknown-attribute"
)

// Finding is one validation observation. Findings are informational:
// nothing in the editing flow is blocked by them.
type Finding struct {
	Kind    string // One of the Finding constants.
	Path    string // Slash-separated location, e.g. "entity Person/attribute age".
	Message string // Human-readable description.
}

// Validate inspects a Model for the problems a save-time reviewer cares
// about: duplicate names, empty names, dangling name references, and
// index groups naming unknown attributes. Duplicate and dangling names
// are legal in memory; Validate only reports them.
func (m *Model) Validate() []Finding {
	var findings []Finding

	entityNames := make(map[string]int)
	for _, e := range m.Entities {
		entityNames[e.Name]++
	}

	seen := make(map[string]bool)
	for _, e := range m.Entities {
		path := "entity " + e.Name
		if e.Name == "" {
			findings = append(findings, Finding{FindingEmptyName, path, "entity has no name"})
		}
		if entityNames[e.Name] > 1 && !seen[e.Name] {
			seen[e.Name] = true
			findings = append(findings, Finding{
				FindingDuplicateName, path,
				fmt.Sprintf("%d entities share the name %q", entityNames[e.Name], e.Name),
			})
		}
		if e.ParentEntity != "" && m.EntityNamed(e.ParentEntity) == nil {
			findings = append(findings, Finding{
				FindingDanglingRef, path,
				fmt.Sprintf("parent entity %q does not exist", e.ParentEntity),
			})
		}
		findings = append(findings, m.validateMembers(e)...)
	}

	configNames := make(map[string]int)
	for _, c := range m.Configurations {
		configNames[c.Name]++
	}
	seenConfigs := make(map[string]bool)
	for _, c := range m.Configurations {
		path := "configuration " + c.Name
		if c.Name == "" {
			findings = append(findings, Finding{FindingEmptyName, path, "configuration has no name"})
		}
		if configNames[c.Name] > 1 && !seenConfigs[c.Name] {
			seenConfigs[c.Name] = true
			findings = append(findings, Finding{
				FindingDuplicateName, path,
				fmt.Sprintf("%d configurations share the name %q", configNames[c.Name], c.Name),
			})
		}
		for _, member := range c.MemberEntities {
			if m.EntityNamed(member) == nil {
				findings = append(findings, Finding{
					FindingDanglingRef, path,
					fmt.Sprintf("member entity %q does not exist", member),
				})
			}
		}
	}

	return findings
}

// validateMembers checks one entity's attributes, relationships, and
// fetched properties. The three collections share a single namespace
// within the entity.
func (m *Model) validateMembers(e *Entity) []Finding {
	var findings []Finding
	entityPath := "entity " + e.Name

	memberNames := make(map[string]int)
	for _, a := range e.Attributes {
		memberNames[a.Name]++
	}
	for _, r := range e.Relationships {
		memberNames[r.Name]++
	}
	for _, fp := range e.FetchedProperties {
		memberNames[fp.Name]++
	}
	seen := make(map[string]bool)
	reportDuplicate := func(name, path string) {
		if memberNames[name] > 1 && !seen[name] {
			seen[name] = true
			findings = append(findings, Finding{
				FindingDuplicateName, path,
				fmt.Sprintf("%d members of entity %q share the name %q", memberNames[name], e.Name, name),
			})
		}
	}

	for _, a := range e.Attributes {
		path := entityPath + "/attribute " + a.Name
		if a.Name == "" {
			findings = append(findings, Finding{FindingEmptyName, path, "attribute has no name"})
		}
		reportDuplicate(a.Name, path)
	}

	for _, r := range e.Relationships {
		path := entityPath + "/relationship " + r.Name
		if r.Name == "" {
			findings = append(findings, Finding{FindingEmptyName, path, "relationship has no name"})
		}
		reportDuplicate(r.Name, path)
		dest := m.EntityNamed(r.DestinationEntity)
		if dest == nil {
			findings = append(findings, Finding{
				FindingDanglingRef, path,
				fmt.Sprintf("destination entity %q does not exist", r.DestinationEntity),
			})
		} else if r.InverseRelationship != "" && dest.RelationshipNamed(r.InverseRelationship) == nil {
			findings = append(findings, Finding{
				FindingDanglingRef, path,
				fmt.Sprintf("inverse relationship %q does not exist on entity %q", r.InverseRelationship, dest.Name),
			})
		}
	}

	for _, fp := range e.FetchedProperties {
		path := entityPath + "/fetched property " + fp.Name
		if fp.Name == "" {
			findings = append(findings, Finding{FindingEmptyName, path, "fetched property has no name"})
		}
		reportDuplicate(fp.Name, path)
	}

	for _, group := range e.UniquenessConstraints {
		for _, name := range group {
			if e.AttributeNamed(name) == nil {
				findings = append(findings, Finding{
					FindingUnknownAttribute, entityPath,
					fmt.Sprintf("uniqueness constraint names unknown attribute %q", name),
				})
			}
		}
	}
	for _, group := range e.CompoundIndexes {
		for _, name := range group {
			if e.AttributeNamed(name) == nil {
				findings = append(findings, Finding{
					FindingUnknownAttribute, entityPath,
					fmt.Sprintf("compound index names unknown attribute %q", name),
				})
			}
		}
	}

	return findings
}
