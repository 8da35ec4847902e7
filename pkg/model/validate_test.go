package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// findingKinds extracts the Kind of every finding, in order.
func findingKinds(findings []Finding) []string {
	var kinds []string
	for _, f := range findings {
		kinds = append(kinds, f.Kind)
	}
	return kinds
}

func TestValidateCleanModel(t *testing.T) {
	m := New("Store")
	person := m.AddEntity("Person")
	person.AddAttribute("name", AttributeTypeString)
	friends := person.AddRelationship("friends", "Person")
	friends.InverseRelationship = "friends"
	cfg := m.AddConfiguration("Default")
	cfg.MemberEntities = []string{"Person"}

	assert.Empty(t, m.Validate())
}

func TestValidateDuplicateEntityNames(t *testing.T) {
	m := New("Store")
	m.AddEntity("Person")
	m.AddEntity("Person")

	findings := m.Validate()

	assert.Equal(t, []string{FindingDuplicateName}, findingKinds(findings))
	assert.Contains(t, findings[0].Message, `"Person"`)
}

func TestValidateDuplicateMemberNames(t *testing.T) {
	// Attributes, relationships, and fetched properties share one
	// namespace inside an entity.
	m := New("Store")
	person := m.AddEntity("Person")
	person.AddAttribute("friends", AttributeTypeString)
	person.AddRelationship("friends", "Person")

	findings := m.Validate()

	assert.Equal(t, []string{FindingDuplicateName}, findingKinds(findings))
	assert.Equal(t, "entity Person/attribute friends", findings[0].Path)
}

func TestValidateDanglingReferences(t *testing.T) {
	tests := []struct {
		name  string
		build func(m *Model)
		want  string
	}{
		{
			name: "parent entity",
			build: func(m *Model) {
				m.AddEntity("Person").ParentEntity = "Ghost"
			},
			want: `parent entity "Ghost" does not exist`,
		},
		{
			name: "destination entity",
			build: func(m *Model) {
				m.AddEntity("Person").AddRelationship("home", "Ghost")
			},
			want: `destination entity "Ghost" does not exist`,
		},
		{
			name: "inverse relationship",
			build: func(m *Model) {
				person := m.AddEntity("Person")
				r := person.AddRelationship("friends", "Person")
				r.InverseRelationship = "ghost"
			},
			want: `inverse relationship "ghost" does not exist on entity "Person"`,
		},
		{
			name: "configuration member",
			build: func(m *Model) {
				m.AddConfiguration("Cloud").MemberEntities = []string{"Ghost"}
			},
			want: `member entity "Ghost" does not exist`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New("Store")
			tt.build(m)

			findings := m.Validate()

			assert.Equal(t, []string{FindingDanglingRef}, findingKinds(findings))
			assert.Equal(t, tt.want, findings[0].Message)
		})
	}
}

func TestValidateIndexGroupsNameUnknownAttributes(t *testing.T) {
	m := New("Store")
	person := m.AddEntity("Person")
	person.AddAttribute("name", AttributeTypeString)
	person.UniquenessConstraints = [][]string{{"name", "ghost"}}
	person.CompoundIndexes = [][]string{{"phantom"}}

	findings := m.Validate()

	assert.Equal(t, []string{FindingUnknownAttribute, FindingUnknownAttribute}, findingKinds(findings))
	assert.Contains(t, findings[0].Message, `"ghost"`)
	assert.Contains(t, findings[1].Message, `"phantom"`)
}

func TestValidateEmptyNames(t *testing.T) {
	m := New("Store")
	e := m.AddEntity("")
	e.AddAttribute("", AttributeTypeString)

	findings := m.Validate()

	kinds := findingKinds(findings)
	assert.Contains(t, kinds, FindingEmptyName)
	assert.GreaterOrEqual(t, len(findings), 2)
}
