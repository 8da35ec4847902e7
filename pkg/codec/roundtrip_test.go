package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mompack/mompack/pkg/model"
)

// buildRichModel exercises every encodable field at least once.
func buildRichModel() *model.Model {
	m := model.New("Store")
	m.SchemaVersionLabel = "v2"

	base := m.AddEntity("Base")
	base.IsAbstract = true

	person := m.AddEntity("Person")
	person.ClassName = "App.Person"
	person.ParentEntity = "Base"
	person.UserInfo = map[string]string{"team": "schema", "review": "2026-02"}
	person.UniquenessConstraints = [][]string{{"email"}, {"last", "first"}}
	person.CompoundIndexes = [][]string{{"last", "first"}}

	email := person.AddAttribute("email", model.AttributeTypeString)
	email.IsOptional = false
	email.IsIndexed = true
	emptyDefault := ""
	email.DefaultValue = &emptyDefault

	avatar := person.AddAttribute("avatar", model.AttributeTypeBinaryData)
	avatar.IsTransient = true

	ref := person.AddAttribute("ref", model.AttributeTypeObjectID)
	ref.UserInfo = map[string]string{"internal": "yes"}

	age := person.AddAttribute("age", model.AttributeTypeInteger32)
	ageDefault := "21"
	age.DefaultValue = &ageDefault

	person.AddAttribute("joined", model.AttributeTypeDate)

	friends := person.AddRelationship("friends", "Person")
	friends.InverseRelationship = "friends"
	friends.DeleteRule = model.DeleteRuleCascade
	friends.IsToMany = true
	friends.IsOrdered = true
	maxCount := 512
	friends.MaxCount = &maxCount

	employer := person.AddRelationship("employer", "Company")
	employer.IsOptional = false
	employer.DeleteRule = model.DeleteRuleDeny
	minCount := 1
	employer.MinCount = &minCount
	employer.IsTransient = true

	shadow := person.AddRelationship("shadow", "Person")
	shadow.DeleteRule = model.DeleteRuleNoAction

	recent := person.AddFetchedProperty("recentFriends", `lastSeen > $DATE AND state != "blocked"`)
	limit := 40
	recent.FetchLimit = &limit
	recent.UserInfo = map[string]string{"cache": "off"}

	person.AddFetchedProperty("bare", "")

	cloud := m.AddConfiguration("Cloud")
	cloud.MemberEntities = []string{"Person", "Base"}
	cloud.UserInfo = map[string]string{"sync": "on"}

	m.AddConfiguration("Local")

	return m
}

// stripIDs zeroes every object id on a clone; ids are not wire state and
// are excluded from round-trip comparison.
func stripIDs(m *model.Model) *model.Model {
	c := m.Clone()
	c.ID = ""
	for _, e := range c.Entities {
		e.ID = ""
		for _, a := range e.Attributes {
			a.ID = ""
		}
		for _, r := range e.Relationships {
			r.ID = ""
		}
		for _, fp := range e.FetchedProperties {
			fp.ID = ""
		}
	}
	for _, cfg := range c.Configurations {
		cfg.ID = ""
	}
	return c
}

func TestRoundTripRichModel(t *testing.T) {
	original := buildRichModel()

	data, err := Encode(original)
	require.NoError(t, err)
	decoded, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, stripIDs(original), stripIDs(decoded))
}

func TestRoundTripScenario(t *testing.T) {
	m := model.New("M")
	person := m.AddEntity("Person")
	age := person.AddAttribute("age", model.AttributeTypeInteger32)
	age.IsOptional = false
	friends := person.AddRelationship("friends", "Person")
	friends.IsToMany = true

	data, err := Encode(m)
	require.NoError(t, err)
	decoded, err := Decode(data)
	require.NoError(t, err)

	require.Len(t, decoded.Entities, 1)
	e := decoded.Entities[0]
	assert.Equal(t, "Person", e.Name)

	require.Len(t, e.Attributes, 1)
	gotAge := e.Attributes[0]
	assert.Equal(t, "age", gotAge.Name)
	assert.Equal(t, model.AttributeTypeInteger32, gotAge.Type)
	assert.False(t, gotAge.IsOptional)

	require.Len(t, e.Relationships, 1)
	gotFriends := e.Relationships[0]
	assert.Equal(t, "friends", gotFriends.Name)
	assert.True(t, gotFriends.IsToMany)
	assert.Equal(t, "Person", gotFriends.DestinationEntity)
}

func TestRoundTripStableOutput(t *testing.T) {
	original := buildRichModel()

	first, err := Encode(original)
	require.NoError(t, err)
	decoded, err := Decode(first)
	require.NoError(t, err)
	second, err := Encode(decoded)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestRoundTripFreshIDs(t *testing.T) {
	original := buildRichModel()

	data, err := Encode(original)
	require.NoError(t, err)
	decoded, err := Decode(data)
	require.NoError(t, err)

	assert.NotEqual(t, original.ID, decoded.ID)
	assert.NotEqual(t, original.Entities[0].ID, decoded.Entities[0].ID)
}

func TestRoundTripCurrentFlagNotCarried(t *testing.T) {
	// The current flag belongs to the package sidecar, not the document.
	m := model.New("M")
	m.IsCurrent = true

	data, err := Encode(m)
	require.NoError(t, err)
	decoded, err := Decode(data)
	require.NoError(t, err)

	assert.False(t, decoded.IsCurrent)
}

func TestRoundTripEmptyUserInfo(t *testing.T) {
	m := model.New("M")
	e := m.AddEntity("Person")
	e.UserInfo = map[string]string{}

	data, err := Encode(m)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "userInfo")

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Empty(t, decoded.Entities[0].UserInfo)
}
