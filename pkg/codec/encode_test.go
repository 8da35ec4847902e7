package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mompack/mompack/pkg/model"
)

func TestEncodeScenarioDocument(t *testing.T) {
	m := model.New("M")
	person := m.AddEntity("Person")
	age := person.AddAttribute("age", model.AttributeTypeInteger32)
	age.IsOptional = false
	friends := person.AddRelationship("friends", "Person")
	friends.IsToMany = true

	data, err := Encode(m)
	require.NoError(t, err)

	want := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<model type="com.apple.IDECoreDataModeler.DataModel" name="M" userDefinedModelVersionIdentifier="" documentVersion="1.0" lastSavedToolsVersion="23605" systemVersion="24G84" minimumToolsVersion="Automatic" sourceLanguage="Swift">
    <entity name="Person">
        <attribute name="age" optional="NO" attributeType="Integer 32"></attribute>
        <relationship name="friends" optional="YES" toMany="YES" deletionRule="Nullify" destinationEntity="Person"></relationship>
    </entity>
</model>
`
	assert.Equal(t, want, string(data))
}

func TestEncodeEmptyModel(t *testing.T) {
	m := model.New("Empty")

	data, err := Encode(m)
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`+"\n"))
	assert.Contains(t, out, `<model type="com.apple.IDECoreDataModeler.DataModel" name="Empty"`)
	assert.True(t, strings.HasSuffix(out, "</model>\n"))
	assert.NotContains(t, out, "<entity")
}

func TestEncodeOmitsEmptyUserInfo(t *testing.T) {
	m := model.New("M")
	e := m.AddEntity("Person")
	e.UserInfo = map[string]string{}

	data, err := Encode(m)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "userInfo")
}

func TestEncodeUserInfoSortedByKey(t *testing.T) {
	m := model.New("M")
	e := m.AddEntity("Person")
	e.UserInfo = map[string]string{"zeta": "1", "alpha": "2", "mid": "3"}

	data, err := Encode(m)
	require.NoError(t, err)

	out := string(data)
	alpha := strings.Index(out, `key="alpha"`)
	mid := strings.Index(out, `key="mid"`)
	zeta := strings.Index(out, `key="zeta"`)
	require.NotEqual(t, -1, alpha)
	assert.Less(t, alpha, mid)
	assert.Less(t, mid, zeta)
}

func TestEncodeBooleanPresence(t *testing.T) {
	m := model.New("M")
	e := m.AddEntity("Person")
	plain := e.AddAttribute("plain", model.AttributeTypeString)
	plain.IsOptional = false
	marked := e.AddAttribute("marked", model.AttributeTypeString)
	marked.IsTransient = true
	marked.IsIndexed = true

	data, err := Encode(m)
	require.NoError(t, err)

	out := string(data)
	// Optionality is always written; the other booleans only when set.
	assert.Contains(t, out, `<attribute name="plain" optional="NO" attributeType="String">`)
	assert.Contains(t, out, `<attribute name="marked" optional="YES" transient="YES" indexed="YES" attributeType="String">`)
}

func TestEncodeAttributeTypeWireNames(t *testing.T) {
	tests := []struct {
		memory string
		wire   string
	}{
		{model.AttributeTypeBinaryData, `attributeType="Binary"`},
		{model.AttributeTypeObjectID, `attributeType="ObjectID"`},
		{model.AttributeTypeInteger16, `attributeType="Integer 16"`},
		{model.AttributeTypeTransformable, `attributeType="Transformable"`},
	}
	for _, tt := range tests {
		t.Run(tt.memory, func(t *testing.T) {
			m := model.New("M")
			m.AddEntity("E").AddAttribute("a", tt.memory)

			data, err := Encode(m)
			require.NoError(t, err)

			assert.Contains(t, string(data), tt.wire)
		})
	}
}

func TestEncodeDefaultValuePresence(t *testing.T) {
	m := model.New("M")
	e := m.AddEntity("Person")
	e.AddAttribute("unset", model.AttributeTypeString)
	empty := e.AddAttribute("empty", model.AttributeTypeString)
	emptyVal := ""
	empty.DefaultValue = &emptyVal
	filled := e.AddAttribute("filled", model.AttributeTypeString)
	filledVal := "n/a"
	filled.DefaultValue = &filledVal

	data, err := Encode(m)
	require.NoError(t, err)

	out := string(data)
	// The closing bracket right after the type pins the attribute as absent,
	// not merely reordered.
	assert.Contains(t, out, `<attribute name="unset" optional="YES" attributeType="String"></attribute>`)
	assert.Contains(t, out, `<attribute name="empty" optional="YES" attributeType="String" defaultValueString="">`)
	assert.Contains(t, out, `defaultValueString="n/a"`)
}

func TestEncodeRelationshipInverse(t *testing.T) {
	m := model.New("M")
	person := m.AddEntity("Person")
	friends := person.AddRelationship("friends", "Person")
	friends.InverseRelationship = "friends"
	person.AddRelationship("home", "Address")

	data, err := Encode(m)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `inverseName="friends" inverseEntity="Person"`)
	// No inverse named means no inverse attributes at all.
	assert.Contains(t, out, `<relationship name="home" optional="YES" deletionRule="Nullify" destinationEntity="Address">`)
}

func TestEncodeRelationshipCounts(t *testing.T) {
	m := model.New("M")
	person := m.AddEntity("Person")
	r := person.AddRelationship("friends", "Person")
	minCount, maxCount := 1, 8
	r.MinCount = &minCount
	r.MaxCount = &maxCount

	data, err := Encode(m)
	require.NoError(t, err)

	assert.Contains(t, string(data), `minCount="1" maxCount="8"`)
}

func TestEncodeFetchedPropertyNesting(t *testing.T) {
	m := model.New("M")
	person := m.AddEntity("Person")
	fp := person.AddFetchedProperty("recent", "lastSeen > $DATE")
	limit := 25
	fp.FetchLimit = &limit

	data, err := Encode(m)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `<fetchedProperty name="recent" fetchLimit="25">`)
	assert.Contains(t, out, `<fetchRequest name="fetchedPropertyFetchRequest" entity="Person" predicateString="lastSeen &gt; $DATE">`)
}

func TestEncodeConstraintGroups(t *testing.T) {
	m := model.New("M")
	person := m.AddEntity("Person")
	person.AddAttribute("email", model.AttributeTypeString)
	person.UniquenessConstraints = [][]string{{"email"}}
	person.CompoundIndexes = [][]string{{"last", "first"}}

	data, err := Encode(m)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "<uniquenessConstraints>")
	assert.Contains(t, out, `<constraint value="email">`)
	assert.Contains(t, out, "<compoundIndexes>")
	assert.Contains(t, out, `<index value="last">`)
	assert.Contains(t, out, `<index value="first">`)
}

func TestEncodeConfiguration(t *testing.T) {
	m := model.New("M")
	m.AddEntity("Person")
	cfg := m.AddConfiguration("Cloud")
	cfg.MemberEntities = []string{"Person", "Ghost"}

	data, err := Encode(m)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `<configuration name="Cloud">`)
	assert.Contains(t, out, `<memberEntity name="Person">`)
	assert.Contains(t, out, `<memberEntity name="Ghost">`)
}

func TestEncodeNeverWritesIDs(t *testing.T) {
	m := model.New("M")
	person := m.AddEntity("Person")
	person.AddAttribute("age", model.AttributeTypeInteger32)

	data, err := Encode(m)
	require.NoError(t, err)

	out := string(data)
	assert.NotContains(t, out, m.ID)
	assert.NotContains(t, out, person.ID)
	assert.NotContains(t, out, person.Attributes[0].ID)
}
