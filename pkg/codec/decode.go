package codec

import (
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/mompack/mompack/pkg/model"
)

// ErrMalformedDocument marks a contents document the codec cannot read at
// all: unparseable XML, a root element other than model, or a missing
// type attribute. Anything softer degrades per-field instead.
var ErrMalformedDocument = errors.New("malformed model document")

// Decode parses a contents XML document into a fresh Model. Every object
// gets a newly generated id; ids are never stored in the wire format.
//
// Decoding is deliberately lenient below the root: unknown attribute
// types fall back to String, unknown delete rules to Nullify, and
// unparseable counts to nil, so a document written by a newer tool still
// loads.
func Decode(data []byte) (*model.Model, error) {
	var wire xmlModel
	if err := xml.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if wire.Type == "" {
		return nil, fmt.Errorf("%w: missing type attribute on model element", ErrMalformedDocument)
	}

	m := model.New(wire.Name)
	m.SchemaVersionLabel = wire.VersionIdentifier
	for _, we := range wire.Entities {
		decodeEntity(m, we)
	}
	for _, wc := range wire.Configurations {
		c := m.AddConfiguration(wc.Name)
		for _, member := range wc.Members {
			c.MemberEntities = append(c.MemberEntities, member.Name)
		}
		c.UserInfo = decodeUserInfo(wc.UserInfo)
	}
	return m, nil
}

func decodeEntity(m *model.Model, wire xmlEntity) {
	e := m.AddEntity(wire.Name)
	e.ClassName = wire.RepresentedClassName
	e.ParentEntity = wire.ParentEntity
	e.IsAbstract = parseBool(wire.IsAbstract, false)
	e.UserInfo = decodeUserInfo(wire.UserInfo)

	for _, wa := range wire.Attributes {
		decodeAttribute(e, wa)
	}
	for _, wr := range wire.Relationships {
		decodeRelationship(e, wr)
	}
	for _, wfp := range wire.FetchedProperties {
		decodeFetchedProperty(e, wfp)
	}

	if wire.UniquenessConstraints != nil {
		for _, constraint := range wire.UniquenessConstraints.Constraints {
			var group []string
			for _, c := range constraint.Constraints {
				group = append(group, c.Value)
			}
			e.UniquenessConstraints = append(e.UniquenessConstraints, group)
		}
	}
	if wire.CompoundIndexes != nil {
		for _, index := range wire.CompoundIndexes.Indexes {
			var group []string
			for _, idx := range index.Indexes {
				group = append(group, idx.Value)
			}
			e.CompoundIndexes = append(e.CompoundIndexes, group)
		}
	}
}

func decodeAttribute(e *model.Entity, wire xmlAttribute) {
	a := e.AddAttribute(wire.Name, decodeAttributeType(wire.AttributeType))
	// Absent optionality means optional; every other boolean defaults off.
	a.IsOptional = parseBool(wire.Optional, true)
	a.IsTransient = parseBool(wire.Transient, false)
	a.IsIndexed = parseBool(wire.Indexed, false)
	if wire.DefaultValueString != nil {
		v := *wire.DefaultValueString
		a.DefaultValue = &v
	}
	a.UserInfo = decodeUserInfo(wire.UserInfo)
}

func decodeRelationship(e *model.Entity, wire xmlRelationship) {
	r := e.AddRelationship(wire.Name, wire.DestinationEntity)
	r.InverseRelationship = wire.InverseName
	r.DeleteRule = decodeDeleteRule(wire.DeletionRule)
	r.IsOptional = parseBool(wire.Optional, true)
	r.IsTransient = parseBool(wire.Transient, false)
	r.IsToMany = parseBool(wire.ToMany, false)
	r.IsOrdered = parseBool(wire.Ordered, false)
	r.MinCount = parseCount(wire.MinCount)
	r.MaxCount = parseCount(wire.MaxCount)
	r.UserInfo = decodeUserInfo(wire.UserInfo)
}

func decodeFetchedProperty(e *model.Entity, wire xmlFetchedProperty) {
	predicate := ""
	if wire.FetchRequest != nil {
		predicate = wire.FetchRequest.PredicateString
	}
	fp := e.AddFetchedProperty(wire.Name, predicate)
	fp.FetchLimit = parseCount(wire.FetchLimit)
	fp.UserInfo = decodeUserInfo(wire.UserInfo)
}
