package codec

import (
	"encoding/xml"
	"fmt"

	"github.com/mompack/mompack/pkg/model"
)

// Encode serializes a Model into a contents XML document. Object ids are
// not part of the wire format and are not written.
func Encode(m *model.Model) ([]byte, error) {
	wire := xmlModel{
		Type:              documentType,
		Name:              m.Name,
		VersionIdentifier: m.SchemaVersionLabel,
		DocumentVersion:   documentVersion,
		LastSavedTools:    lastSavedToolsVersion,
		SystemVersion:     systemVersion,
		MinimumTools:      minimumToolsVersion,
		SourceLanguage:    sourceLanguage,
	}
	for _, e := range m.Entities {
		wire.Entities = append(wire.Entities, encodeEntity(e))
	}
	for _, c := range m.Configurations {
		wire.Configurations = append(wire.Configurations, encodeConfiguration(c))
	}

	data, err := xml.MarshalIndent(wire, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("serializing model %q: %w", m.Name, err)
	}

	out := make([]byte, 0, len(xmlHeader)+len(data)+1)
	out = append(out, xmlHeader...)
	out = append(out, data...)
	out = append(out, '\n')
	return out, nil
}

func encodeEntity(e *model.Entity) xmlEntity {
	wire := xmlEntity{
		Name:                 e.Name,
		RepresentedClassName: e.ClassName,
		ParentEntity:         e.ParentEntity,
		IsAbstract:           optionalBool(e.IsAbstract),
		UserInfo:             encodeUserInfo(e.UserInfo),
	}
	for _, a := range e.Attributes {
		wire.Attributes = append(wire.Attributes, encodeAttribute(a))
	}
	for _, r := range e.Relationships {
		wire.Relationships = append(wire.Relationships, encodeRelationship(r))
	}
	for _, fp := range e.FetchedProperties {
		wire.FetchedProperties = append(wire.FetchedProperties, encodeFetchedProperty(e, fp))
	}
	if len(e.UniquenessConstraints) > 0 {
		wrapper := &xmlUniquenessConstraints{}
		for _, group := range e.UniquenessConstraints {
			constraint := xmlUniquenessConstraint{}
			for _, name := range group {
				constraint.Constraints = append(constraint.Constraints, xmlConstraint{Value: name})
			}
			wrapper.Constraints = append(wrapper.Constraints, constraint)
		}
		wire.UniquenessConstraints = wrapper
	}
	if len(e.CompoundIndexes) > 0 {
		wrapper := &xmlCompoundIndexes{}
		for _, group := range e.CompoundIndexes {
			index := xmlCompoundIndex{}
			for _, name := range group {
				index.Indexes = append(index.Indexes, xmlIndex{Value: name})
			}
			wrapper.Indexes = append(wrapper.Indexes, index)
		}
		wire.CompoundIndexes = wrapper
	}
	return wire
}

// encodeAttribute writes optionality explicitly in both directions:
// an absent optional attribute reads back as true, so a false value
// would not survive omission.
func encodeAttribute(a *model.Attribute) xmlAttribute {
	return xmlAttribute{
		Name:               a.Name,
		Optional:           formatBool(a.IsOptional),
		Transient:          optionalBool(a.IsTransient),
		Indexed:            optionalBool(a.IsIndexed),
		AttributeType:      encodeAttributeType(a.Type),
		DefaultValueString: a.DefaultValue,
		UserInfo:           encodeUserInfo(a.UserInfo),
	}
}

func encodeRelationship(r *model.Relationship) xmlRelationship {
	wire := xmlRelationship{
		Name:              r.Name,
		Optional:          formatBool(r.IsOptional),
		Transient:         optionalBool(r.IsTransient),
		ToMany:            optionalBool(r.IsToMany),
		Ordered:           optionalBool(r.IsOrdered),
		MinCount:          formatCount(r.MinCount),
		MaxCount:          formatCount(r.MaxCount),
		DeletionRule:      r.DeleteRule,
		DestinationEntity: r.DestinationEntity,
		UserInfo:          encodeUserInfo(r.UserInfo),
	}
	if r.InverseRelationship != "" {
		wire.InverseName = r.InverseRelationship
		wire.InverseEntity = r.DestinationEntity
	}
	return wire
}

func encodeFetchedProperty(owner *model.Entity, fp *model.FetchedProperty) xmlFetchedProperty {
	return xmlFetchedProperty{
		Name:       fp.Name,
		FetchLimit: formatCount(fp.FetchLimit),
		FetchRequest: &xmlFetchRequest{
			Name:            "fetchedPropertyFetchRequest",
			Entity:          owner.Name,
			PredicateString: fp.Predicate,
		},
		UserInfo: encodeUserInfo(fp.UserInfo),
	}
}

func encodeConfiguration(c *model.Configuration) xmlConfiguration {
	wire := xmlConfiguration{
		Name:     c.Name,
		UserInfo: encodeUserInfo(c.UserInfo),
	}
	for _, name := range c.MemberEntities {
		wire.Members = append(wire.Members, xmlMemberEntity{Name: name})
	}
	return wire
}
