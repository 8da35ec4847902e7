package editor

import (
	"github.com/mompack/mompack/pkg/history"
	"github.com/mompack/mompack/pkg/model"
)

// Structural and field edits below all address objects in the current
// version by id and are silent no-ops on ids that resolve to nothing;
// a no-op records no command, so it costs no undo slot.

// AddEntity appends a new entity to the current model and returns it.
func (d *Document) AddEntity(name string) *model.Entity {
	m := d.Model()
	e := model.NewEntity(name)
	d.do(history.Insert(m, m.ID, history.CollectionEntities, e, e.ID, len(m.Entities)))
	return e
}

// RemoveEntity removes the entity with the given id.
func (d *Document) RemoveEntity(id string) {
	m := d.Model()
	if m.FindEntity(id) == nil {
		return
	}
	d.do(history.Remove(m, m.ID, history.CollectionEntities, id))
}

// AddConfiguration appends a new configuration to the current model and
// returns it.
func (d *Document) AddConfiguration(name string) *model.Configuration {
	m := d.Model()
	c := model.NewConfiguration(name)
	d.do(history.Insert(m, m.ID, history.CollectionConfigurations, c, c.ID, len(m.Configurations)))
	return c
}

// RemoveConfiguration removes the configuration with the given id.
func (d *Document) RemoveConfiguration(id string) {
	m := d.Model()
	if m.FindConfiguration(id) == nil {
		return
	}
	d.do(history.Remove(m, m.ID, history.CollectionConfigurations, id))
}

// AddAttribute appends a new attribute to the entity with the given id
// and returns it, or returns nil when the entity is unknown.
func (d *Document) AddAttribute(entityID, name, attributeType string) *model.Attribute {
	m := d.Model()
	e := m.FindEntity(entityID)
	if e == nil {
		return nil
	}
	a := model.NewAttribute(name, attributeType)
	d.do(history.Insert(m, entityID, history.CollectionAttributes, a, a.ID, len(e.Attributes)))
	return a
}

// RemoveAttribute removes the attribute with the given id from the entity
// with the given id.
func (d *Document) RemoveAttribute(entityID, attributeID string) {
	m := d.Model()
	e := m.FindEntity(entityID)
	if e == nil || e.FindAttribute(attributeID) == nil {
		return
	}
	d.do(history.Remove(m, entityID, history.CollectionAttributes, attributeID))
}

// AddRelationship appends a new relationship to the entity with the given
// id and returns it, or returns nil when the entity is unknown.
func (d *Document) AddRelationship(entityID, name, destinationEntity string) *model.Relationship {
	m := d.Model()
	e := m.FindEntity(entityID)
	if e == nil {
		return nil
	}
	r := model.NewRelationship(name, destinationEntity)
	d.do(history.Insert(m, entityID, history.CollectionRelationships, r, r.ID, len(e.Relationships)))
	return r
}

// RemoveRelationship removes the relationship with the given id from the
// entity with the given id.
func (d *Document) RemoveRelationship(entityID, relationshipID string) {
	m := d.Model()
	e := m.FindEntity(entityID)
	if e == nil || e.FindRelationship(relationshipID) == nil {
		return
	}
	d.do(history.Remove(m, entityID, history.CollectionRelationships, relationshipID))
}

// AddFetchedProperty appends a new fetched property to the entity with
// the given id and returns it, or returns nil when the entity is unknown.
func (d *Document) AddFetchedProperty(entityID, name, predicate string) *model.FetchedProperty {
	m := d.Model()
	e := m.FindEntity(entityID)
	if e == nil {
		return nil
	}
	fp := model.NewFetchedProperty(name, predicate)
	d.do(history.Insert(m, entityID, history.CollectionFetchedProperties, fp, fp.ID, len(e.FetchedProperties)))
	return fp
}

// RemoveFetchedProperty removes the fetched property with the given id
// from the entity with the given id.
func (d *Document) RemoveFetchedProperty(entityID, fetchedPropertyID string) {
	m := d.Model()
	e := m.FindEntity(entityID)
	if e == nil || e.FindFetchedProperty(fetchedPropertyID) == nil {
		return
	}
	d.do(history.Remove(m, entityID, history.CollectionFetchedProperties, fetchedPropertyID))
}

// SetSchemaVersionLabel sets the current model's free-form version
// identifier.
func (d *Document) SetSchemaVersionLabel(value string) {
	m := d.Model()
	d.do(history.FieldSet(m, m.ID, history.FieldSchemaVersionLabel, value))
}

// SetEntityName renames the entity with the given id. References held by
// relationships, parent links, and configurations keep the old name; they
// resolve, or fail to, at query time.
func (d *Document) SetEntityName(id, name string) {
	d.setEntityField(id, history.FieldName, name)
}

// SetEntityClassName sets the represented class name of the entity.
func (d *Document) SetEntityClassName(id, className string) {
	d.setEntityField(id, history.FieldClassName, className)
}

// SetEntityParent sets the parent entity name; "" clears inheritance.
func (d *Document) SetEntityParent(id, parentEntity string) {
	d.setEntityField(id, history.FieldParentEntity, parentEntity)
}

// SetEntityAbstract marks or unmarks the entity as abstract.
func (d *Document) SetEntityAbstract(id string, abstract bool) {
	d.setEntityField(id, history.FieldIsAbstract, abstract)
}

// SetEntityUniquenessConstraints replaces the entity's uniqueness groups.
func (d *Document) SetEntityUniquenessConstraints(id string, groups [][]string) {
	d.setEntityField(id, history.FieldUniquenessConstraints, groups)
}

// SetEntityCompoundIndexes replaces the entity's compound index groups.
func (d *Document) SetEntityCompoundIndexes(id string, groups [][]string) {
	d.setEntityField(id, history.FieldCompoundIndexes, groups)
}

func (d *Document) setEntityField(id, field string, value any) {
	m := d.Model()
	if m.FindEntity(id) == nil {
		return
	}
	d.do(history.FieldSet(m, id, field, value))
}

// SetAttributeName renames the attribute with the given id.
func (d *Document) SetAttributeName(id, name string) {
	d.setAttributeField(id, history.FieldName, name)
}

// SetAttributeType sets the attribute's type string.
func (d *Document) SetAttributeType(id, attributeType string) {
	d.setAttributeField(id, history.FieldType, attributeType)
}

// SetAttributeDefault sets the attribute's default value; nil clears it.
func (d *Document) SetAttributeDefault(id string, value *string) {
	d.setAttributeField(id, history.FieldDefaultValue, value)
}

// SetAttributeOptional sets whether the attribute may be absent.
func (d *Document) SetAttributeOptional(id string, optional bool) {
	d.setAttributeField(id, history.FieldIsOptional, optional)
}

// SetAttributeTransient sets whether the attribute skips the store.
func (d *Document) SetAttributeTransient(id string, transient bool) {
	d.setAttributeField(id, history.FieldIsTransient, transient)
}

// SetAttributeIndexed sets the attribute's single-column index hint.
func (d *Document) SetAttributeIndexed(id string, indexed bool) {
	d.setAttributeField(id, history.FieldIsIndexed, indexed)
}

func (d *Document) setAttributeField(id, field string, value any) {
	m := d.Model()
	if m.FindAttribute(id) == nil {
		return
	}
	d.do(history.FieldSet(m, id, field, value))
}

// SetRelationshipName renames the relationship with the given id.
func (d *Document) SetRelationshipName(id, name string) {
	d.setRelationshipField(id, history.FieldName, name)
}

// SetRelationshipDestination sets the destination entity name.
func (d *Document) SetRelationshipDestination(id, destinationEntity string) {
	d.setRelationshipField(id, history.FieldDestinationEntity, destinationEntity)
}

// SetRelationshipInverse sets the inverse relationship name; "" clears it.
func (d *Document) SetRelationshipInverse(id, inverse string) {
	d.setRelationshipField(id, history.FieldInverseRelationship, inverse)
}

// SetRelationshipDeleteRule sets the delete rule label.
func (d *Document) SetRelationshipDeleteRule(id, rule string) {
	d.setRelationshipField(id, history.FieldDeleteRule, rule)
}

// SetRelationshipOptional sets whether the relationship may be absent.
func (d *Document) SetRelationshipOptional(id string, optional bool) {
	d.setRelationshipField(id, history.FieldIsOptional, optional)
}

// SetRelationshipTransient sets whether the relationship skips the store.
func (d *Document) SetRelationshipTransient(id string, transient bool) {
	d.setRelationshipField(id, history.FieldIsTransient, transient)
}

// SetRelationshipToMany sets the relationship's cardinality direction.
func (d *Document) SetRelationshipToMany(id string, toMany bool) {
	d.setRelationshipField(id, history.FieldIsToMany, toMany)
}

// SetRelationshipOrdered sets whether a to-many relationship keeps order.
func (d *Document) SetRelationshipOrdered(id string, ordered bool) {
	d.setRelationshipField(id, history.FieldIsOrdered, ordered)
}

// SetRelationshipMinCount sets the lower cardinality bound; nil clears it.
func (d *Document) SetRelationshipMinCount(id string, count *int) {
	d.setRelationshipField(id, history.FieldMinCount, count)
}

// SetRelationshipMaxCount sets the upper cardinality bound; nil clears it.
func (d *Document) SetRelationshipMaxCount(id string, count *int) {
	d.setRelationshipField(id, history.FieldMaxCount, count)
}

func (d *Document) setRelationshipField(id, field string, value any) {
	m := d.Model()
	if m.FindRelationship(id) == nil {
		return
	}
	d.do(history.FieldSet(m, id, field, value))
}

// SetFetchedPropertyName renames the fetched property with the given id.
func (d *Document) SetFetchedPropertyName(id, name string) {
	d.setFetchedPropertyField(id, history.FieldName, name)
}

// SetFetchedPropertyPredicate sets the opaque predicate string.
func (d *Document) SetFetchedPropertyPredicate(id, predicate string) {
	d.setFetchedPropertyField(id, history.FieldPredicate, predicate)
}

// SetFetchedPropertyFetchLimit sets the result cap; nil means unlimited.
func (d *Document) SetFetchedPropertyFetchLimit(id string, limit *int) {
	d.setFetchedPropertyField(id, history.FieldFetchLimit, limit)
}

func (d *Document) setFetchedPropertyField(id, field string, value any) {
	m := d.Model()
	if m.FindFetchedProperty(id) == nil {
		return
	}
	d.do(history.FieldSet(m, id, field, value))
}

// SetConfigurationName renames the configuration with the given id.
func (d *Document) SetConfigurationName(id, name string) {
	d.setConfigurationField(id, history.FieldName, name)
}

// SetConfigurationMembers replaces the configuration's entity name list.
func (d *Document) SetConfigurationMembers(id string, members []string) {
	d.setConfigurationField(id, history.FieldMemberEntities, members)
}

func (d *Document) setConfigurationField(id, field string, value any) {
	m := d.Model()
	if m.FindConfiguration(id) == nil {
		return
	}
	d.do(history.FieldSet(m, id, field, value))
}

// SetUserInfo replaces the userInfo map on the entity, attribute,
// relationship, fetched property, or configuration with the given id.
func (d *Document) SetUserInfo(id string, info map[string]string) {
	m := d.Model()
	obj := m.FindObject(id)
	if obj == nil {
		return
	}
	if _, isModel := obj.(*model.Model); isModel {
		return
	}
	d.do(history.FieldSet(m, id, history.FieldUserInfo, info))
}
