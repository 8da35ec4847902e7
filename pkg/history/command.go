package history

import "github.com/mompack/mompack/pkg/model"

// Command kinds. A command either sets one field on one object or
// inserts/removes one item in one collection.
const (
	KindFieldSet         = "fieldSet"
	KindStructuralInsert = "structuralInsert"
	KindStructuralRemove = "structuralRemove"
)

// Collections a structural command can address.
const (
	CollectionEntities          = "entities"
	CollectionConfigurations    = "configurations"
	CollectionAttributes        = "attributes"
	CollectionRelationships     = "relationships"
	CollectionFetchedProperties = "fetchedProperties"
)

// Fields a field-set command can address. Dispatch is by target object
// type plus field name; shared names (name, userInfo, isOptional,
// isTransient) apply to whichever kind the target id resolves to.
const (
	FieldName                  = "name"
	FieldSchemaVersionLabel    = "schemaVersionLabel"
	FieldClassName             = "className"
	FieldParentEntity          = "parentEntity"
	FieldIsAbstract            = "isAbstract"
	FieldUniquenessConstraints = "uniquenessConstraints"
	FieldCompoundIndexes       = "compoundIndexes"
	FieldType                  = "type"
	FieldDefaultValue          = "defaultValue"
	FieldIsOptional            = "isOptional"
	FieldIsTransient           = "isTransient"
	FieldIsIndexed             = "isIndexed"
	FieldDestinationEntity     = "destinationEntity"
	FieldInverseRelationship   = "inverseRelationship"
	FieldDeleteRule            = "deleteRule"
	FieldIsToMany              = "isToMany"
	FieldIsOrdered             = "isOrdered"
	FieldMinCount              = "minCount"
	FieldMaxCount              = "maxCount"
	FieldPredicate             = "predicate"
	FieldFetchLimit            = "fetchLimit"
	FieldMemberEntities        = "memberEntities"
	FieldUserInfo              = "userInfo"
)

// Command is one reversible edit, bound to the Model it applies to.
// Commands are version-bound because object ids may legally repeat
// across versions of a package; a command never resolves ids in any
// model but its own.
type Command struct {
	Kind  string       // One of the Kind constants.
	Model *model.Model // The version this command executes against.

	// Field-set payload.
	Target string // Id of the object whose field changes.
	Field  string // One of the Field constants.
	Value  any    // The value to apply; the inverse carries the prior value.

	// Structural payload.
	Parent     string // Id of the owning object (the Model id for top-level collections).
	Collection string // One of the Collection constants.
	Item       any    // The item to insert; nil on removals and on no-op inverses.
	ItemID     string // Id of the item to remove or re-insert.
	Index      int    // Insertion position, clamped to the collection length.
}

// FieldSet builds a command that sets one field on the object with the
// given id.
func FieldSet(m *model.Model, targetID, field string, value any) Command {
	return Command{Kind: KindFieldSet, Model: m, Target: targetID, Field: field, Value: value}
}

// Insert builds a command that inserts item into the named collection of
// the parent object at the given index.
func Insert(m *model.Model, parentID, collection string, item any, itemID string, index int) Command {
	return Command{
		Kind:       KindStructuralInsert,
		Model:      m,
		Parent:     parentID,
		Collection: collection,
		Item:       item,
		ItemID:     itemID,
		Index:      index,
	}
}

// Remove builds a command that removes the item with the given id from
// the named collection of the parent object.
func Remove(m *model.Model, parentID, collection, itemID string) Command {
	return Command{
		Kind:       KindStructuralRemove,
		Model:      m,
		Parent:     parentID,
		Collection: collection,
		ItemID:     itemID,
	}
}

// apply executes the command against its model and returns the inverse.
// Targets are resolved by id now, not at construction time. A command
// whose target cannot be resolved is a no-op whose inverse no-ops too.
func (c Command) apply() Command {
	switch c.Kind {
	case KindFieldSet:
		return c.applyFieldSet()
	case KindStructuralInsert:
		return c.applyInsert()
	case KindStructuralRemove:
		return c.applyRemove()
	}
	return c
}

func (c Command) applyFieldSet() Command {
	obj := c.Model.FindObject(c.Target)
	if obj == nil {
		return c
	}
	old, ok := getField(obj, c.Field)
	if !ok || !setField(obj, c.Field, c.Value) {
		return c
	}
	inverse := c
	inverse.Value = old
	return inverse
}

func (c Command) applyInsert() Command {
	inverse := Remove(c.Model, c.Parent, c.Collection, c.ItemID)
	if c.Item == nil {
		// Inverse of a removal that found nothing; stays a no-op.
		return inverse
	}
	switch c.Collection {
	case CollectionEntities:
		if e, ok := c.Item.(*model.Entity); ok {
			c.Model.InsertEntity(e, c.Index)
		}
	case CollectionConfigurations:
		if cfg, ok := c.Item.(*model.Configuration); ok {
			c.Model.InsertConfiguration(cfg, c.Index)
		}
	case CollectionAttributes:
		if e := c.Model.FindEntity(c.Parent); e != nil {
			if a, ok := c.Item.(*model.Attribute); ok {
				e.InsertAttribute(a, c.Index)
			}
		}
	case CollectionRelationships:
		if e := c.Model.FindEntity(c.Parent); e != nil {
			if r, ok := c.Item.(*model.Relationship); ok {
				e.InsertRelationship(r, c.Index)
			}
		}
	case CollectionFetchedProperties:
		if e := c.Model.FindEntity(c.Parent); e != nil {
			if fp, ok := c.Item.(*model.FetchedProperty); ok {
				e.InsertFetchedProperty(fp, c.Index)
			}
		}
	}
	return inverse
}

func (c Command) applyRemove() Command {
	var (
		item  any
		index int
	)
	switch c.Collection {
	case CollectionEntities:
		removed, i := c.Model.RemoveEntity(c.ItemID)
		if removed != nil {
			item, index = removed, i
		}
	case CollectionConfigurations:
		removed, i := c.Model.RemoveConfiguration(c.ItemID)
		if removed != nil {
			item, index = removed, i
		}
	case CollectionAttributes:
		if e := c.Model.FindEntity(c.Parent); e != nil {
			if removed, i := e.RemoveAttribute(c.ItemID); removed != nil {
				item, index = removed, i
			}
		}
	case CollectionRelationships:
		if e := c.Model.FindEntity(c.Parent); e != nil {
			if removed, i := e.RemoveRelationship(c.ItemID); removed != nil {
				item, index = removed, i
			}
		}
	case CollectionFetchedProperties:
		if e := c.Model.FindEntity(c.Parent); e != nil {
			if removed, i := e.RemoveFetchedProperty(c.ItemID); removed != nil {
				item, index = removed, i
			}
		}
	}
	// item stays nil when nothing was removed; the resulting insert
	// no-ops rather than inventing an object.
	return Insert(c.Model, c.Parent, c.Collection, item, c.ItemID, index)
}
