package model

// Entity is a schema table-like definition: typed attributes,
// relationships to other entities, fetched properties, inheritance via
// ParentEntity, and index metadata. Cross-references (ParentEntity,
// Relationship.DestinationEntity) are plain names resolved at query time,
// never live pointers.
type Entity struct {
	ID                    string             // UUID v7, generated on creation. Never serialized.
	Name                  string             // XML-level reference key for this entity.
	ClassName             string             // Optional represented class name; "" means unset.
	ParentEntity          string             // Optional parent entity name; "" means no inheritance.
	IsAbstract            bool               // Abstract entities have no direct instances.
	UserInfo              map[string]string  // Free-form key/value annotations.
	Attributes            []*Attribute       // Ordered typed fields.
	Relationships         []*Relationship    // Ordered references to other entities.
	FetchedProperties     []*FetchedProperty // Ordered predicate-defined derived properties.
	UniquenessConstraints [][]string         // Groups of attribute names that must be jointly unique.
	CompoundIndexes       [][]string         // Groups of attribute names indexed together.
}

// NewEntity returns an empty Entity with the given name and a fresh id,
// detached from any Model.
func NewEntity(name string) *Entity {
	return &Entity{
		ID:   newID(),
		Name: name,
	}
}

// AddAttribute creates an Attribute with a fresh id and the given type,
// appends it to the entity, and returns it.
func (e *Entity) AddAttribute(name, attributeType string) *Attribute {
	a := NewAttribute(name, attributeType)
	e.Attributes = append(e.Attributes, a)
	return a
}

// InsertAttribute inserts a at the given index, clamped to the current
// collection length.
func (e *Entity) InsertAttribute(a *Attribute, index int) {
	e.Attributes = insertAt(e.Attributes, a, index)
}

// RemoveAttribute removes the attribute with the given id and returns it
// along with its former index. Returns (nil, -1) if the id is not found.
func (e *Entity) RemoveAttribute(id string) (*Attribute, int) {
	for i, a := range e.Attributes {
		if a.ID == id {
			e.Attributes = append(e.Attributes[:i], e.Attributes[i+1:]...)
			return a, i
		}
	}
	return nil, -1
}

// AddRelationship creates a Relationship with a fresh id pointing at the
// named destination entity, appends it to the entity, and returns it.
func (e *Entity) AddRelationship(name, destinationEntity string) *Relationship {
	r := NewRelationship(name, destinationEntity)
	e.Relationships = append(e.Relationships, r)
	return r
}

// InsertRelationship inserts r at the given index, clamped to the current
// collection length.
func (e *Entity) InsertRelationship(r *Relationship, index int) {
	e.Relationships = insertAt(e.Relationships, r, index)
}

// RemoveRelationship removes the relationship with the given id and
// returns it along with its former index. Returns (nil, -1) if the id is
// not found.
func (e *Entity) RemoveRelationship(id string) (*Relationship, int) {
	for i, r := range e.Relationships {
		if r.ID == id {
			e.Relationships = append(e.Relationships[:i], e.Relationships[i+1:]...)
			return r, i
		}
	}
	return nil, -1
}

// AddFetchedProperty creates a FetchedProperty with a fresh id and the
// given predicate, appends it to the entity, and returns it.
func (e *Entity) AddFetchedProperty(name, predicate string) *FetchedProperty {
	fp := NewFetchedProperty(name, predicate)
	e.FetchedProperties = append(e.FetchedProperties, fp)
	return fp
}

// InsertFetchedProperty inserts fp at the given index, clamped to the
// current collection length.
func (e *Entity) InsertFetchedProperty(fp *FetchedProperty, index int) {
	e.FetchedProperties = insertAt(e.FetchedProperties, fp, index)
}

// RemoveFetchedProperty removes the fetched property with the given id and
// returns it along with its former index. Returns (nil, -1) if the id is
// not found.
func (e *Entity) RemoveFetchedProperty(id string) (*FetchedProperty, int) {
	for i, fp := range e.FetchedProperties {
		if fp.ID == id {
			e.FetchedProperties = append(e.FetchedProperties[:i], e.FetchedProperties[i+1:]...)
			return fp, i
		}
	}
	return nil, -1
}

// AttributeNamed returns the first attribute with the given name, or nil.
func (e *Entity) AttributeNamed(name string) *Attribute {
	for _, a := range e.Attributes {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// RelationshipNamed returns the first relationship with the given name,
// or nil.
func (e *Entity) RelationshipNamed(name string) *Relationship {
	for _, r := range e.Relationships {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// FetchedPropertyNamed returns the first fetched property with the given
// name, or nil.
func (e *Entity) FetchedPropertyNamed(name string) *FetchedProperty {
	for _, fp := range e.FetchedProperties {
		if fp.Name == name {
			return fp
		}
	}
	return nil
}

// FindAttribute returns the attribute with the given id, or nil.
func (e *Entity) FindAttribute(id string) *Attribute {
	for _, a := range e.Attributes {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// FindRelationship returns the relationship with the given id, or nil.
func (e *Entity) FindRelationship(id string) *Relationship {
	for _, r := range e.Relationships {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// FindFetchedProperty returns the fetched property with the given id,
// or nil.
func (e *Entity) FindFetchedProperty(id string) *FetchedProperty {
	for _, fp := range e.FetchedProperties {
		if fp.ID == id {
			return fp
		}
	}
	return nil
}
