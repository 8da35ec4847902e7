package model

// Model is the root schema document for a single version. Entities and
// Configurations are ordered; new items append to the end. Name uniqueness
// is not enforced here: duplicate names are legal in memory and surface
// only through Validate, so editing flows are never blocked mid-rename.
type Model struct {
	ID                 string           // UUID v7, generated on creation. Never serialized.
	Name               string           // Version name, matches the package sub-directory.
	SchemaVersionLabel string           // Free-form version identifier stored in the document.
	IsCurrent          bool             // True when this version is the package's current one.
	Entities           []*Entity        // Ordered entity definitions.
	Configurations     []*Configuration // Ordered named entity subsets.
}

// New returns an empty Model with the given name and a fresh id.
func New(name string) *Model {
	return &Model{
		ID:   newID(),
		Name: name,
	}
}

// AddEntity creates an Entity with a fresh id, appends it to the Model,
// and returns it.
func (m *Model) AddEntity(name string) *Entity {
	e := NewEntity(name)
	m.Entities = append(m.Entities, e)
	return e
}

// InsertEntity inserts e at the given index, clamped to the current
// collection length. Used to restore removed entities at their original
// position.
func (m *Model) InsertEntity(e *Entity, index int) {
	m.Entities = insertAt(m.Entities, e, index)
}

// RemoveEntity removes the entity with the given id and returns it along
// with its former index. Returns (nil, -1) without modifying the Model if
// the id is not found.
func (m *Model) RemoveEntity(id string) (*Entity, int) {
	for i, e := range m.Entities {
		if e.ID == id {
			m.Entities = append(m.Entities[:i], m.Entities[i+1:]...)
			return e, i
		}
	}
	return nil, -1
}

// AddConfiguration creates a Configuration with a fresh id, appends it to
// the Model, and returns it.
func (m *Model) AddConfiguration(name string) *Configuration {
	c := NewConfiguration(name)
	m.Configurations = append(m.Configurations, c)
	return c
}

// InsertConfiguration inserts c at the given index, clamped to the current
// collection length.
func (m *Model) InsertConfiguration(c *Configuration, index int) {
	m.Configurations = insertAt(m.Configurations, c, index)
}

// RemoveConfiguration removes the configuration with the given id and
// returns it along with its former index. Returns (nil, -1) if the id is
// not found.
func (m *Model) RemoveConfiguration(id string) (*Configuration, int) {
	for i, c := range m.Configurations {
		if c.ID == id {
			m.Configurations = append(m.Configurations[:i], m.Configurations[i+1:]...)
			return c, i
		}
	}
	return nil, -1
}

// EntityNamed returns the first entity with the given name, or nil.
// Name references elsewhere in the document (destinationEntity,
// parentEntity, configuration members) resolve through this at query time;
// renames never cascade.
func (m *Model) EntityNamed(name string) *Entity {
	for _, e := range m.Entities {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// ConfigurationNamed returns the first configuration with the given name,
// or nil.
func (m *Model) ConfigurationNamed(name string) *Configuration {
	for _, c := range m.Configurations {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// FindEntity returns the entity with the given id, or nil.
func (m *Model) FindEntity(id string) *Entity {
	for _, e := range m.Entities {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// FindConfiguration returns the configuration with the given id, or nil.
func (m *Model) FindConfiguration(id string) *Configuration {
	for _, c := range m.Configurations {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// FindAttribute returns the attribute with the given id from any entity,
// or nil.
func (m *Model) FindAttribute(id string) *Attribute {
	for _, e := range m.Entities {
		if a := e.FindAttribute(id); a != nil {
			return a
		}
	}
	return nil
}

// FindRelationship returns the relationship with the given id from any
// entity, or nil.
func (m *Model) FindRelationship(id string) *Relationship {
	for _, e := range m.Entities {
		if r := e.FindRelationship(id); r != nil {
			return r
		}
	}
	return nil
}

// FindFetchedProperty returns the fetched property with the given id from
// any entity, or nil.
func (m *Model) FindFetchedProperty(id string) *FetchedProperty {
	for _, e := range m.Entities {
		if fp := e.FindFetchedProperty(id); fp != nil {
			return fp
		}
	}
	return nil
}

// FindObject returns the object with the given id regardless of kind: the
// Model itself, an Entity, Attribute, Relationship, FetchedProperty, or
// Configuration. Returns nil if no object carries the id.
func (m *Model) FindObject(id string) any {
	if m.ID == id {
		return m
	}
	if e := m.FindEntity(id); e != nil {
		return e
	}
	if a := m.FindAttribute(id); a != nil {
		return a
	}
	if r := m.FindRelationship(id); r != nil {
		return r
	}
	if fp := m.FindFetchedProperty(id); fp != nil {
		return fp
	}
	if c := m.FindConfiguration(id); c != nil {
		return c
	}
	return nil
}

// insertAt inserts item into items at index, clamping index to [0, len].
func insertAt[T any](items []T, item T, index int) []T {
	if index < 0 {
		index = 0
	}
	if index > len(items) {
		index = len(items)
	}
	items = append(items, item)
	copy(items[index+1:], items[index:])
	items[index] = item
	return items
}
