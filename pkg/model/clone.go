package model

// Clone returns a recursive deep copy of the Model. Object ids are
// preserved: clones live in separate versions and ids are never compared
// across versions, so fresh ids would buy nothing.
func (m *Model) Clone() *Model {
	c := &Model{
		ID:                 m.ID,
		Name:               m.Name,
		SchemaVersionLabel: m.SchemaVersionLabel,
		IsCurrent:          m.IsCurrent,
	}
	if m.Entities != nil {
		c.Entities = make([]*Entity, len(m.Entities))
		for i, e := range m.Entities {
			c.Entities[i] = e.Clone()
		}
	}
	if m.Configurations != nil {
		c.Configurations = make([]*Configuration, len(m.Configurations))
		for i, cfg := range m.Configurations {
			c.Configurations[i] = cfg.Clone()
		}
	}
	return c
}

// Clone returns a deep copy of the Entity and all child collections.
func (e *Entity) Clone() *Entity {
	c := &Entity{
		ID:                    e.ID,
		Name:                  e.Name,
		ClassName:             e.ClassName,
		ParentEntity:          e.ParentEntity,
		IsAbstract:            e.IsAbstract,
		UserInfo:              cloneUserInfo(e.UserInfo),
		UniquenessConstraints: cloneNameGroups(e.UniquenessConstraints),
		CompoundIndexes:       cloneNameGroups(e.CompoundIndexes),
	}
	if e.Attributes != nil {
		c.Attributes = make([]*Attribute, len(e.Attributes))
		for i, a := range e.Attributes {
			c.Attributes[i] = a.Clone()
		}
	}
	if e.Relationships != nil {
		c.Relationships = make([]*Relationship, len(e.Relationships))
		for i, r := range e.Relationships {
			c.Relationships[i] = r.Clone()
		}
	}
	if e.FetchedProperties != nil {
		c.FetchedProperties = make([]*FetchedProperty, len(e.FetchedProperties))
		for i, fp := range e.FetchedProperties {
			c.FetchedProperties[i] = fp.Clone()
		}
	}
	return c
}

// Clone returns a deep copy of the Attribute.
func (a *Attribute) Clone() *Attribute {
	return &Attribute{
		ID:           a.ID,
		Name:         a.Name,
		Type:         a.Type,
		DefaultValue: cloneStringPtr(a.DefaultValue),
		IsOptional:   a.IsOptional,
		IsTransient:  a.IsTransient,
		IsIndexed:    a.IsIndexed,
		UserInfo:     cloneUserInfo(a.UserInfo),
	}
}

// Clone returns a deep copy of the Relationship.
func (r *Relationship) Clone() *Relationship {
	return &Relationship{
		ID:                  r.ID,
		Name:                r.Name,
		DestinationEntity:   r.DestinationEntity,
		InverseRelationship: r.InverseRelationship,
		DeleteRule:          r.DeleteRule,
		IsOptional:          r.IsOptional,
		IsTransient:         r.IsTransient,
		IsToMany:            r.IsToMany,
		IsOrdered:           r.IsOrdered,
		MinCount:            cloneIntPtr(r.MinCount),
		MaxCount:            cloneIntPtr(r.MaxCount),
		UserInfo:            cloneUserInfo(r.UserInfo),
	}
}

// Clone returns a deep copy of the FetchedProperty.
func (fp *FetchedProperty) Clone() *FetchedProperty {
	return &FetchedProperty{
		ID:         fp.ID,
		Name:       fp.Name,
		Predicate:  fp.Predicate,
		FetchLimit: cloneIntPtr(fp.FetchLimit),
		UserInfo:   cloneUserInfo(fp.UserInfo),
	}
}

// Clone returns a deep copy of the Configuration.
func (c *Configuration) Clone() *Configuration {
	clone := &Configuration{
		ID:       c.ID,
		Name:     c.Name,
		UserInfo: cloneUserInfo(c.UserInfo),
	}
	if c.MemberEntities != nil {
		clone.MemberEntities = append([]string(nil), c.MemberEntities...)
	}
	return clone
}

// cloneUserInfo copies a userInfo map; nil stays nil.
func cloneUserInfo(info map[string]string) map[string]string {
	if info == nil {
		return nil
	}
	c := make(map[string]string, len(info))
	for k, v := range info {
		c[k] = v
	}
	return c
}

// cloneNameGroups copies a slice of attribute-name groups; nil stays nil.
func cloneNameGroups(groups [][]string) [][]string {
	if groups == nil {
		return nil
	}
	c := make([][]string, len(groups))
	for i, g := range groups {
		c[i] = append([]string(nil), g...)
	}
	return c
}

// cloneStringPtr copies an optional string; nil stays nil.
func cloneStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// cloneIntPtr copies an optional int; nil stays nil.
func cloneIntPtr(n *int) *int {
	if n == nil {
		return nil
	}
	v := *n
	return &v
}
