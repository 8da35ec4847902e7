package model

// FetchedProperty is a predicate-defined derived property on an Entity.
// The predicate is an opaque query string; it is stored and round-tripped
// but never parsed.
type FetchedProperty struct {
	ID         string            // UUID v7, generated on creation. Never serialized.
	Name       string            // Property name within the owning entity.
	Predicate  string            // Opaque query-predicate string.
	FetchLimit *int              // Optional result cap; nil means unlimited.
	UserInfo   map[string]string // Free-form key/value annotations.
}

// NewFetchedProperty returns a detached FetchedProperty with a fresh id
// and the given predicate.
func NewFetchedProperty(name, predicate string) *FetchedProperty {
	return &FetchedProperty{
		ID:        newID(),
		Name:      name,
		Predicate: predicate,
	}
}
