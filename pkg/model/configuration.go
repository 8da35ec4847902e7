package model

// Configuration is a named subset of entities, used for partitioning a
// schema across stores. Members are entity name references in caller
// order; they may name entities not present in the Model.
type Configuration struct {
	ID             string            // UUID v7, generated on creation. Never serialized.
	Name           string            // Configuration name within the owning Model.
	MemberEntities []string          // Ordered entity name references.
	UserInfo       map[string]string // Free-form key/value annotations.
}

// NewConfiguration returns a detached Configuration with a fresh id.
func NewConfiguration(name string) *Configuration {
	return &Configuration{
		ID:   newID(),
		Name: name,
	}
}
