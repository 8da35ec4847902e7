package model

// Delete rules determine what happens to related objects when the source
// object is deleted. The constant values are the wire-format labels.
const (
	DeleteRuleNullify  = "Nullify"
	DeleteRuleCascade  = "Cascade"
	DeleteRuleDeny     = "Deny"
	DeleteRuleNoAction = "No Action"
)

// validDeleteRules is the set of recognized delete rule values.
var validDeleteRules = map[string]bool{
	DeleteRuleNullify:  true,
	DeleteRuleCascade:  true,
	DeleteRuleDeny:     true,
	DeleteRuleNoAction: true,
}

// IsValidDeleteRule reports whether the given string is a recognized
// delete rule.
func IsValidDeleteRule(r string) bool {
	return validDeleteRules[r]
}

// DeleteRules returns all recognized delete rule values in their
// declaration order.
func DeleteRules() []string {
	return []string{DeleteRuleNullify, DeleteRuleCascade, DeleteRuleDeny, DeleteRuleNoAction}
}

// Relationship is a named reference from one Entity to another.
// DestinationEntity and InverseRelationship are name references that may
// legally point at names not currently present in the Model; nothing here
// enforces them.
type Relationship struct {
	ID                  string            // UUID v7, generated on creation. Never serialized.
	Name                string            // Relationship name within the owning entity.
	DestinationEntity   string            // Name of the target entity.
	InverseRelationship string            // Optional name of the inverse on the destination; "" means none.
	DeleteRule          string            // One of the DeleteRule constants.
	IsOptional          bool              // Decode default is true; see pkg/codec.
	IsTransient         bool              // Transient relationships never reach the persistent store.
	IsToMany            bool              // False means to-one.
	IsOrdered           bool              // Meaningful only when IsToMany.
	MinCount            *int              // Optional lower cardinality bound; nil means unset.
	MaxCount            *int              // Optional upper cardinality bound; nil means unset.
	UserInfo            map[string]string // Free-form key/value annotations.
}

// NewRelationship returns a detached Relationship with a fresh id pointing
// at the named destination entity. New relationships start optional with
// the Nullify delete rule.
func NewRelationship(name, destinationEntity string) *Relationship {
	return &Relationship{
		ID:                newID(),
		Name:              name,
		DestinationEntity: destinationEntity,
		DeleteRule:        DeleteRuleNullify,
		IsOptional:        true,
	}
}
