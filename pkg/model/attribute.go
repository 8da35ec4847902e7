package model

// Attribute types. These are the human-readable in-memory forms; the XML
// wire format differs for two of them (pkg/codec owns the translation).
const (
	AttributeTypeInteger16     = "Integer 16"
	AttributeTypeInteger32     = "Integer 32"
	AttributeTypeInteger64     = "Integer 64"
	AttributeTypeDecimal       = "Decimal"
	AttributeTypeDouble        = "Double"
	AttributeTypeFloat         = "Float"
	AttributeTypeString        = "String"
	AttributeTypeBoolean       = "Boolean"
	AttributeTypeDate          = "Date"
	AttributeTypeBinaryData    = "Binary Data"
	AttributeTypeUUID          = "UUID"
	AttributeTypeURI           = "URI"
	AttributeTypeTransformable = "Transformable"
	AttributeTypeObjectID      = "Object ID"
)

// validAttributeTypes is the set of recognized attribute type values.
var validAttributeTypes = map[string]bool{
	AttributeTypeInteger16:     true,
	AttributeTypeInteger32:     true,
	AttributeTypeInteger64:     true,
	AttributeTypeDecimal:       true,
	AttributeTypeDouble:        true,
	AttributeTypeFloat:         true,
	AttributeTypeString:        true,
	AttributeTypeBoolean:       true,
	AttributeTypeDate:          true,
	AttributeTypeBinaryData:    true,
	AttributeTypeUUID:          true,
	AttributeTypeURI:           true,
	AttributeTypeTransformable: true,
	AttributeTypeObjectID:      true,
}

// IsValidAttributeType reports whether the given string is a recognized
// attribute type.
func IsValidAttributeType(t string) bool {
	return validAttributeTypes[t]
}

// AttributeTypes returns all recognized attribute type values in their
// declaration order.
func AttributeTypes() []string {
	return []string{
		AttributeTypeInteger16,
		AttributeTypeInteger32,
		AttributeTypeInteger64,
		AttributeTypeDecimal,
		AttributeTypeDouble,
		AttributeTypeFloat,
		AttributeTypeString,
		AttributeTypeBoolean,
		AttributeTypeDate,
		AttributeTypeBinaryData,
		AttributeTypeUUID,
		AttributeTypeURI,
		AttributeTypeTransformable,
		AttributeTypeObjectID,
	}
}

// Attribute is a typed field on an Entity.
type Attribute struct {
	ID           string            // UUID v7, generated on creation. Never serialized.
	Name         string            // Field name within the owning entity.
	Type         string            // One of the AttributeType constants.
	DefaultValue *string           // Default stored as string regardless of type; nil means unset.
	IsOptional   bool              // Decode default is true; see pkg/codec.
	IsTransient  bool              // Transient attributes never reach the persistent store.
	IsIndexed    bool              // Single-attribute index hint.
	UserInfo     map[string]string // Free-form key/value annotations.
}

// NewAttribute returns a detached Attribute with a fresh id and the given
// type. New attributes start optional, matching the external tool's
// default for freshly added fields.
func NewAttribute(name, attributeType string) *Attribute {
	return &Attribute{
		ID:         newID(),
		Name:       name,
		Type:       attributeType,
		IsOptional: true,
	}
}
