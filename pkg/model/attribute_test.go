package model

import (
	"testing"
)

func TestIsValidAttributeType(t *testing.T) {
	for _, at := range AttributeTypes() {
		if !IsValidAttributeType(at) {
			t.Errorf("IsValidAttributeType(%q) = false, want true", at)
		}
	}
	invalid := []string{"", "Integer", "integer 32", "Binary", "ObjectID", "blob"}
	for _, at := range invalid {
		if IsValidAttributeType(at) {
			t.Errorf("IsValidAttributeType(%q) = true, want false", at)
		}
	}
}

func TestAttributeTypesCount(t *testing.T) {
	if got := len(AttributeTypes()); got != len(validAttributeTypes) {
		t.Errorf("AttributeTypes() returned %d types, want %d", got, len(validAttributeTypes))
	}
}

func TestIsValidDeleteRule(t *testing.T) {
	for _, r := range DeleteRules() {
		if !IsValidDeleteRule(r) {
			t.Errorf("IsValidDeleteRule(%q) = false, want true", r)
		}
	}
	invalid := []string{"", "nullify", "NoAction", "Restrict"}
	for _, r := range invalid {
		if IsValidDeleteRule(r) {
			t.Errorf("IsValidDeleteRule(%q) = true, want false", r)
		}
	}
}
