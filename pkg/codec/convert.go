package codec

import (
	"sort"
	"strconv"

	"github.com/mompack/mompack/pkg/model"
)

// attributeTypeToXML maps the in-memory attribute type names to the wire
// names that differ; every other type passes through unchanged.
var attributeTypeToXML = map[string]string{
	model.AttributeTypeBinaryData: "Binary",
	model.AttributeTypeObjectID:   "ObjectID",
}

// attributeTypeFromXML is the reverse of attributeTypeToXML.
var attributeTypeFromXML = map[string]string{
	"Binary":   model.AttributeTypeBinaryData,
	"ObjectID": model.AttributeTypeObjectID,
}

// encodeAttributeType returns the wire name of an attribute type.
func encodeAttributeType(t string) string {
	if wire, ok := attributeTypeToXML[t]; ok {
		return wire
	}
	return t
}

// decodeAttributeType returns the in-memory name of a wire attribute type.
// Unrecognized values fall back to String so one bad attribute never fails
// the whole document.
func decodeAttributeType(value string) string {
	if mem, ok := attributeTypeFromXML[value]; ok {
		return mem
	}
	if model.IsValidAttributeType(value) {
		return value
	}
	return model.AttributeTypeString
}

// decodeDeleteRule returns the delete rule for a wire value. Absent or
// unrecognized values fall back to Nullify.
func decodeDeleteRule(value string) string {
	if model.IsValidDeleteRule(value) {
		return value
	}
	return model.DeleteRuleNullify
}

// formatBool returns the wire form of a boolean.
func formatBool(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}

// optionalBool returns the wire form of a boolean that is only written
// when true.
func optionalBool(b bool) string {
	if b {
		return "YES"
	}
	return ""
}

// parseBool interprets a wire boolean. Absent attributes and unrecognized
// values yield def.
func parseBool(value string, def bool) bool {
	switch value {
	case "YES":
		return true
	case "NO":
		return false
	default:
		return def
	}
}

// formatCount returns the decimal wire form of an optional count; nil
// yields the empty string, which omits the attribute.
func formatCount(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

// parseCount interprets a decimal wire count. Absent or unparseable
// values yield nil, never zero.
func parseCount(value string) *int {
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &n
}

// encodeUserInfo builds the wire element for a userInfo map, with entries
// in sorted key order so map iteration never leaks into the output.
// Empty maps yield nil, which omits the element entirely.
func encodeUserInfo(info map[string]string) *xmlUserInfo {
	if len(info) == 0 {
		return nil
	}
	keys := make([]string, 0, len(info))
	for k := range info {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	entries := make([]xmlEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, xmlEntry{Key: k, Value: info[k]})
	}
	return &xmlUserInfo{Entries: entries}
}

// decodeUserInfo builds the in-memory map for a userInfo element. An
// absent or empty element yields nil; nil and the empty map are
// interchangeable everywhere in pkg/model.
func decodeUserInfo(wire *xmlUserInfo) map[string]string {
	if wire == nil || len(wire.Entries) == 0 {
		return nil
	}
	info := make(map[string]string, len(wire.Entries))
	for _, entry := range wire.Entries {
		info[entry.Key] = entry.Value
	}
	return info
}
