// Package codec converts between model.Model and the on-disk XML dialect
// of a version's contents document. One document holds exactly one Model.
//
// The wire format is attribute-heavy: scalar fields are XML attributes,
// collections and userInfo are child elements. Booleans are the literals
// "YES" and "NO"; most default to false when absent, but attribute and
// relationship optionality defaults to true. Empty userInfo maps are
// omitted entirely rather than written as empty elements.
package codec
