// Package pack manages a model package: the .xcdatamodeld directory
// bundling every version of a schema document plus the marker naming the
// current one. It owns the version name to Model mapping and the version
// lifecycle (create, rename, delete, switch), and loads and saves the
// package directory through pkg/codec.
package pack
