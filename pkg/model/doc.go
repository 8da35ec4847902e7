// Package model defines the in-memory schema document: a Model holding
// entities, attributes, relationships, fetched properties, and
// configurations, with structural mutation helpers and id-based lookup.
// The package does no I/O; persistence lives in pkg/codec and pkg/pack.
package model
