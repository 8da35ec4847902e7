// Package storegen materializes the SQLite store a schema version
// describes. Entity hierarchies flatten into one Z-table per root entity
// holding the column union of the whole hierarchy; Z_ENT tells rows of
// different subentities apart. System tables Z_PRIMARYKEY and Z_METADATA
// are created and seeded the way the runtime would. The output is a
// preview of the store layout, not a live persistence layer.
package storegen
