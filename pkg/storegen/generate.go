package storegen

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mompack/mompack/pkg/model"
)

// Generate creates the store layout for the model in db: one Z-table per
// root entity, join tables for many-to-many pairs, indexes, and the
// seeded Z_PRIMARYKEY and Z_METADATA system tables. The database is
// expected to be empty; existing tables with colliding names make the
// DDL fail.
func Generate(db *sql.DB, m *model.Model) error {
	plan := planStore(m)
	for _, stmt := range plan.statements() {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("creating store layout: %w", err)
		}
	}
	return seed(db, m)
}

// seed fills Z_PRIMARYKEY with one row per entity and writes the store
// identity row to Z_METADATA.
func seed(db *sql.DB, m *model.Model) error {
	for _, row := range primaryKeyRows(m) {
		_, err := db.Exec(
			"INSERT INTO Z_PRIMARYKEY (Z_ENT, Z_NAME, Z_SUPER, Z_MAX) VALUES (?, ?, ?, ?)",
			row.ent, row.name, row.super, 0)
		if err != nil {
			return fmt.Errorf("seeding entity %s: %w", row.name, err)
		}
	}
	_, err := db.Exec(
		"INSERT INTO Z_METADATA (Z_VERSION, Z_UUID, Z_PLIST) VALUES (?, ?, NULL)",
		1, uuid.New().String())
	if err != nil {
		return fmt.Errorf("seeding store metadata: %w", err)
	}
	return nil
}
