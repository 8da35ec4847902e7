package storegen

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func openStore(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "store.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(
		"SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&n)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	return n == 1
}

func TestGenerateCreatesStoreLayout(t *testing.T) {
	db := openStore(t)
	if err := Generate(db, sampleModel()); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, name := range []string{"Z_PRIMARYKEY", "Z_METADATA", "ZPERSON", "ZGROUP", "Z_2MEMBERS"} {
		if !tableExists(t, db, name) {
			t.Errorf("table %s missing from generated store", name)
		}
	}
	if tableExists(t, db, "ZEMPLOYEE") {
		t.Error("subentity must flatten into its root, not get its own table")
	}
}

func TestGenerateColumnLayout(t *testing.T) {
	db := openStore(t)
	if err := Generate(db, sampleModel()); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	rows, err := db.Query("PRAGMA table_info(ZPERSON)")
	if err != nil {
		t.Fatalf("table_info: %v", err)
	}
	defer rows.Close()

	types := map[string]string{}
	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			t.Fatalf("scan table_info: %v", err)
		}
		types[name] = colType
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("table_info rows: %v", err)
	}

	checks := map[string]string{
		"Z_PK":    "INTEGER",
		"Z_ENT":   "INTEGER",
		"ZAGE":    "INTEGER",
		"ZNAME":   "VARCHAR",
		"ZSALARY": "FLOAT",
		"ZHIRED":  "TIMESTAMP",
		"ZPHOTO":  "BLOB",
	}
	for col, want := range checks {
		if types[col] != want {
			t.Errorf("ZPERSON.%s type = %q, want %q", col, types[col], want)
		}
	}
	if _, ok := types["ZCACHED"]; ok {
		t.Error("transient attribute reached the store")
	}
}

func TestGenerateSeedsSystemTables(t *testing.T) {
	db := openStore(t)
	if err := Generate(db, sampleModel()); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var n int
	if err := db.QueryRow("SELECT count(*) FROM Z_PRIMARYKEY").Scan(&n); err != nil {
		t.Fatalf("count Z_PRIMARYKEY: %v", err)
	}
	if n != 3 {
		t.Errorf("Z_PRIMARYKEY rows = %d, want one per entity (3)", n)
	}

	var super int
	err := db.QueryRow("SELECT Z_SUPER FROM Z_PRIMARYKEY WHERE Z_NAME = 'Employee'").Scan(&super)
	if err != nil {
		t.Fatalf("query Employee row: %v", err)
	}
	if super != 1 {
		t.Errorf("Employee Z_SUPER = %d, want 1 (Person)", super)
	}

	var storeUUID string
	if err := db.QueryRow("SELECT Z_UUID FROM Z_METADATA WHERE Z_VERSION = 1").Scan(&storeUUID); err != nil {
		t.Fatalf("query Z_METADATA: %v", err)
	}
	if storeUUID == "" {
		t.Error("store uuid should not be empty")
	}
}

func TestGenerateUniqueIndexEnforced(t *testing.T) {
	db := openStore(t)
	if err := Generate(db, sampleModel()); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := db.Exec("INSERT INTO ZPERSON (Z_PK, Z_ENT, Z_OPT, ZNAME) VALUES (1, 1, 1, 'Ada')"); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if _, err := db.Exec("INSERT INTO ZPERSON (Z_PK, Z_ENT, Z_OPT, ZNAME) VALUES (2, 1, 1, 'Ada')"); err == nil {
		t.Error("duplicate name should violate the uniqueness constraint index")
	}
}

func TestGenerateOnEmptySchema(t *testing.T) {
	db := openStore(t)
	m := sampleModel()
	m.Entities = nil
	if err := Generate(db, m); err != nil {
		t.Fatalf("Generate with no entities failed: %v", err)
	}
	if !tableExists(t, db, "Z_PRIMARYKEY") || !tableExists(t, db, "Z_METADATA") {
		t.Error("system tables must exist even for an empty schema")
	}
	var n int
	if err := db.QueryRow("SELECT count(*) FROM Z_PRIMARYKEY").Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("empty schema should seed no entity rows, got %d", n)
	}
}
