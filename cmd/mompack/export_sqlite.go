// Export sqlite command materializes a version as a SQLite store.
package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/mompack/mompack/pkg/storegen"
)

var exportSqliteVersion string

var exportSqliteCmd = &cobra.Command{
	Use:   "sqlite <dbfile>",
	Short: "Generate the SQLite store a version describes",
	Long: `Sqlite creates a new SQLite database laid out the way the persistence
runtime would build it for the version: one table per root entity with
the flattened column union, join tables for many-to-many pairs, indexes,
and the seeded system tables.

Refuses to overwrite an existing file.

Example:
  mompack export sqlite store.db
  mompack export sqlite v2.db --version Model_v2`,
	Args: cobra.ExactArgs(1),
	RunE: runExportSqlite,
}

func init() {
	exportSqliteCmd.Flags().StringVar(&exportSqliteVersion, "version", "", "version to export (default: current)")
}

func runExportSqlite(cmd *cobra.Command, args []string) error {
	dbfile := args[0]

	if _, err := os.Stat(dbfile); err == nil {
		return fmt.Errorf("%s already exists", dbfile)
	} else if !os.IsNotExist(err) {
		return sysErrf("stat %s: %w", dbfile, err)
	}

	doc, err := openDocument()
	if err != nil {
		return err
	}
	m, err := resolveModel(doc, exportSqliteVersion)
	if err != nil {
		return err
	}

	db, err := sql.Open("sqlite", dbfile)
	if err != nil {
		return sysErrf("open database %s: %w", dbfile, err)
	}
	defer db.Close()

	if err := storegen.Generate(db, m); err != nil {
		return sysErrf("export %s: %w", dbfile, err)
	}

	fmt.Println("Exported", m.Name, "to", dbfile)
	return nil
}
