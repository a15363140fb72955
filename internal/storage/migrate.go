package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrateUp brings the blob store schema to the latest version. It is
// safe to run on every open; statements are idempotent.
func MigrateUp(db *sql.DB) error {
	names, err := fs.Glob(migrationFiles, "migrations/*.up.sql")
	if err != nil {
		return fmt.Errorf("glob migrations: %w", err)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := execMigration(db, name); err != nil {
			return err
		}
	}
	return nil
}

// MigrateDown tears the schema back down, newest migration first.
func MigrateDown(db *sql.DB) error {
	names, err := fs.Glob(migrationFiles, "migrations/*.down.sql")
	if err != nil {
		return fmt.Errorf("glob migrations: %w", err)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	for _, name := range names {
		if err := execMigration(db, name); err != nil {
			return err
		}
	}
	return nil
}

func execMigration(db *sql.DB, name string) error {
	stmt, err := migrationFiles.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read migration %s: %w", name, err)
	}
	if _, err := db.Exec(string(stmt)); err != nil {
		return fmt.Errorf("apply migration %s: %w", name, err)
	}
	return nil
}
