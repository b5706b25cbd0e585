// Package testing provides shared helpers for Lattix tests.
package testing

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	lattixdb "github.com/teranos/lattix/db"
)

// CreateTestDB creates an in-memory SQLite test database.
// Automatically registers cleanup via t.Cleanup().
func CreateTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// CreateMigratedTestDB creates an in-memory SQLite test database with the
// Lattix schema applied.
func CreateMigratedTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db := CreateTestDB(t)
	if err := lattixdb.Migrate(db, nil); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}
