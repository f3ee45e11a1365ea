// Package sqlite_test contains integration tests for the SQLite
// repositories. All test setup uses db.GetSchemaSQL() so tests always run
// against the authoritative schema; do not hardcode CREATE TABLE
// statements here.
package sqlite_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/dispatch/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	// Every pooled connection to :memory: gets its own database; pin the
	// pool to one connection so transactions and queries share state.
	testDB.SetMaxOpenConns(1)

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedPersonnel inserts a test personnel row.
func seedPersonnel(t *testing.T, database *sql.DB, name string, position int) string {
	t.Helper()
	if name == "" {
		name = "Ahmet Yılmaz"
	}
	_, err := database.Exec(
		"INSERT INTO personnel (name, status, position) VALUES (?, 'idle', ?)",
		name, position,
	)
	if err != nil {
		t.Fatalf("failed to seed personnel: %v", err)
	}
	return name
}

// seedVehicle inserts a test vehicle row.
func seedVehicle(t *testing.T, database *sql.DB, name string, position int) string {
	t.Helper()
	if name == "" {
		name = "Vinç 1"
	}
	_, err := database.Exec(
		"INSERT INTO vehicles (name, status, position) VALUES (?, 'idle', ?)",
		name, position,
	)
	if err != nil {
		t.Fatalf("failed to seed vehicle: %v", err)
	}
	return name
}

// seedActiveTask inserts a test active task and returns its ID.
func seedActiveTask(t *testing.T, database *sql.DB, id, person, vehicle string) string {
	t.Helper()
	if id == "" {
		id = "task-001"
	}
	var v any
	if vehicle != "" {
		v = vehicle
	}
	_, err := database.Exec(
		"INSERT INTO active_tasks (id, person, vehicle, description, status, created_at) VALUES (?, ?, ?, 'test work', 'active', ?)",
		id, person, v, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("failed to seed active task: %v", err)
	}
	return id
}
