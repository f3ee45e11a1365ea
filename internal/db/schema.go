package db

import "database/sql"

// SchemaSQL is the complete schema for fresh installs.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests
// build their in-memory databases from GetSchemaSQL(); if repository code
// references a column that doesn't exist here, tests fail immediately
// with "no such column" instead of drifting.
//
// Invariant 3 (at most one active task per personnel) is also enforced
// here via the unique index on active_tasks.person, so a coordinator bug
// cannot corrupt the store.
const SchemaSQL = `
-- Personnel registry (canonical names, current status)
CREATE TABLE IF NOT EXISTS personnel (
	name TEXT PRIMARY KEY,
	status TEXT NOT NULL CHECK(status IN ('idle', 'active')) DEFAULT 'idle',
	vehicle TEXT REFERENCES vehicles(name),
	position INTEGER NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Vehicle registry
CREATE TABLE IF NOT EXISTS vehicles (
	name TEXT PRIMARY KEY,
	status TEXT NOT NULL CHECK(status IN ('idle', 'active')) DEFAULT 'idle',
	position INTEGER NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Active tasks (mutable working set)
CREATE TABLE IF NOT EXISTS active_tasks (
	id TEXT PRIMARY KEY,
	person TEXT NOT NULL REFERENCES personnel(name),
	vehicle TEXT REFERENCES vehicles(name),
	description TEXT NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('active')) DEFAULT 'active',
	estimated_end DATETIME,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_active_tasks_person ON active_tasks(person);

-- Completed tasks (append-only ledger, frozen at completion time)
CREATE TABLE IF NOT EXISTS completed_tasks (
	id TEXT PRIMARY KEY,
	person TEXT NOT NULL,
	vehicle TEXT,
	description TEXT NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('completed')) DEFAULT 'completed',
	estimated_end DATETIME,
	created_at DATETIME,
	completed_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_completed_tasks_person ON completed_tasks(person);
`

// GetSchemaSQL returns the authoritative schema for test databases.
func GetSchemaSQL() string {
	return SchemaSQL
}

// InitSchema applies the schema to the given database.
func InitSchema(database *sql.DB) error {
	_, err := database.Exec(SchemaSQL)
	return err
}
