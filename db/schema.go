// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Open opens a connection pool for the given database type.
func Open(dbType, url string) (*sql.DB, error) {
	var driver string
	switch dbType {
	case TypeSQLite:
		driver = "sqlite"
	case TypePostgres:
		driver = "postgres"
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}
	if dbType == TypeSQLite {
		// SQLite allows a single writer; one connection avoids SQLITE_BUSY.
		conn.SetMaxOpenConns(1)
	}
	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The DDL sticks to types both SQLite and PostgreSQL accept.
const schema = `
-- Election metadata (administrator)
CREATE TABLE IF NOT EXISTS election_meta (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

-- Accepted operations, in order
CREATE TABLE IF NOT EXISTS election_journal (
    id TEXT PRIMARY KEY,
    seq BIGINT NOT NULL UNIQUE,
    op TEXT NOT NULL CHECK (op IN ('register_voter', 'add_candidate', 'start_voting', 'end_voting', 'cast_vote')),
    caller TEXT NOT NULL,
    subject TEXT NOT NULL DEFAULT '',
    name TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    minutes BIGINT NOT NULL DEFAULT 0,
    candidate INTEGER NOT NULL DEFAULT 0,
    at_unix_nano BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_election_journal_op ON election_journal(op);
`
