// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation and the election journal.

# Connections

Open picks the driver from the configured type:

	conn, err := db.Open("sqlite", "file:quickly-elect.db")
	conn, err := db.Open("postgres", "postgres://...")

SQLite uses modernc.org/sqlite (pure Go); PostgreSQL uses lib/pq.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - election_meta: key/value metadata (the administrator address)
  - election_journal: one row per accepted operation, ordered by seq

# Journal

Journal implements election.Recorder. Each accepted operation is appended
before the in-memory state changes; a failed insert aborts the operation.
At startup the stored entries are replayed:

	journal, _ := db.NewJournal(conn)
	entries, _ := journal.Load()
	_ = el.Replay(entries)

Times are stored as Unix nanoseconds so both databases round-trip them exactly.
*/
package db
