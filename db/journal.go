// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-elect/election"
)

var ErrAdminMismatch = errors.New("configured admin differs from the recorded admin")

// Journal is an append-only log of accepted election operations.
// It implements election.Recorder.
type Journal struct {
	db *sql.DB

	mu  sync.Mutex
	seq int64
}

// NewJournal resumes sequencing after the last stored entry.
func NewJournal(db *sql.DB) (*Journal, error) {
	var seq int64
	err := db.QueryRow("SELECT COALESCE(MAX(seq), 0) FROM election_journal").Scan(&seq)
	if err != nil {
		return nil, fmt.Errorf("failed to read journal position: %w", err)
	}
	return &Journal{db: db, seq: seq}, nil
}

// Record appends one entry.
func (j *Journal) Record(entry election.Entry) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	var subject string
	if entry.Op == election.OpRegisterVoter {
		subject = entry.Subject.Hex()
	}

	next := j.seq + 1
	_, err := j.db.Exec(`
		INSERT INTO election_journal (id, seq, op, caller, subject, name, description, minutes, candidate, at_unix_nano)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, uuid.NewString(), next, string(entry.Op), entry.Caller.Hex(), subject,
		entry.Name, entry.Description, entry.Minutes, entry.Candidate, entry.At.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to append journal entry: %w", err)
	}

	j.seq = next
	return nil
}

// Load returns every entry in the order it was recorded.
func (j *Journal) Load() ([]election.Entry, error) {
	rows, err := j.db.Query(`
		SELECT op, caller, subject, name, description, minutes, candidate, at_unix_nano
		FROM election_journal
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	entries := []election.Entry{}
	for rows.Next() {
		var (
			op, caller, subject string
			entry               election.Entry
			atNano              int64
		)
		if err := rows.Scan(&op, &caller, &subject, &entry.Name, &entry.Description,
			&entry.Minutes, &entry.Candidate, &atNano); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}

		entry.Op = election.Op(op)
		entry.At = time.Unix(0, atNano).UTC()
		if entry.Caller, err = election.ParseIdentity(caller); err != nil {
			return nil, fmt.Errorf("journal entry %d: %w", len(entries), err)
		}
		if subject != "" {
			if entry.Subject, err = election.ParseIdentity(subject); err != nil {
				return nil, fmt.Errorf("journal entry %d: %w", len(entries), err)
			}
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}

	return entries, nil
}

// EnsureAdmin stores admin on first start and afterwards refuses any other
// administrator, since the administrator is never reassigned.
func (j *Journal) EnsureAdmin(admin election.Identity) error {
	var stored string
	err := j.db.QueryRow("SELECT value FROM election_meta WHERE key = $1", "admin").Scan(&stored)
	if err == sql.ErrNoRows {
		_, err = j.db.Exec("INSERT INTO election_meta (key, value) VALUES ($1, $2)", "admin", admin.Hex())
		if err != nil {
			return fmt.Errorf("failed to store admin: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to query admin: %w", err)
	}

	recorded, err := election.ParseIdentity(stored)
	if err != nil {
		return fmt.Errorf("stored admin: %w", err)
	}
	if recorded != admin {
		return fmt.Errorf("%w: recorded %s, configured %s", ErrAdminMismatch, recorded.Hex(), admin.Hex())
	}
	return nil
}
