// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"
	"time"
)

// Op names a state-changing operation.
type Op string

const (
	OpRegisterVoter Op = "register_voter"
	OpAddCandidate  Op = "add_candidate"
	OpStartVoting   Op = "start_voting"
	OpEndVoting     Op = "end_voting"
	OpCastVote      Op = "cast_vote"
)

// Entry describes one accepted operation. Only the fields relevant to Op are
// set: Subject for OpRegisterVoter, Name/Description for OpAddCandidate,
// Minutes for OpStartVoting, Candidate for OpCastVote. For OpCastVote the
// Caller is the voter.
type Entry struct {
	Op          Op
	Caller      Identity
	Subject     Identity
	Name        string
	Description string
	Minutes     int64
	Candidate   int
	At          time.Time
}

// Recorder is told about each operation after all of its checks have passed
// and before its effects are applied. Returning an error aborts the operation.
type Recorder interface {
	Record(entry Entry) error
}

func record(rec Recorder, entry Entry) error {
	if rec == nil {
		return nil
	}
	if err := rec.Record(entry); err != nil {
		return fmt.Errorf("failed to record %s: %w", entry.Op, err)
	}
	return nil
}

// Replay re-applies recorded entries in order, using each entry's own time.
// Nothing is passed to the Recorder. Replay is meant for startup, before the
// Election is shared.
func (e *Election) Replay(entries []Entry) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, entry := range entries {
		if err := e.apply(entry, nil); err != nil {
			return fmt.Errorf("failed to replay entry %d (%s): %w", i, entry.Op, err)
		}
		e.clock.observe(entry.At)
	}

	e.logger.Info("election state replayed",
		"event", "election_replayed",
		"entries", len(entries),
		"voters", len(e.voters.order),
		"candidates", len(e.candidates.list),
	)
	return nil
}
