// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"
	"log/slog"
	"sync"
)

type Options struct {
	Clock    Clock
	Logger   *slog.Logger
	Recorder Recorder
}

// Election is the whole election state. All methods are safe for concurrent use.
type Election struct {
	mu sync.RWMutex

	admin      Identity
	voters     voterRegistry
	candidates candidateRegistry
	session    session

	clock    *monotonicClock
	logger   *slog.Logger
	recorder Recorder
}

// New creates an election with voting closed, no voters and no candidates.
func New(admin Identity, opts Options) (*Election, error) {
	if admin == (Identity{}) {
		return nil, fmt.Errorf("%w: administrator must not be the zero address", ErrInvalidIdentity)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Election{
		admin:    admin,
		voters:   newVoterRegistry(),
		clock:    newMonotonicClock(opts.Clock),
		logger:   logger,
		recorder: opts.Recorder,
	}, nil
}

// Admin returns the administrator identity.
func (e *Election) Admin() Identity {
	return e.admin
}

// apply runs one operation at entry.At. Callers hold the write lock.
func (e *Election) apply(entry Entry, rec Recorder) error {
	switch entry.Op {
	case OpRegisterVoter:
		return e.registerVoter(entry, rec)
	case OpAddCandidate:
		return e.addCandidate(entry, rec)
	case OpStartVoting:
		return e.startVoting(entry, rec)
	case OpEndVoting:
		return e.endVoting(entry, rec)
	case OpCastVote:
		return e.castVote(entry, rec)
	default:
		return fmt.Errorf("unknown operation %q", entry.Op)
	}
}

func (e *Election) reject(entry Entry, err error) error {
	code := Code(err)
	if code == "" {
		e.logger.Error("election operation failed",
			"event", "election_operation_failed",
			"op", string(entry.Op),
			"caller", entry.Caller.Hex(),
			"error", err,
		)
		return err
	}
	e.logger.Warn("election operation rejected",
		"event", "election_operation_rejected",
		"op", string(entry.Op),
		"caller", entry.Caller.Hex(),
		"code", code,
	)
	return err
}

// Snapshot is a consistent view of the whole election.
type Snapshot struct {
	Admin      Identity
	Status     Status
	Candidates []Candidate
	Results    []uint64
	Summary    Summary
}

func (e *Election) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	now := e.clock.Now()
	return Snapshot{
		Admin:      e.admin,
		Status:     e.session.status(now),
		Candidates: e.candidates.all(),
		Results:    e.candidates.results(),
		Summary:    e.summary(),
	}
}
