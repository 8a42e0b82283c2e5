// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"math"
	"time"
)

// MaxDurationMinutes is the longest window whose end time is still
// representable as a time.Duration offset.
const MaxDurationMinutes = math.MaxInt64 / int64(time.Minute)

// Status is the session as seen at a point in time. StartTime and EndTime
// describe the most recent window and are zero before the first StartVoting.
type Status struct {
	IsOpen        bool
	TimeRemaining time.Duration
	StartTime     time.Time
	EndTime       time.Time
}

type session struct {
	storedOpen bool
	startTime  time.Time
	endTime    time.Time
}

// isOpen is the only place effective openness is derived. A window that ran
// out counts as closed even though storedOpen was never cleared.
func (s *session) isOpen(now time.Time) bool {
	return s.storedOpen && now.Before(s.endTime)
}

func (s *session) status(now time.Time) Status {
	st := Status{StartTime: s.startTime, EndTime: s.endTime}
	if s.isOpen(now) {
		st.IsOpen = true
		st.TimeRemaining = max(0, s.endTime.Sub(now))
	}
	return st
}

// StartVoting opens a window of durationMinutes starting now.
func (e *Election) StartVoting(caller Identity, durationMinutes int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	entry := Entry{Op: OpStartVoting, Caller: caller, Minutes: durationMinutes, At: e.clock.Now()}
	if err := e.apply(entry, e.recorder); err != nil {
		return e.reject(entry, err)
	}

	e.logger.Info("voting started",
		"event", "election_voting_started",
		"duration_minutes", durationMinutes,
		"ends_at", e.session.endTime,
	)
	return nil
}

func (e *Election) startVoting(entry Entry, rec Recorder) error {
	if err := e.requireAdmin(entry.Caller); err != nil {
		return err
	}
	if e.session.isOpen(entry.At) {
		return ErrVotingInProgress
	}
	if entry.Minutes <= 0 || entry.Minutes > MaxDurationMinutes {
		return ErrInvalidDuration
	}
	if err := record(rec, entry); err != nil {
		return err
	}

	e.session = session{
		storedOpen: true,
		startTime:  entry.At,
		endTime:    entry.At.Add(time.Duration(entry.Minutes) * time.Minute),
	}
	return nil
}

// EndVoting closes an open window before its end time.
func (e *Election) EndVoting(caller Identity) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	entry := Entry{Op: OpEndVoting, Caller: caller, At: e.clock.Now()}
	if err := e.apply(entry, e.recorder); err != nil {
		return e.reject(entry, err)
	}

	e.logger.Info("voting ended",
		"event", "election_voting_ended",
		"ended_at", entry.At,
	)
	return nil
}

func (e *Election) endVoting(entry Entry, rec Recorder) error {
	if err := e.requireAdmin(entry.Caller); err != nil {
		return err
	}
	if !e.session.isOpen(entry.At) {
		return ErrVotingNotOpen
	}
	if err := record(rec, entry); err != nil {
		return err
	}

	e.session.storedOpen = false
	return nil
}

func (e *Election) Status() Status {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.session.status(e.clock.Now())
}
