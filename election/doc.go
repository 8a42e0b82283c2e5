// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election implements the single-authority election state machine.

# State

One Election value owns everything: the fixed administrator, the voter
registry, the ordered candidate list and the voting session. It is created
once at startup and handed to whoever needs it:

	el, err := election.New(admin, election.Options{Logger: slog.Default()})

# Operations

Administrator only:

  - RegisterVoter: marks an identity as eligible (any session state)
  - AddCandidate: appends a candidate (only while voting is closed)
  - StartVoting: opens a window of N minutes
  - EndVoting: closes the window early

Registered voters:

  - CastVote: one vote per voter, counted exactly once

Queries: Status, Candidate, Candidates, CandidateCount, Voter, Voters,
Results, Summary, Admin, Snapshot.

# Effective Openness

Voting is open when the session was started, not ended, and the clock is
still before the end time:

	open = storedOpen && now < endTime

A window that runs out is closed for every purpose without an EndVoting call.

# Atomicity

Every state-changing operation holds the write lock for its full
check-then-mutate sequence; the first failing check returns a sentinel error
(ErrUnauthorized, ErrVotingNotOpen, ...) and nothing changes. Queries hold the
read lock.

# Journal

An optional Recorder sees every accepted operation as an Entry before it is
applied. If Record fails the operation is aborted. Replay rebuilds state from
recorded entries using their recorded times.
*/
package election
