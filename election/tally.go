// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

// CastVote records voter's single vote for the candidate at index.
// Checks run in order: registration, prior vote, open window, candidate index.
func (e *Election) CastVote(voter Identity, index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	entry := Entry{Op: OpCastVote, Caller: voter, Candidate: index, At: e.clock.Now()}
	if err := e.apply(entry, e.recorder); err != nil {
		return e.reject(entry, err)
	}

	e.logger.Info("vote cast",
		"event", "election_vote_cast",
		"voter", voter.Hex(),
		"candidate", index,
	)
	return nil
}

func (e *Election) castVote(entry Entry, rec Recorder) error {
	v := e.voters.get(entry.Caller)
	if !v.IsRegistered {
		return ErrNotRegistered
	}
	if v.HasVoted {
		return ErrAlreadyVoted
	}
	if !e.session.isOpen(entry.At) {
		return ErrVotingNotOpen
	}
	if !e.candidates.valid(entry.Candidate) {
		return ErrInvalidCandidate
	}
	if err := record(rec, entry); err != nil {
		return err
	}

	e.candidates.list[entry.Candidate].VoteCount++
	e.voters.markVoted(entry.Caller, entry.Candidate)
	return nil
}

func (r *candidateRegistry) results() []uint64 {
	out := make([]uint64, len(r.list))
	for i, c := range r.list {
		out[i] = c.VoteCount
	}
	return out
}

// Results returns vote counts aligned with candidate indices.
func (e *Election) Results() []uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.candidates.results()
}

// Summary aggregates the tally. Leaders holds every candidate sharing the
// highest count and is empty until a vote has been cast.
type Summary struct {
	TotalVotes       uint64
	RegisteredVoters int
	Turnout          float64
	Leaders          []int
}

func (e *Election) Summary() Summary {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.summary()
}

func (e *Election) summary() Summary {
	s := Summary{
		RegisteredVoters: len(e.voters.order),
		Leaders:          []int{},
	}

	var best uint64
	for _, c := range e.candidates.list {
		s.TotalVotes += c.VoteCount
		if c.VoteCount > best {
			best = c.VoteCount
		}
	}
	if best > 0 {
		for _, c := range e.candidates.list {
			if c.VoteCount == best {
				s.Leaders = append(s.Leaders, c.Index)
			}
		}
	}
	if s.RegisteredVoters > 0 {
		s.Turnout = float64(s.TotalVotes) / float64(s.RegisteredVoters)
	}
	return s
}
