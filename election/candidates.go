// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

type Candidate struct {
	Index       int
	Name        string
	Description string
	VoteCount   uint64
}

type candidateRegistry struct {
	list []Candidate
}

func (r *candidateRegistry) valid(index int) bool {
	return index >= 0 && index < len(r.list)
}

func (r *candidateRegistry) all() []Candidate {
	out := make([]Candidate, len(r.list))
	copy(out, r.list)
	return out
}

// AddCandidate appends a candidate and returns its index. The candidate list
// is frozen while voting is open.
func (e *Election) AddCandidate(caller Identity, name, description string) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	entry := Entry{Op: OpAddCandidate, Caller: caller, Name: name, Description: description, At: e.clock.Now()}
	if err := e.apply(entry, e.recorder); err != nil {
		return 0, e.reject(entry, err)
	}

	index := len(e.candidates.list) - 1
	e.logger.Info("candidate added",
		"event", "election_candidate_added",
		"candidate", index,
		"name", name,
	)
	return index, nil
}

func (e *Election) addCandidate(entry Entry, rec Recorder) error {
	if err := e.requireAdmin(entry.Caller); err != nil {
		return err
	}
	if e.session.isOpen(entry.At) {
		return ErrVotingInProgress
	}
	if err := record(rec, entry); err != nil {
		return err
	}

	e.candidates.list = append(e.candidates.list, Candidate{
		Index:       len(e.candidates.list),
		Name:        entry.Name,
		Description: entry.Description,
	})
	return nil
}

func (e *Election) CandidateCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.candidates.list)
}

func (e *Election) Candidate(index int) (Candidate, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if !e.candidates.valid(index) {
		return Candidate{}, ErrInvalidCandidate
	}
	return e.candidates.list[index], nil
}

// Candidates returns all candidates in index order.
func (e *Election) Candidates() []Candidate {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.candidates.all()
}
