// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

// Voter is the registry record for one identity. VotedFor is meaningful only
// when HasVoted is true.
type Voter struct {
	Identity     Identity
	IsRegistered bool
	HasVoted     bool
	VotedFor     int
}

type voterRegistry struct {
	byID  map[Identity]*Voter
	order []Identity
}

func newVoterRegistry() voterRegistry {
	return voterRegistry{byID: make(map[Identity]*Voter)}
}

func (r *voterRegistry) get(id Identity) Voter {
	if v, ok := r.byID[id]; ok {
		return *v
	}
	return Voter{Identity: id}
}

func (r *voterRegistry) register(id Identity) {
	r.byID[id] = &Voter{Identity: id, IsRegistered: true}
	r.order = append(r.order, id)
}

func (r *voterRegistry) markVoted(id Identity, candidate int) {
	v := r.byID[id]
	v.HasVoted = true
	v.VotedFor = candidate
}

// RegisterVoter marks voter as eligible. Registration does not depend on the
// session state.
func (e *Election) RegisterVoter(caller, voter Identity) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	entry := Entry{Op: OpRegisterVoter, Caller: caller, Subject: voter, At: e.clock.Now()}
	if err := e.apply(entry, e.recorder); err != nil {
		return e.reject(entry, err)
	}

	e.logger.Info("voter registered",
		"event", "election_voter_registered",
		"voter", voter.Hex(),
	)
	return nil
}

func (e *Election) registerVoter(entry Entry, rec Recorder) error {
	if err := e.requireAdmin(entry.Caller); err != nil {
		return err
	}
	if e.voters.get(entry.Subject).IsRegistered {
		return ErrAlreadyRegistered
	}
	if err := record(rec, entry); err != nil {
		return err
	}

	e.voters.register(entry.Subject)
	return nil
}

// Voter returns the record for id, or an unregistered record if id is unknown.
func (e *Election) Voter(id Identity) Voter {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.voters.get(id)
}

// Voters returns every registered voter in registration order.
func (e *Election) Voters() []Voter {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]Voter, 0, len(e.voters.order))
	for _, id := range e.voters.order {
		out = append(out, *e.voters.byID[id])
	}
	return out
}
