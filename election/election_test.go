// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	admin    = mustIdentity("0x1000000000000000000000000000000000000001")
	voter1   = mustIdentity("0x2000000000000000000000000000000000000002")
	voter2   = mustIdentity("0x3000000000000000000000000000000000000003")
	outsider = mustIdentity("0x4000000000000000000000000000000000000004")
)

func mustIdentity(s string) Identity {
	id, err := ParseIdentity(s)
	if err != nil {
		panic(err)
	}
	return id
}

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type memoryRecorder struct {
	entries []Entry
	fail    error
}

func (r *memoryRecorder) Record(entry Entry) error {
	if r.fail != nil {
		return r.fail
	}
	r.entries = append(r.entries, entry)
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestElection(t *testing.T, clock Clock) *Election {
	t.Helper()
	el, err := New(admin, Options{Clock: clock, Logger: quietLogger()})
	require.NoError(t, err)
	return el
}

// setupOpenElection adds candidates A and B, registers voter1 and voter2 and
// opens a 60 minute window.
func setupOpenElection(t *testing.T, clock Clock) *Election {
	t.Helper()
	el := newTestElection(t, clock)
	_, err := el.AddCandidate(admin, "A", "first")
	require.NoError(t, err)
	_, err = el.AddCandidate(admin, "B", "second")
	require.NoError(t, err)
	require.NoError(t, el.RegisterVoter(admin, voter1))
	require.NoError(t, el.RegisterVoter(admin, voter2))
	require.NoError(t, el.StartVoting(admin, 60))
	return el
}

func TestNew(t *testing.T) {
	el := newTestElection(t, newManualClock())

	assert.Equal(t, admin, el.Admin())
	assert.False(t, el.Status().IsOpen, "voting should start closed")
	assert.Equal(t, 0, el.CandidateCount())
	assert.Empty(t, el.Voters())
	assert.Empty(t, el.Results())
}

func TestNewRejectsZeroAdmin(t *testing.T) {
	_, err := New(Identity{}, Options{})
	assert.ErrorIs(t, err, ErrInvalidIdentity)
}

func TestParseIdentity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"lowercase", "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd", false},
		{"uppercase", "0xABCDEFABCDEFABCDEFABCDEFABCDEFABCDEFABCD", false},
		{"no prefix", "abcdefabcdefabcdefabcdefabcdefabcdefabcd", false},
		{"surrounding space", "  0x1000000000000000000000000000000000000001 ", false},
		{"too short", "0x1234", true},
		{"not hex", "0xzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIdentity(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidIdentity)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	lower := mustIdentity("0xabcdefabcdefabcdefabcdefabcdefabcdefabcd")
	upper := mustIdentity("0xABCDEFABCDEFABCDEFABCDEFABCDEFABCDEFABCD")
	assert.Equal(t, lower, upper, "letter case must not change the identity")
}

func TestRegisterVoter(t *testing.T) {
	el := newTestElection(t, newManualClock())

	require.NoError(t, el.RegisterVoter(admin, voter1))

	v := el.Voter(voter1)
	assert.True(t, v.IsRegistered)
	assert.False(t, v.HasVoted)
	assert.Equal(t, voter1, v.Identity)

	err := el.RegisterVoter(admin, voter1)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
	assert.Len(t, el.Voters(), 1)
}

func TestRegisterVoterWhileOpen(t *testing.T) {
	el := setupOpenElection(t, newManualClock())

	require.NoError(t, el.RegisterVoter(admin, outsider))
	require.NoError(t, el.CastVote(outsider, 0))
	assert.Equal(t, []uint64{1, 0}, el.Results())
}

func TestVoterDefaults(t *testing.T) {
	el := newTestElection(t, newManualClock())

	v := el.Voter(outsider)
	assert.Equal(t, Voter{Identity: outsider}, v)
}

func TestVotersInRegistrationOrder(t *testing.T) {
	el := newTestElection(t, newManualClock())
	require.NoError(t, el.RegisterVoter(admin, voter2))
	require.NoError(t, el.RegisterVoter(admin, voter1))

	voters := el.Voters()
	require.Len(t, voters, 2)
	assert.Equal(t, voter2, voters[0].Identity)
	assert.Equal(t, voter1, voters[1].Identity)
}

func TestAdminOnlyOperations(t *testing.T) {
	clock := newManualClock()
	el := newTestElection(t, clock)
	_, err := el.AddCandidate(admin, "A", "")
	require.NoError(t, err)

	tests := []struct {
		name string
		call func() error
	}{
		{"register voter", func() error { return el.RegisterVoter(outsider, voter1) }},
		{"add candidate", func() error { _, err := el.AddCandidate(outsider, "B", ""); return err }},
		{"start voting", func() error { return el.StartVoting(outsider, 60) }},
		{"end voting", func() error { return el.EndVoting(voter1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := el.Snapshot()
			err := tt.call()
			assert.ErrorIs(t, err, ErrUnauthorized)
			assert.Equal(t, before, el.Snapshot(), "rejected call must not change state")
			assert.Empty(t, el.Voters())
		})
	}

	assert.True(t, el.IsAdmin(admin))
	assert.False(t, el.IsAdmin(outsider))
}

func TestUnauthorizedCheckedFirst(t *testing.T) {
	el := setupOpenElection(t, newManualClock())

	// Open session and bad duration would both fail, but the guard runs first.
	assert.ErrorIs(t, el.StartVoting(outsider, 0), ErrUnauthorized)
	assert.ErrorIs(t, el.RegisterVoter(outsider, voter1), ErrUnauthorized)
}

func TestAddCandidate(t *testing.T) {
	el := newTestElection(t, newManualClock())

	idx, err := el.AddCandidate(admin, "Alice", "first candidate")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = el.AddCandidate(admin, "Bob", "second candidate")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	assert.Equal(t, 2, el.CandidateCount())

	c, err := el.Candidate(1)
	require.NoError(t, err)
	assert.Equal(t, Candidate{Index: 1, Name: "Bob", Description: "second candidate"}, c)

	_, err = el.Candidate(2)
	assert.ErrorIs(t, err, ErrInvalidCandidate)
	_, err = el.Candidate(-1)
	assert.ErrorIs(t, err, ErrInvalidCandidate)
}

func TestAddCandidateWhileVotingOpen(t *testing.T) {
	el := newTestElection(t, newManualClock())
	_, err := el.AddCandidate(admin, "A", "")
	require.NoError(t, err)
	require.NoError(t, el.StartVoting(admin, 60))

	_, err = el.AddCandidate(admin, "B", "")
	assert.ErrorIs(t, err, ErrVotingInProgress)
	assert.Equal(t, 1, el.CandidateCount())
}

func TestAddCandidateAfterWindowExpires(t *testing.T) {
	clock := newManualClock()
	el := newTestElection(t, clock)
	require.NoError(t, el.StartVoting(admin, 30))

	clock.Advance(30 * time.Minute)

	idx, err := el.AddCandidate(admin, "Late", "")
	require.NoError(t, err, "an expired window releases the candidate freeze")
	assert.Equal(t, 0, idx)
}

func TestCandidatesReturnsCopy(t *testing.T) {
	el := newTestElection(t, newManualClock())
	_, err := el.AddCandidate(admin, "A", "")
	require.NoError(t, err)

	list := el.Candidates()
	list[0].Name = "changed"
	list[0].VoteCount = 42

	c, err := el.Candidate(0)
	require.NoError(t, err)
	assert.Equal(t, "A", c.Name)
	assert.Zero(t, c.VoteCount)
}

func TestStartVoting(t *testing.T) {
	clock := newManualClock()
	el := newTestElection(t, clock)
	start := clock.Now()

	require.NoError(t, el.StartVoting(admin, 60))

	st := el.Status()
	assert.True(t, st.IsOpen)
	assert.Equal(t, 60*time.Minute, st.TimeRemaining)
	assert.Equal(t, start, st.StartTime)
	assert.Equal(t, start.Add(time.Hour), st.EndTime)

	clock.Advance(15 * time.Minute)
	assert.Equal(t, 45*time.Minute, el.Status().TimeRemaining)

	assert.ErrorIs(t, el.StartVoting(admin, 10), ErrVotingInProgress)
}

func TestStartVotingInvalidDuration(t *testing.T) {
	el := newTestElection(t, newManualClock())

	for _, minutes := range []int64{0, -1, -60, MaxDurationMinutes + 1} {
		err := el.StartVoting(admin, minutes)
		assert.ErrorIs(t, err, ErrInvalidDuration, "minutes=%d", minutes)
	}
	assert.False(t, el.Status().IsOpen)
	assert.True(t, el.Status().StartTime.IsZero())

	require.NoError(t, el.StartVoting(admin, MaxDurationMinutes))
	assert.True(t, el.Status().IsOpen)
}

func TestEndVoting(t *testing.T) {
	clock := newManualClock()
	el := setupOpenElection(t, clock)

	require.NoError(t, el.EndVoting(admin))

	st := el.Status()
	assert.False(t, st.IsOpen)
	assert.Zero(t, st.TimeRemaining)

	assert.ErrorIs(t, el.EndVoting(admin), ErrVotingNotOpen)
}

func TestEndVotingBeforeStart(t *testing.T) {
	el := newTestElection(t, newManualClock())
	assert.ErrorIs(t, el.EndVoting(admin), ErrVotingNotOpen)
}

func TestEndVotingAfterExpiry(t *testing.T) {
	clock := newManualClock()
	el := setupOpenElection(t, clock)
	clock.Advance(61 * time.Minute)

	assert.ErrorIs(t, el.EndVoting(admin), ErrVotingNotOpen)
}

func TestWindowExpiresWithoutEndVoting(t *testing.T) {
	clock := newManualClock()
	el := setupOpenElection(t, clock)

	clock.Advance(59*time.Minute + 59*time.Second)
	st := el.Status()
	assert.True(t, st.IsOpen)
	assert.Equal(t, time.Second, st.TimeRemaining)

	clock.Advance(time.Second)
	st = el.Status()
	assert.False(t, st.IsOpen, "window closes exactly at end time")
	assert.Zero(t, st.TimeRemaining)

	assert.ErrorIs(t, el.CastVote(voter1, 0), ErrVotingNotOpen)
}

func TestReopenAfterEnd(t *testing.T) {
	clock := newManualClock()
	el := setupOpenElection(t, clock)
	require.NoError(t, el.CastVote(voter1, 0))
	require.NoError(t, el.EndVoting(admin))

	idx, err := el.AddCandidate(admin, "C", "")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	require.NoError(t, el.StartVoting(admin, 5))
	assert.ErrorIs(t, el.CastVote(voter1, 2), ErrAlreadyVoted, "votes carry across rounds")
	require.NoError(t, el.CastVote(voter2, 2))
	assert.Equal(t, []uint64{1, 0, 1}, el.Results())
}

func TestCastVote(t *testing.T) {
	el := setupOpenElection(t, newManualClock())

	require.NoError(t, el.CastVote(voter1, 0))

	v := el.Voter(voter1)
	assert.True(t, v.HasVoted)
	assert.Equal(t, 0, v.VotedFor)
	assert.Equal(t, []uint64{1, 0}, el.Results())
}

func TestCastVoteScenario(t *testing.T) {
	el := setupOpenElection(t, newManualClock())

	require.NoError(t, el.CastVote(voter1, 0))
	require.NoError(t, el.CastVote(voter2, 1))
	assert.Equal(t, []uint64{1, 1}, el.Results())

	assert.ErrorIs(t, el.CastVote(voter1, 1), ErrAlreadyVoted)
	assert.Equal(t, []uint64{1, 1}, el.Results())
	assert.Equal(t, 0, el.Voter(voter1).VotedFor)
}

func TestCastVoteFailures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, el *Election, clock *manualClock)
		voter Identity
		index int
		want  error
	}{
		{
			name:  "not registered",
			voter: outsider,
			index: 0,
			want:  ErrNotRegistered,
		},
		{
			name: "already voted",
			setup: func(t *testing.T, el *Election, _ *manualClock) {
				require.NoError(t, el.CastVote(voter1, 1))
			},
			voter: voter1,
			index: 0,
			want:  ErrAlreadyVoted,
		},
		{
			name: "after end voting",
			setup: func(t *testing.T, el *Election, _ *manualClock) {
				require.NoError(t, el.EndVoting(admin))
			},
			voter: voter1,
			index: 0,
			want:  ErrVotingNotOpen,
		},
		{
			name: "after expiry",
			setup: func(t *testing.T, _ *Election, clock *manualClock) {
				clock.Advance(2 * time.Hour)
			},
			voter: voter1,
			index: 0,
			want:  ErrVotingNotOpen,
		},
		{
			name:  "index out of range",
			voter: voter1,
			index: 99,
			want:  ErrInvalidCandidate,
		},
		{
			name:  "negative index",
			voter: voter1,
			index: -1,
			want:  ErrInvalidCandidate,
		},
		{
			name: "closed session checked before index",
			setup: func(t *testing.T, el *Election, _ *manualClock) {
				require.NoError(t, el.EndVoting(admin))
			},
			voter: voter2,
			index: 99,
			want:  ErrVotingNotOpen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newManualClock()
			el := setupOpenElection(t, clock)
			if tt.setup != nil {
				tt.setup(t, el, clock)
			}
			before := el.Snapshot()
			beforeVoter := el.Voter(tt.voter)

			err := el.CastVote(tt.voter, tt.index)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, before.Results, el.Results())
			assert.Equal(t, beforeVoter, el.Voter(tt.voter))
		})
	}
}

func TestCastVoteBeforeStart(t *testing.T) {
	el := newTestElection(t, newManualClock())
	_, err := el.AddCandidate(admin, "A", "")
	require.NoError(t, err)
	require.NoError(t, el.RegisterVoter(admin, voter1))

	assert.ErrorIs(t, el.CastVote(voter1, 0), ErrVotingNotOpen)
	assert.False(t, el.Voter(voter1).HasVoted)
}

func TestSummary(t *testing.T) {
	el := setupOpenElection(t, newManualClock())

	s := el.Summary()
	assert.Zero(t, s.TotalVotes)
	assert.Equal(t, 2, s.RegisteredVoters)
	assert.Zero(t, s.Turnout)
	assert.Empty(t, s.Leaders)

	require.NoError(t, el.CastVote(voter1, 1))
	s = el.Summary()
	assert.Equal(t, uint64(1), s.TotalVotes)
	assert.InDelta(t, 0.5, s.Turnout, 1e-9)
	assert.Equal(t, []int{1}, s.Leaders)

	require.NoError(t, el.CastVote(voter2, 0))
	s = el.Summary()
	assert.Equal(t, []int{0, 1}, s.Leaders, "ties list every leader")
	assert.InDelta(t, 1.0, s.Turnout, 1e-9)
}

func TestResultsSumMatchesVoters(t *testing.T) {
	clock := newManualClock()
	el := newTestElection(t, clock)
	for _, name := range []string{"A", "B", "C"} {
		_, err := el.AddCandidate(admin, name, "")
		require.NoError(t, err)
	}

	voters := make([]Identity, 20)
	for i := range voters {
		voters[i] = Identity{byte(i + 1)}
		require.NoError(t, el.RegisterVoter(admin, voters[i]))
	}
	require.NoError(t, el.StartVoting(admin, 10))

	// Every voter tries several times with a mix of valid and invalid indexes.
	for round := 0; round < 3; round++ {
		for i, v := range voters {
			_ = el.CastVote(v, (i+round)%5)
		}
	}

	var sum uint64
	for _, n := range el.Results() {
		sum += n
	}
	var voted uint64
	for _, v := range el.Voters() {
		if v.HasVoted {
			voted++
			c, err := el.Candidate(v.VotedFor)
			require.NoError(t, err)
			assert.NotZero(t, c.VoteCount)
		}
	}
	assert.Equal(t, voted, sum)
	assert.Equal(t, uint64(len(voters)), voted)
}

func TestConcurrentVotes(t *testing.T) {
	clock := newManualClock()
	el := newTestElection(t, clock)
	_, err := el.AddCandidate(admin, "A", "")
	require.NoError(t, err)
	_, err = el.AddCandidate(admin, "B", "")
	require.NoError(t, err)

	const numVoters = 50
	voters := make([]Identity, numVoters)
	for i := range voters {
		voters[i] = Identity{0xaa, byte(i)}
		require.NoError(t, el.RegisterVoter(admin, voters[i]))
	}
	require.NoError(t, el.StartVoting(admin, 60))

	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0
	for i := 0; i < numVoters; i++ {
		// Two attempts per voter race each other; exactly one may win.
		for attempt := 0; attempt < 2; attempt++ {
			wg.Add(1)
			go func(v Identity, idx int) {
				defer wg.Done()
				if err := el.CastVote(v, idx); err == nil {
					mu.Lock()
					successes++
					mu.Unlock()
				} else if !errors.Is(err, ErrAlreadyVoted) {
					t.Errorf("unexpected error: %v", err)
				}
				_ = el.Status()
				_ = el.Results()
			}(voters[i], (i+attempt)%2)
		}
	}
	wg.Wait()

	assert.Equal(t, numVoters, successes)
	results := el.Results()
	assert.Equal(t, uint64(numVoters), results[0]+results[1])
}

func TestMonotonicClock(t *testing.T) {
	clock := newManualClock()
	el := newTestElection(t, clock)
	require.NoError(t, el.StartVoting(admin, 10))
	end := el.Status().EndTime

	clock.Advance(5 * time.Minute)
	assert.Equal(t, 5*time.Minute, el.Status().TimeRemaining)

	// A clock that steps backwards must not reopen time already seen.
	clock.Advance(-3 * time.Minute)
	assert.Equal(t, 5*time.Minute, el.Status().TimeRemaining)
	assert.Equal(t, end, el.Status().EndTime)
}

func TestCode(t *testing.T) {
	assert.Equal(t, "Unauthorized", Code(ErrUnauthorized))
	assert.Equal(t, "VotingNotOpen", Code(ErrVotingNotOpen))
	assert.Equal(t, "InvalidIdentity", Code(mustErr(ParseIdentity("bad"))))
	assert.Equal(t, "", Code(errors.New("disk full")))
	assert.Equal(t, "", Code(nil))
}

func mustErr(_ Identity, err error) error {
	return err
}
