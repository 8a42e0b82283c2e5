// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickly-elect/election"
	"github.com/danielhkuo/quickly-elect/models"
)

func toStatusResponse(st election.Status) models.StatusResponse {
	resp := models.StatusResponse{
		IsOpen:        st.IsOpen,
		TimeRemaining: int64(st.TimeRemaining.Seconds()),
	}
	if !st.StartTime.IsZero() {
		start, end := st.StartTime, st.EndTime
		resp.StartTime = &start
		resp.EndTime = &end
	}
	if st.IsOpen {
		now := st.EndTime.Add(-st.TimeRemaining)
		resp.TimeRemainingHuman = humanize.RelTime(now, st.EndTime, "remaining", "ago")
	}
	return resp
}

func toCandidate(c election.Candidate) models.Candidate {
	return models.Candidate{
		Index:       c.Index,
		Name:        c.Name,
		Description: c.Description,
		VoteCount:   c.VoteCount,
	}
}

func toCandidates(cs []election.Candidate) []models.Candidate {
	out := make([]models.Candidate, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCandidate(c))
	}
	return out
}

func toVoter(v election.Voter) models.Voter {
	resp := models.Voter{
		Address:      v.Identity.Hex(),
		IsRegistered: v.IsRegistered,
		HasVoted:     v.HasVoted,
	}
	if v.HasVoted {
		votedFor := v.VotedFor
		resp.VotedFor = &votedFor
	}
	return resp
}

func toResults(results []uint64, s election.Summary) models.ResultsResponse {
	return models.ResultsResponse{
		Results:          results,
		TotalVotes:       s.TotalVotes,
		RegisteredVoters: s.RegisteredVoters,
		Turnout:          s.Turnout,
		Leaders:          s.Leaders,
	}
}
