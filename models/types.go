// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

type RegisterVoterRequest struct {
	Address string `json:"address" validate:"required,eth_addr"`
}

type AddCandidateRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

// Pointer fields tell an omitted value apart from 0. Range checks are left
// to the election so it reports its own error codes.

type StartVotingRequest struct {
	DurationMinutes *int64 `json:"duration_minutes" validate:"required"`
}

type CastVoteRequest struct {
	CandidateIndex *int `json:"candidate_index" validate:"required"`
}

// Response types

type RegisterVoterResponse struct {
	Address   string `json:"address"`
	CallerKey string `json:"caller_key"`
}

type AddCandidateResponse struct {
	Index int `json:"index"`
}

type CastVoteResponse struct {
	CandidateIndex int    `json:"candidate_index"`
	Message        string `json:"message"`
}

// Domain types

type Candidate struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	Description string `json:"description"`
	VoteCount   uint64 `json:"vote_count"`
}

// VotedFor is only set once the voter has voted.
type Voter struct {
	Address      string `json:"address"`
	IsRegistered bool   `json:"is_registered"`
	HasVoted     bool   `json:"has_voted"`
	VotedFor     *int   `json:"voted_for,omitempty"`
}

// StartTime and EndTime describe the most recent window and are omitted
// before voting has ever started.
type StatusResponse struct {
	IsOpen             bool       `json:"is_open"`
	TimeRemaining      int64      `json:"time_remaining"` // seconds
	TimeRemainingHuman string     `json:"time_remaining_human,omitempty"`
	StartTime          *time.Time `json:"start_time,omitempty"`
	EndTime            *time.Time `json:"end_time,omitempty"`
}

type CandidateCountResponse struct {
	Count int `json:"count"`
}

type CandidateListResponse struct {
	Candidates []Candidate `json:"candidates"`
}

type VoterListResponse struct {
	Voters []Voter `json:"voters"`
}

type ResultsResponse struct {
	Results          []uint64 `json:"results"`
	TotalVotes       uint64   `json:"total_votes"`
	RegisteredVoters int      `json:"registered_voters"`
	Turnout          float64  `json:"turnout"`
	Leaders          []int    `json:"leaders"`
}

type AdminResponse struct {
	Admin string `json:"admin"`
}

type ElectionResponse struct {
	Admin      string          `json:"admin"`
	Status     StatusResponse  `json:"status"`
	Candidates []Candidate     `json:"candidates"`
	Results    ResultsResponse `json:"results"`
}

// ErrorResponse is the body of every non-2xx JSON response. Code is the
// election error name ("AlreadyVoted", ...) when the failure came from the
// election itself.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}
