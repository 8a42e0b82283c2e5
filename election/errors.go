// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "errors"

var (
	ErrUnauthorized      = errors.New("only admin can perform this action")
	ErrAlreadyRegistered = errors.New("voter already registered")
	ErrNotRegistered     = errors.New("voter is not registered")
	ErrAlreadyVoted      = errors.New("voter has already voted")
	ErrInvalidCandidate  = errors.New("invalid candidate ID")
	ErrInvalidDuration   = errors.New("voting duration must be a positive number of minutes")
	ErrVotingInProgress  = errors.New("voting is in progress")
	ErrVotingNotOpen     = errors.New("voting is not open")

	// ErrInvalidIdentity rejects malformed addresses before any operation runs.
	ErrInvalidIdentity = errors.New("invalid identity address")
)

var codes = []struct {
	err  error
	code string
}{
	{ErrUnauthorized, "Unauthorized"},
	{ErrAlreadyRegistered, "AlreadyRegistered"},
	{ErrNotRegistered, "NotRegistered"},
	{ErrAlreadyVoted, "AlreadyVoted"},
	{ErrInvalidCandidate, "InvalidCandidate"},
	{ErrInvalidDuration, "InvalidDuration"},
	{ErrVotingInProgress, "VotingInProgress"},
	{ErrVotingNotOpen, "VotingNotOpen"},
	{ErrInvalidIdentity, "InvalidIdentity"},
}

// Code returns the taxonomy name of a domain error, or "" for anything else.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}
