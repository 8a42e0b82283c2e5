// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-elect/election"
	"github.com/danielhkuo/quickly-elect/middleware"
)

// statusFor maps election errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, election.ErrUnauthorized),
		errors.Is(err, election.ErrNotRegistered):
		return http.StatusForbidden
	case errors.Is(err, election.ErrAlreadyRegistered),
		errors.Is(err, election.ErrAlreadyVoted),
		errors.Is(err, election.ErrVotingInProgress),
		errors.Is(err, election.ErrVotingNotOpen):
		return http.StatusConflict
	case errors.Is(err, election.ErrInvalidCandidate),
		errors.Is(err, election.ErrInvalidDuration),
		errors.Is(err, election.ErrInvalidIdentity):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeElectionError writes the response for an error returned by the
// election. Anything that is not an election rejection is logged and hidden
// behind a generic 500.
func writeElectionError(w http.ResponseWriter, err error, action string) {
	code := election.Code(err)
	if code == "" {
		slog.Error("failed to "+action, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to "+action)
		return
	}
	middleware.ErrorResponseWithCode(w, statusFor(err), code, err.Error())
}
