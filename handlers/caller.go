// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-elect/auth"
	"github.com/danielhkuo/quickly-elect/election"
	"github.com/danielhkuo/quickly-elect/middleware"
)

var errMissingCallerAddress = errors.New("missing caller address")

// authenticateCaller resolves the acting identity from the caller headers.
// On failure it writes the response and returns false.
func authenticateCaller(w http.ResponseWriter, r *http.Request, salt string) (election.Identity, bool) {
	raw := r.Header.Get(auth.CallerAddressHeader)
	if raw == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, errMissingCallerAddress.Error())
		return election.Identity{}, false
	}

	caller, err := election.ParseIdentity(raw)
	if err != nil {
		middleware.ErrorResponseWithCode(w, http.StatusBadRequest, election.Code(err), err.Error())
		return election.Identity{}, false
	}

	// Keys are bound to the checksummed form
	key := r.Header.Get(auth.CallerKeyHeader)
	if err := auth.ValidateCallerKey(caller.Hex(), key, salt); err != nil {
		slog.Warn("caller authentication failed",
			"event", "caller_auth_failed",
			"caller", caller.Hex(),
			"reason", err.Error(),
		)
		middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
		return election.Identity{}, false
	}

	return caller, true
}
