// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Elect API.

# Handler Types

Each handler is a struct over the shared election and the config:

  - AdminHandler: voter registration, candidates, the voting window
  - VotingHandler: casting votes and voter lookups
  - ResultsHandler: status, candidates and results

Handlers are created via constructor functions that accept the election and
Config:

	adminHandler := handlers.NewAdminHandler(el, cfg)

# Caller Identity

Acting requests carry two headers:

	X-Caller-Address: 0x...   (any hex spelling of the address)
	X-Caller-Key:     ...     (HMAC of the checksummed address)

A missing address or key, or a key that does not match, is a 401. A
malformed address is a 400 with code InvalidIdentity. Whether the caller may
perform the action (admin or registered voter) is decided by the election.

# Election Lifecycle

	POST /voters       → RegisterVoter (returns caller_key for the voter)
	POST /candidates   → AddCandidate (not while voting is open)
	POST /voting/start → StartVoting (duration_minutes)
	POST /votes        → CastVote (once per voter)
	POST /voting/end   → EndVoting (or let the window run out)

# Errors

Election rejections become JSON error responses whose code field names the
failure:

	Unauthorized, NotRegistered                      → 403
	AlreadyRegistered, AlreadyVoted                  → 409
	VotingInProgress, VotingNotOpen                  → 409
	InvalidCandidate, InvalidDuration, InvalidIdentity → 400

GET /candidates/{index} reports InvalidCandidate as 404. Failures outside the
election, such as a journal write error, are logged and returned as a plain
500.
*/
package handlers
