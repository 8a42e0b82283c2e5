// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Elect API.

# Route Registration

NewRouter wires every endpoint onto an http.ServeMux and wraps it in CORS
handling for the configured origins:

	handler := router.NewRouter(el, cfg)

# Endpoints

Health:

	GET /health

Administration (requires the admin's X-Caller-Address and X-Caller-Key):

	POST /voters        - Register a voter, returns their caller key
	GET  /voters        - List registered voters
	POST /candidates    - Add a candidate (not while voting is open)
	POST /voting/start  - Open a voting window
	POST /voting/end    - Close the window early

Voting (requires the voter's caller headers):

	POST /votes - Cast the caller's single vote

Public reads:

	GET /election           - Admin, status, candidates and results at once
	GET /admin              - Administrator address
	GET /status             - Window state and remaining time
	GET /candidates         - All candidates
	GET /candidates/count   - Number of candidates
	GET /candidates/{index} - One candidate
	GET /voters/{address}   - One voter record
	GET /results            - Vote counts and summary

# Handler Initialization

The router creates handler instances with dependency injection:

	adminHandler := handlers.NewAdminHandler(el, cfg)
	votingHandler := handlers.NewVotingHandler(el, cfg)
	resultsHandler := handlers.NewResultsHandler(el, cfg)

All handlers share the one election and the configuration.
*/
package router
