// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/danielhkuo/quickly-elect/auth"
	"github.com/danielhkuo/quickly-elect/cliparse"
	"github.com/danielhkuo/quickly-elect/election"
	"github.com/danielhkuo/quickly-elect/handlers"
	"github.com/danielhkuo/quickly-elect/middleware"
)

func NewRouter(el *election.Election, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()
	withLogging := middleware.NewLogging(cfg.CallerKeySalt)

	// Initialize handlers
	adminHandler := handlers.NewAdminHandler(el, cfg)
	votingHandler := handlers.NewVotingHandler(el, cfg)
	resultsHandler := handlers.NewResultsHandler(el, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Administration (caller must be the admin)
	mux.HandleFunc("POST /voters", withLogging(adminHandler.RegisterVoter))
	mux.HandleFunc("GET /voters", withLogging(adminHandler.ListVoters))
	mux.HandleFunc("POST /candidates", withLogging(adminHandler.AddCandidate))
	mux.HandleFunc("POST /voting/start", withLogging(adminHandler.StartVoting))
	mux.HandleFunc("POST /voting/end", withLogging(adminHandler.EndVoting))

	// Voting (caller must be a registered voter)
	mux.HandleFunc("POST /votes", withLogging(votingHandler.CastVote))
	mux.HandleFunc("GET /voters/{address}", withLogging(votingHandler.GetVoter))

	// Public reads
	mux.HandleFunc("GET /election", withLogging(resultsHandler.GetElection))
	mux.HandleFunc("GET /admin", withLogging(resultsHandler.GetAdmin))
	mux.HandleFunc("GET /status", withLogging(resultsHandler.GetStatus))
	mux.HandleFunc("GET /candidates", withLogging(resultsHandler.ListCandidates))
	mux.HandleFunc("GET /candidates/count", withLogging(resultsHandler.GetCandidateCount))
	mux.HandleFunc("GET /candidates/{index}", withLogging(resultsHandler.GetCandidate))
	mux.HandleFunc("GET /results", withLogging(resultsHandler.GetResults))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-elect API v1"))
	})

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", auth.CallerAddressHeader, auth.CallerKeyHeader, middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	})
	return c.Handler(mux)
}
