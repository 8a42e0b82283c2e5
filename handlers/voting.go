// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickly-elect/cliparse"
	"github.com/danielhkuo/quickly-elect/election"
	"github.com/danielhkuo/quickly-elect/middleware"
	"github.com/danielhkuo/quickly-elect/models"
)

type VotingHandler struct {
	el  *election.Election
	cfg cliparse.Config
}

func NewVotingHandler(el *election.Election, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{el: el, cfg: cfg}
}

// CastVote handles POST /votes
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	voter, ok := authenticateCaller(w, r, h.cfg.CallerKeySalt)
	if !ok {
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.el.CastVote(voter, *req.CandidateIndex); err != nil {
		writeElectionError(w, err, "cast vote")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		CandidateIndex: *req.CandidateIndex,
		Message:        "Vote recorded",
	})
}

// GetVoter handles GET /voters/{address}
// Unknown addresses return a default, unregistered record rather than 404.
func (h *VotingHandler) GetVoter(w http.ResponseWriter, r *http.Request) {
	id, err := election.ParseIdentity(r.PathValue("address"))
	if err != nil {
		middleware.ErrorResponseWithCode(w, http.StatusBadRequest, election.Code(err), err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, toVoter(h.el.Voter(id)))
}
