// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickly-elect/auth"
	"github.com/danielhkuo/quickly-elect/cliparse"
	"github.com/danielhkuo/quickly-elect/election"
	"github.com/danielhkuo/quickly-elect/middleware"
	"github.com/danielhkuo/quickly-elect/models"
)

type AdminHandler struct {
	el  *election.Election
	cfg cliparse.Config
}

func NewAdminHandler(el *election.Election, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{el: el, cfg: cfg}
}

// RegisterVoter handles POST /voters
func (h *AdminHandler) RegisterVoter(w http.ResponseWriter, r *http.Request) {
	caller, ok := authenticateCaller(w, r, h.cfg.CallerKeySalt)
	if !ok {
		return
	}

	var req models.RegisterVoterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	voter, err := election.ParseIdentity(req.Address)
	if err != nil {
		middleware.ErrorResponseWithCode(w, http.StatusBadRequest, election.Code(err), err.Error())
		return
	}

	if err := h.el.RegisterVoter(caller, voter); err != nil {
		writeElectionError(w, err, "register voter")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterVoterResponse{
		Address:   voter.Hex(),
		CallerKey: auth.GenerateCallerKey(voter.Hex(), h.cfg.CallerKeySalt),
	})
}

// ListVoters handles GET /voters
// Only the administrator may enumerate the registry.
func (h *AdminHandler) ListVoters(w http.ResponseWriter, r *http.Request) {
	caller, ok := authenticateCaller(w, r, h.cfg.CallerKeySalt)
	if !ok {
		return
	}
	if !h.el.IsAdmin(caller) {
		writeElectionError(w, election.ErrUnauthorized, "list voters")
		return
	}

	voters := h.el.Voters()
	resp := models.VoterListResponse{Voters: make([]models.Voter, 0, len(voters))}
	for _, v := range voters {
		resp.Voters = append(resp.Voters, toVoter(v))
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// AddCandidate handles POST /candidates
func (h *AdminHandler) AddCandidate(w http.ResponseWriter, r *http.Request) {
	caller, ok := authenticateCaller(w, r, h.cfg.CallerKeySalt)
	if !ok {
		return
	}

	var req models.AddCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	index, err := h.el.AddCandidate(caller, req.Name, req.Description)
	if err != nil {
		writeElectionError(w, err, "add candidate")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.AddCandidateResponse{
		Index: index,
	})
}

// StartVoting handles POST /voting/start
func (h *AdminHandler) StartVoting(w http.ResponseWriter, r *http.Request) {
	caller, ok := authenticateCaller(w, r, h.cfg.CallerKeySalt)
	if !ok {
		return
	}

	var req models.StartVotingRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.el.StartVoting(caller, *req.DurationMinutes); err != nil {
		writeElectionError(w, err, "start voting")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, toStatusResponse(h.el.Status()))
}

// EndVoting handles POST /voting/end
func (h *AdminHandler) EndVoting(w http.ResponseWriter, r *http.Request) {
	caller, ok := authenticateCaller(w, r, h.cfg.CallerKeySalt)
	if !ok {
		return
	}

	if err := h.el.EndVoting(caller); err != nil {
		writeElectionError(w, err, "end voting")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, toStatusResponse(h.el.Status()))
}
