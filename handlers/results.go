// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickly-elect/cliparse"
	"github.com/danielhkuo/quickly-elect/election"
	"github.com/danielhkuo/quickly-elect/middleware"
	"github.com/danielhkuo/quickly-elect/models"
)

type ResultsHandler struct {
	el  *election.Election
	cfg cliparse.Config
}

func NewResultsHandler(el *election.Election, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{el: el, cfg: cfg}
}

// GetElection handles GET /election
func (h *ResultsHandler) GetElection(w http.ResponseWriter, r *http.Request) {
	snap := h.el.Snapshot()

	middleware.JSONResponse(w, http.StatusOK, models.ElectionResponse{
		Admin:      snap.Admin.Hex(),
		Status:     toStatusResponse(snap.Status),
		Candidates: toCandidates(snap.Candidates),
		Results:    toResults(snap.Results, snap.Summary),
	})
}

// GetAdmin handles GET /admin
func (h *ResultsHandler) GetAdmin(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.AdminResponse{
		Admin: h.el.Admin().Hex(),
	})
}

// GetStatus handles GET /status
func (h *ResultsHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, toStatusResponse(h.el.Status()))
}

// ListCandidates handles GET /candidates
func (h *ResultsHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.CandidateListResponse{
		Candidates: toCandidates(h.el.Candidates()),
	})
}

// GetCandidateCount handles GET /candidates/count
func (h *ResultsHandler) GetCandidateCount(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.CandidateCountResponse{
		Count: h.el.CandidateCount(),
	})
}

// GetCandidate handles GET /candidates/{index}
func (h *ResultsHandler) GetCandidate(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate index must be an integer")
		return
	}

	c, err := h.el.Candidate(index)
	if errors.Is(err, election.ErrInvalidCandidate) {
		// A lookup miss is a missing resource, not a bad vote
		middleware.ErrorResponseWithCode(w, http.StatusNotFound, election.Code(err), err.Error())
		return
	}
	if err != nil {
		writeElectionError(w, err, "get candidate")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, toCandidate(c))
}

// GetResults handles GET /results
// Counts are public at all times, including while voting is open.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	snap := h.el.Snapshot()

	middleware.JSONResponse(w, http.StatusOK, toResults(snap.Results, snap.Summary))
}
