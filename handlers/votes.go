// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/lakshyajain-0291/dailymeetbot/availability"
	"github.com/lakshyajain-0291/dailymeetbot/cliparse"
	"github.com/lakshyajain-0291/dailymeetbot/groups"
	"github.com/lakshyajain-0291/dailymeetbot/middleware"
	"github.com/lakshyajain-0291/dailymeetbot/models"
)

type VoteHandler struct {
	mgr *groups.Manager
	cfg cliparse.Config
}

func NewVoteHandler(mgr *groups.Manager, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{mgr: mgr, cfg: cfg}
}

// StartDay handles POST /groups/{id}/poll
// Resets the day's ledger and posts a fresh poll. The response returns
// immediately; the sink post completes in the background.
func (h *VoteHandler) StartDay(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("id")
	if groupID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "group id is required")
		return
	}

	resp, err := h.mgr.StartDay(groupID, false)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	slog.Info("poll started", "group_id", groupID, "poll_id", resp.PollID)
	middleware.JSONResponse(w, http.StatusCreated, resp)
}

// SetUnavailable handles POST /groups/{id}/votes/unavailable
func (h *VoteHandler) SetUnavailable(w http.ResponseWriter, r *http.Request) {
	h.recordVote(w, r, h.mgr.SetUnavailable)
}

// SetPreferred handles POST /groups/{id}/votes/preferred
func (h *VoteHandler) SetPreferred(w http.ResponseWriter, r *http.Request) {
	h.recordVote(w, r, h.mgr.SetPreferred)
}

func (h *VoteHandler) recordVote(w http.ResponseWriter, r *http.Request, record func(string, string, []string) ([]string, error)) {
	groupID := r.PathValue("id")
	if groupID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "group id is required")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.UserID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}

	recorded, err := record(groupID, req.UserID, req.Slots)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		UserID:   req.UserID,
		Recorded: recorded,
	})
}

// Suggest handles POST /groups/{id}/suggestions
func (h *VoteHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("id")
	if groupID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "group id is required")
		return
	}

	var req models.SuggestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.UserID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}

	parsed, err := h.mgr.RecordSuggestion(groupID, req.UserID, req.Text)
	if err != nil {
		if errors.Is(err, availability.ErrEmptyInput) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "no times provided")
			return
		}
		writeDomainError(w, err)
		return
	}

	slog.Info("suggestion recorded", "group_id", groupID, "user_id", req.UserID, "parsed_slots", len(parsed))

	middleware.JSONResponse(w, http.StatusOK, models.SuggestionResponse{
		UserID:      req.UserID,
		ParsedSlots: parsed,
	})
}
