// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/lakshyajain-0291/dailymeetbot/cliparse"
	"github.com/lakshyajain-0291/dailymeetbot/groups"
	"github.com/lakshyajain-0291/dailymeetbot/middleware"
)

type DecisionHandler struct {
	mgr *groups.Manager
	cfg cliparse.Config
}

func NewDecisionHandler(mgr *groups.Manager, cfg cliparse.Config) *DecisionHandler {
	return &DecisionHandler{mgr: mgr, cfg: cfg}
}

// Decide handles POST /groups/{id}/decide
// Computes the ranked report from today's ledger, posts it through the
// message sink, and returns it to the caller.
func (h *DecisionHandler) Decide(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("id")
	if groupID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "group id is required")
		return
	}

	resp, err := h.mgr.Decide(groupID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	winner := ""
	if resp.Winner != nil {
		winner = resp.Winner.Slot
	}
	slog.Info("decision computed",
		"group_id", groupID,
		"report_id", resp.ReportID,
		"slots", len(resp.Rankings),
		"winner", winner,
	)

	middleware.JSONResponse(w, http.StatusOK, resp)
}
