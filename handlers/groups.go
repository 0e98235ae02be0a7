// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/lakshyajain-0291/dailymeetbot/auth"
	"github.com/lakshyajain-0291/dailymeetbot/cliparse"
	"github.com/lakshyajain-0291/dailymeetbot/groups"
	"github.com/lakshyajain-0291/dailymeetbot/middleware"
	"github.com/lakshyajain-0291/dailymeetbot/models"
)

type GroupHandler struct {
	mgr *groups.Manager
	cfg cliparse.Config
}

func NewGroupHandler(mgr *groups.Manager, cfg cliparse.Config) *GroupHandler {
	return &GroupHandler{mgr: mgr, cfg: cfg}
}

// requireAdmin validates the X-Admin-Key header for the group. Writes
// the rejection itself and reports whether the caller may proceed.
func requireAdmin(w http.ResponseWriter, r *http.Request, groupID, salt string) bool {
	key := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(groupID, key, salt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return false
	}
	return true
}

// writeDomainError maps core errors onto HTTP rejections.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, groups.ErrDuplicateSlot):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, groups.ErrSlotNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, groups.ErrInvalidTimeFormat),
		errors.Is(err, groups.ErrInvalidTagMode),
		errors.Is(err, groups.ErrNoSchedule):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Operation failed")
	}
}

// GetStatus handles GET /groups/{id}
func (h *GroupHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("id")
	if groupID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "group id is required")
		return
	}

	cfg, err := h.mgr.Config(groupID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.GroupStatusResponse{
		GroupID:      groupID,
		SlotCount:    len(cfg.Timeslots),
		AutoSchedule: cfg.AutoSchedule,
	})
}

// ListSlots handles GET /groups/{id}/slots
func (h *GroupHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("id")
	if groupID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "group id is required")
		return
	}

	slots, err := h.mgr.Slots(groupID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SlotListResponse{Slots: slots})
}

// AddSlot handles POST /groups/{id}/slots
func (h *GroupHandler) AddSlot(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("id")
	if groupID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "group id is required")
		return
	}
	if !requireAdmin(w, r, groupID, h.cfg.AdminKeySalt) {
		return
	}

	var req models.AddSlotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Label == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "label is required")
		return
	}

	if err := h.mgr.AddSlot(groupID, req.Label); err != nil {
		writeDomainError(w, err)
		return
	}

	slog.Info("slot added", "group_id", groupID, "label", req.Label)

	slots, err := h.mgr.Slots(groupID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, models.SlotListResponse{Slots: slots})
}

// RemoveSlot handles DELETE /groups/{id}/slots?label=...
// The label travels as a query parameter because canonical labels
// contain characters that do not survive a path segment.
func (h *GroupHandler) RemoveSlot(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("id")
	if groupID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "group id is required")
		return
	}
	if !requireAdmin(w, r, groupID, h.cfg.AdminKeySalt) {
		return
	}

	label := r.URL.Query().Get("label")
	if label == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "label is required")
		return
	}

	if err := h.mgr.RemoveSlot(groupID, label); err != nil {
		writeDomainError(w, err)
		return
	}

	slog.Info("slot removed", "group_id", groupID, "label", label)

	slots, err := h.mgr.Slots(groupID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.SlotListResponse{Slots: slots})
}

// SetSchedule handles PUT /groups/{id}/schedule
func (h *GroupHandler) SetSchedule(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("id")
	if groupID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "group id is required")
		return
	}
	if !requireAdmin(w, r, groupID, h.cfg.AdminKeySalt) {
		return
	}

	var req models.ScheduleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Channel == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "channel is required")
		return
	}

	if err := h.mgr.SetSchedule(groupID, req); err != nil {
		writeDomainError(w, err)
		return
	}

	slog.Info("schedule configured", "group_id", groupID, "at", req.Time, "channel", req.Channel)

	cfg, err := h.mgr.Config(groupID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, cfg.AutoSchedule)
}

// EnableSchedule handles POST /groups/{id}/schedule/enable
func (h *GroupHandler) EnableSchedule(w http.ResponseWriter, r *http.Request) {
	h.setScheduleEnabled(w, r, true)
}

// DisableSchedule handles POST /groups/{id}/schedule/disable
func (h *GroupHandler) DisableSchedule(w http.ResponseWriter, r *http.Request) {
	h.setScheduleEnabled(w, r, false)
}

func (h *GroupHandler) setScheduleEnabled(w http.ResponseWriter, r *http.Request, enabled bool) {
	groupID := r.PathValue("id")
	if groupID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "group id is required")
		return
	}
	if !requireAdmin(w, r, groupID, h.cfg.AdminKeySalt) {
		return
	}

	var err error
	if enabled {
		err = h.mgr.EnableSchedule(groupID)
	} else {
		err = h.mgr.DisableSchedule(groupID)
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}

	slog.Info("schedule toggled", "group_id", groupID, "enabled", enabled)

	cfg, err := h.mgr.Config(groupID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, cfg.AutoSchedule)
}

// RemoveGroup handles DELETE /groups/{id}
func (h *GroupHandler) RemoveGroup(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("id")
	if groupID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "group id is required")
		return
	}
	if !requireAdmin(w, r, groupID, h.cfg.AdminKeySalt) {
		return
	}

	if err := h.mgr.RemoveGroup(groupID); err != nil {
		writeDomainError(w, err)
		return
	}

	slog.Info("group removed", "group_id", groupID)
	w.WriteHeader(http.StatusNoContent)
}
