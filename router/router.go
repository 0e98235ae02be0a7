// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/lakshyajain-0291/dailymeetbot/cliparse"
	"github.com/lakshyajain-0291/dailymeetbot/groups"
	"github.com/lakshyajain-0291/dailymeetbot/handlers"
	"github.com/lakshyajain-0291/dailymeetbot/middleware"
)

func NewRouter(mgr *groups.Manager, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	groupHandler := handlers.NewGroupHandler(mgr, cfg)
	voteHandler := handlers.NewVoteHandler(mgr, cfg)
	decisionHandler := handlers.NewDecisionHandler(mgr, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Group configuration (admin operations gated per handler)
	mux.HandleFunc("GET /groups/{id}", middleware.WithLogging(groupHandler.GetStatus))
	mux.HandleFunc("DELETE /groups/{id}", middleware.WithLogging(groupHandler.RemoveGroup))
	mux.HandleFunc("GET /groups/{id}/slots", middleware.WithLogging(groupHandler.ListSlots))
	mux.HandleFunc("POST /groups/{id}/slots", middleware.WithLogging(groupHandler.AddSlot))
	mux.HandleFunc("DELETE /groups/{id}/slots", middleware.WithLogging(groupHandler.RemoveSlot))
	mux.HandleFunc("PUT /groups/{id}/schedule", middleware.WithLogging(groupHandler.SetSchedule))
	mux.HandleFunc("POST /groups/{id}/schedule/enable", middleware.WithLogging(groupHandler.EnableSchedule))
	mux.HandleFunc("POST /groups/{id}/schedule/disable", middleware.WithLogging(groupHandler.DisableSchedule))

	// Daily poll and voting
	mux.HandleFunc("POST /groups/{id}/poll", middleware.WithLogging(voteHandler.StartDay))
	mux.HandleFunc("POST /groups/{id}/votes/unavailable", middleware.WithLogging(voteHandler.SetUnavailable))
	mux.HandleFunc("POST /groups/{id}/votes/preferred", middleware.WithLogging(voteHandler.SetPreferred))
	mux.HandleFunc("POST /groups/{id}/suggestions", middleware.WithLogging(voteHandler.Suggest))

	// Decision report
	mux.HandleFunc("POST /groups/{id}/decide", middleware.WithLogging(decisionHandler.Decide))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("dailymeetbot API v1"))
	})

	return mux
}
