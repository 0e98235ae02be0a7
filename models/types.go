// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Tag target modes for auto-scheduled poll announcements
const (
	TagNone     = "none"
	TagRole     = "role"
	TagEveryone = "everyone"
)

// AutoSchedule holds the daily auto-post settings for a group.
// Time is a 24-hour "HH:MM" wall-clock value interpreted in Timezone.
type AutoSchedule struct {
	Enabled  bool   `json:"enabled"`
	Channel  string `json:"channel"`
	Time     string `json:"time"`
	Timezone string `json:"timezone"`
	TagMode  string `json:"tag_mode"`
	TagRole  string `json:"tag_role,omitempty"`
}

// GroupConfig is the persisted per-group configuration.
// Timeslots is ordered and unique; insertion order defines display and
// tie-break order everywhere downstream.
type GroupConfig struct {
	Timeslots    []string     `json:"timeslots"`
	AdminRole    string       `json:"admin_role,omitempty"`
	AutoSchedule AutoSchedule `json:"auto_schedule"`
}

// DefaultGroupConfig returns the configuration a group gets on first
// reference: six predefined slots, no admin role, auto-schedule off.
func DefaultGroupConfig() *GroupConfig {
	return &GroupConfig{
		Timeslots: []string{
			"11:00–11:30",
			"15:00–15:30",
			"17:00–17:30",
			"18:00–18:30",
			"20:00–20:30",
			"23:00–23:30",
		},
		AdminRole: "",
		AutoSchedule: AutoSchedule{
			Enabled:  false,
			Channel:  "",
			Time:     "09:00",
			Timezone: "Asia/Kolkata",
			TagMode:  TagNone,
		},
	}
}

// Clone returns a deep copy so callers can mutate a candidate config
// and apply it only after the store write succeeds.
func (c *GroupConfig) Clone() *GroupConfig {
	out := *c
	out.Timeslots = make([]string, len(c.Timeslots))
	copy(out.Timeslots, c.Timeslots)
	return &out
}

// Request types

type AddSlotRequest struct {
	Label string `json:"label"`
}

type ScheduleRequest struct {
	Time     string `json:"time"`
	Channel  string `json:"channel"`
	Timezone string `json:"timezone,omitempty"`
	TagMode  string `json:"tag_mode,omitempty"`
	TagRole  string `json:"tag_role,omitempty"`
}

type VoteRequest struct {
	UserID string   `json:"user_id"`
	Slots  []string `json:"slots"`
}

type SuggestionRequest struct {
	UserID string `json:"user_id"`
	Text   string `json:"text"`
}

// Response types

type SlotListResponse struct {
	Slots []string `json:"slots"`
}

type StartDayResponse struct {
	PollID string   `json:"poll_id"`
	Slots  []string `json:"slots"`
}

type VoteResponse struct {
	UserID   string   `json:"user_id"`
	Recorded []string `json:"recorded"`
}

type SuggestionResponse struct {
	UserID      string   `json:"user_id"`
	ParsedSlots []string `json:"parsed_slots"`
}

type GroupStatusResponse struct {
	GroupID      string       `json:"group_id"`
	SlotCount    int          `json:"slot_count"`
	AutoSchedule AutoSchedule `json:"auto_schedule"`
}

// Domain types

// SlotTally is the per-slot vote breakdown computed at decision time.
type SlotTally struct {
	Unavailable int `json:"unavailable"`
	Preferred   int `json:"preferred"`
	Suggested   int `json:"suggested"`
}

// RankedSlot is one row of a decision report, ordered by Score descending.
type RankedSlot struct {
	Slot  string    `json:"slot"`
	Tally SlotTally `json:"tally"`
	Score int       `json:"score"`
}

// DecisionResponse is the full ranked report. Winner is the arithmetic
// maximum whenever any slot exists; ClearWinner additionally requires a
// positive score so callers can present "no clear winner yet".
type DecisionResponse struct {
	ReportID    string       `json:"report_id"`
	Rankings    []RankedSlot `json:"rankings"`
	Winner      *RankedSlot  `json:"winner,omitempty"`
	ClearWinner bool         `json:"clear_winner"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
