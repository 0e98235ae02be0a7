// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package availability

import (
	"errors"
	"strings"
)

// ErrEmptyInput is returned when a suggestion is blank after trimming.
var ErrEmptyInput = errors.New("suggestion text is empty")

type slotVotes struct {
	unavailable map[string]struct{}
	preferred   map[string]struct{}
}

// Suggestion is one user's raw free-text submission. Slots are derived
// from Text lazily at decision time, never here.
type Suggestion struct {
	UserID string
	Text   string
}

// DayState is the per-group, per-day vote ledger. It tracks one entry
// per slot configured at reset time plus at most one free-text
// suggestion per user. The vote sets are owned by the state and only
// mutated through its methods.
//
// DayState is not safe for concurrent use; the groups.Manager
// serializes access.
type DayState struct {
	slots map[string]*slotVotes
	order []string

	suggestions     map[string]string
	suggestionOrder []string
}

// NewDayState builds a fresh ledger for the given slot snapshot, with
// empty vote sets per slot and no suggestions. Calling it again is the
// reset operation: the previous day's state is simply dropped.
func NewDayState(slots []string) *DayState {
	s := &DayState{
		slots:       make(map[string]*slotVotes, len(slots)),
		order:       make([]string, 0, len(slots)),
		suggestions: make(map[string]string),
	}
	for _, slot := range slots {
		if _, ok := s.slots[slot]; ok {
			continue
		}
		s.slots[slot] = &slotVotes{
			unavailable: make(map[string]struct{}),
			preferred:   make(map[string]struct{}),
		}
		s.order = append(s.order, slot)
	}
	return s
}

// SetUnavailable replaces the user's unavailable marks with the given
// slots. Marking a slot unavailable also evicts the user from that
// slot's preferred set: unavailable always wins. Slots that are not
// tracked are silently ignored to tolerate stale configuration
// references. Passing an empty set clears all of the user's
// unavailable marks.
func (s *DayState) SetUnavailable(userID string, slots []string) {
	for _, v := range s.slots {
		delete(v.unavailable, userID)
	}
	for _, slot := range slots {
		v, ok := s.slots[slot]
		if !ok {
			continue
		}
		v.unavailable[userID] = struct{}{}
		delete(v.preferred, userID)
	}
}

// SetPreferred replaces the user's preferred marks with the given
// slots. A slot the user currently has marked unavailable rejects the
// preferred mark; the user must clear the unavailable mark first.
// Untracked slots are silently ignored.
func (s *DayState) SetPreferred(userID string, slots []string) {
	for _, v := range s.slots {
		delete(v.preferred, userID)
	}
	for _, slot := range slots {
		v, ok := s.slots[slot]
		if !ok {
			continue
		}
		if _, busy := v.unavailable[userID]; busy {
			continue
		}
		v.preferred[userID] = struct{}{}
	}
}

// RecordSuggestion stores the user's raw suggestion text, overwriting
// any earlier submission. The user keeps their original position in
// suggestion order on resubmission so decision output stays stable.
func (s *DayState) RecordSuggestion(userID, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyInput
	}
	if _, seen := s.suggestions[userID]; !seen {
		s.suggestionOrder = append(s.suggestionOrder, userID)
	}
	s.suggestions[userID] = text
	return nil
}

// Tracks reports whether the slot was part of the reset snapshot.
func (s *DayState) Tracks(slot string) bool {
	_, ok := s.slots[slot]
	return ok
}

// TrackedSlots returns the slot labels in reset order.
func (s *DayState) TrackedSlots() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Counts returns the unavailable and preferred vote counts for a slot,
// zero for untracked slots.
func (s *DayState) Counts(slot string) (unavailable, preferred int) {
	v, ok := s.slots[slot]
	if !ok {
		return 0, 0
	}
	return len(v.unavailable), len(v.preferred)
}

// IsUnavailable reports whether the user marked the slot unavailable.
func (s *DayState) IsUnavailable(slot, userID string) bool {
	v, ok := s.slots[slot]
	if !ok {
		return false
	}
	_, marked := v.unavailable[userID]
	return marked
}

// IsPreferred reports whether the user's preferred mark stands for the slot.
func (s *DayState) IsPreferred(slot, userID string) bool {
	v, ok := s.slots[slot]
	if !ok {
		return false
	}
	_, marked := v.preferred[userID]
	return marked
}

// Suggestions returns all stored suggestions in first-submission order.
func (s *DayState) Suggestions() []Suggestion {
	out := make([]Suggestion, 0, len(s.suggestionOrder))
	for _, userID := range s.suggestionOrder {
		out = append(out, Suggestion{UserID: userID, Text: s.suggestions[userID]})
	}
	return out
}
