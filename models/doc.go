// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the persisted configuration, request/response,
and decision-report types shared across the server.

# Configuration

GroupConfig is the only persisted record: an ordered list of time slot
labels, an optional admin role identifier, and the AutoSchedule block.
DefaultGroupConfig is what an unseen group starts with.

The auto-schedule tag target is an explicit tri-state (TagNone, TagRole,
TagEveryone) plus a role identifier used only in role mode.

# Decision Types

SlotTally and RankedSlot are derived, transient values computed fresh on
every decision request; they are never stored.

# Error Response

ErrorResponse is the JSON envelope every handler uses for rejections:

	{"error": "Conflict", "message": "slot already exists"}
*/
package models
