// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package availability holds the ephemeral per-day vote ledger.

A DayState tracks, for each slot configured at reset time, the set of
users marked unavailable and the set marked preferred, plus one raw
free-text suggestion per user. Nothing here is persisted: daily votes
are intentionally volatile and a reset replaces the whole ledger.

# Mutual Exclusion

For a given slot and user, unavailable and preferred are mutually
exclusive, and unavailable wins:

  - SetUnavailable evicts the user's preferred mark for each slot it marks.
  - SetPreferred refuses slots the user currently has marked unavailable.

So preferred-then-unavailable ends with the user only unavailable, and
unavailable-then-preferred keeps the user excluded from preferred until
they clear the unavailable mark. Both operations first clear all of the
user's prior marks of that kind, making them idempotent and re-entrant.
*/
package availability
