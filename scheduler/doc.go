// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scheduler runs the per-group daily poll triggers.

Each enabled group gets one background goroutine polling every 30
seconds. A tick fires the group's FireFunc when the current wall-clock
hour and minute, in the group's configured timezone, equal the
configured "HH:MM", at most once per calendar minute even though the
cadence is sub-minute.

Invariants:

  - at most one active trigger per group; Set replaces, Stop joins
  - a disabled or destination-less schedule is torn down, not skipped
  - no trigger outlives its group

Time comes from an injected Clock so the matching logic is testable
without real timers.
*/
package scheduler
