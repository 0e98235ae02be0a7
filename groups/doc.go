// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package groups is the per-group registry tying the core together.

A Manager owns, per group: the cached GroupConfig (loaded from the
Store on first reference, defaults for unseen groups), the day's
availability ledger, and the auto-schedule trigger. It exposes the
operations the handlers call: slot add/remove/list, schedule
configure/enable/disable, start-day reset-and-post, vote recording,
suggestion recording, decision reports, and group teardown.

# Persistence Discipline

Config mutations are validate-then-apply: the candidate config is
written to the store first and replaces the cached one only when the
write succeeds, so a persistence failure leaves memory and disk
agreeing on the old value. Daily votes are never persisted.

# Locking

One mutex serializes all state access. The hot paths (votes, decisions)
are pure in-memory work; the only I/O under the lock is the single-row
config write on admin edits. Sink posting always happens on a
background goroutine after the lock is released.
*/
package groups
