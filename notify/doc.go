// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package notify is the boundary to the message-posting collaborator.

The core never renders chat markup. It hands a Sink plain data (slot
labels for a poll, tallies/scores/winner for a decision) and the sink
decides how to present it. Two implementations ship: LogSink (default,
structured log only) and WebhookSink (JSON POST to a configured
endpoint fronting the actual chat platform).

Posting happens off the request path; a sink failure is logged and
never corrupts in-memory state.
*/
package notify
