// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP layer over the groups.Manager.

Three handler types, all dependency-injected with the manager and
server config:

  - GroupHandler: status, slot list/add/remove, schedule
    configure/enable/disable, group removal. Mutating operations are
    admin-gated via the X-Admin-Key header.
  - VoteHandler: start-day poll, unavailable/preferred votes,
    free-text suggestions.
  - DecisionHandler: ranked decision reports.

Core errors map onto statuses at this boundary: duplicate slot → 409,
missing slot → 404, bad trigger time / tag mode / empty suggestion →
400, invalid admin key → 401. Nothing below this layer knows about HTTP.
*/
package handlers
