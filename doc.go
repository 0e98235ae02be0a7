// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the dailymeetbot API server.

dailymeetbot runs the daily "when can this group meet?" workflow for
any number of independent groups: members mark 30-minute slots as
unavailable or preferred, suggest custom time ranges as free text, and
a weighted scoring engine recommends the best slot.

# Starting the Server

The server reads configuration from a .env file, environment variables,
or CLI flags:

	ADMIN_KEY_SALT=... go run .

Or with flags:

	go run . -p 3419 -d "file:dailymeetbot.db" -admin-salt secret

# Configuration

Required settings:

  - ADMIN_KEY_SALT (-admin-salt): Secret for group admin key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3419)
  - DATABASE_URL (-d): SQLite file or Postgres connection string
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - WEBHOOK_URL (-webhook): Message sink endpoint; log-only if unset

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (groups, votes, decisions)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, JSON helpers
  - models: Configuration and report types
  - groups: Per-group registry, config store, operations
  - availability: Daily vote ledger with mutual-exclusion rules
  - decision: Slot scoring and ranking
  - timeparse: Free-text time range parsing
  - scheduler: Per-group daily poll triggers
  - notify: Message sink (webhook or log)
  - auth: Admin key generation and validation
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
