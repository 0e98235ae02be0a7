// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db creates the database schema.

One table, group_config: a row per group keyed by group identifier with
the serialized GroupConfig as its payload. CreateSchema is idempotent
and runs against Postgres (lib/pq) or SQLite (modernc.org/sqlite)
unchanged.
*/
package db
