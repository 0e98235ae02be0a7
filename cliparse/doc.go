// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# CLI Flags

	-p            Server port (default: 3419)
	-d            Database URL (default: file:dailymeetbot.db)
	-t            Database type, sqlite or postgres (default: sqlite)
	-webhook      Message sink webhook URL (optional; log-only sink if unset)
	-admin-salt   Admin key salt (prefer env)

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	WEBHOOK_URL    → -webhook
	ADMIN_KEY_SALT → -admin-salt

CLI flags take precedence over environment variables. ADMIN_KEY_SALT is
the only required value.
*/
package cliparse
