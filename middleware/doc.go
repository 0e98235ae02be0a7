// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides request logging and JSON helpers.

WithLogging wraps a handler with start/complete slog lines including
method, path, and duration. JSONResponse and ErrorResponse write the
standard response envelopes; ParseJSONBody decodes request bodies.
*/
package middleware
