// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth implements the admin predicate for admin-gated operations.

Each group has a deterministic admin key: HMAC-SHA256 of the group ID
under a server-wide salt, URL-safe base64 without padding. Handlers
read the key from the X-Admin-Key header and validate it with
ValidateAdminKey; a mismatch is ErrInvalidAdminKey and maps to 401.

There is no session or token store here. The key is verifiable by any
instance configured with the same salt.
*/
package auth
