// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

Routes use Go 1.22+ method and path patterns on http.ServeMux. Every
domain route is wrapped in the logging middleware; /health and / stay
bare.
*/
package router
