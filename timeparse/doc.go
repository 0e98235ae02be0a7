// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package timeparse turns free-text time ranges into canonical 30-minute
slot labels.

A canonical label is "HH:MM–HH:MM" (en-dash, zero-padded 24-hour
clock). ParseRange handles one line; ParseLines handles multi-line
submissions line by line:

	timeparse.ParseRange("09:00-10:15")
	// ["09:00–09:30", "09:30–10:00", "10:00–10:15"]

Parsing is best-effort by design: lines without a recognizable range
and inverted ranges produce no slots rather than an error. The package
is pure and stateless.
*/
package timeparse
