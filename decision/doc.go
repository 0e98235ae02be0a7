// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package decision scores and ranks the day's time slots.

Decide seeds the working set with every configured slot, folds in slots
parsed from user suggestions, and scores each as

	score = -100*unavailable + 2*preferred + 1*suggested

where suggested counts distinct users, not submissions. The output is
sorted by score descending with ties kept in encounter order, so a
fixed day state always produces identical rankings. No slot is ever
dropped from the report.
*/
package decision
