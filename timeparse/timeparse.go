// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package timeparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SlotMinutes is the length of a canonical slot.
const SlotMinutes = 30

// Matches "9:00-10:30", "09:00 – 10:30", "14:00—15:00": two clock
// tokens separated by a hyphen, en-dash, or em-dash, optionally padded.
var rangePattern = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*[-–—]\s*(\d{1,2}):(\d{2})`)

// ParseRange extracts one time range from a single line of free text
// and splits it into canonical 30-minute slot labels covering
// [start, end). The final slot is clipped to end when the range is not
// a multiple of 30 minutes. Unparseable lines and inverted or
// degenerate ranges yield nil, never an error.
func ParseRange(line string) []string {
	m := rangePattern.FindStringSubmatch(line)
	if m == nil {
		return nil
	}

	start, ok := clockMinutes(m[1], m[2])
	if !ok {
		return nil
	}
	end, ok := clockMinutes(m[3], m[4])
	if !ok {
		return nil
	}

	var slots []string
	for min := start; min < end; min += SlotMinutes {
		slotEnd := min + SlotMinutes
		if slotEnd > end {
			slotEnd = end
		}
		slots = append(slots, Label(min, slotEnd))
	}
	return slots
}

// ParseLines runs ParseRange over every line of text independently and
// concatenates the results in input order. Duplicates are retained;
// consumers de-duplicate with set semantics.
func ParseLines(text string) []string {
	var all []string
	for _, line := range strings.Split(text, "\n") {
		all = append(all, ParseRange(strings.TrimSpace(line))...)
	}
	return all
}

// Label formats a canonical slot label from two minutes-since-midnight
// values: zero-padded 24-hour clock times joined by an en-dash.
func Label(start, end int) string {
	return fmt.Sprintf("%s–%s", formatClock(start), formatClock(end))
}

// clockMinutes converts hour/minute tokens to minutes since midnight,
// rejecting hours outside 0-23 and minutes outside 0-59.
func clockMinutes(hourTok, minTok string) (int, bool) {
	hours, err := strconv.Atoi(hourTok)
	if err != nil || hours > 23 {
		return 0, false
	}
	mins, err := strconv.Atoi(minTok)
	if err != nil || mins > 59 {
		return 0, false
	}
	return hours*60 + mins, true
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
