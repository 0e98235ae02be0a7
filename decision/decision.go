// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package decision

import (
	"sort"

	"github.com/lakshyajain-0291/dailymeetbot/availability"
	"github.com/lakshyajain-0291/dailymeetbot/models"
	"github.com/lakshyajain-0291/dailymeetbot/timeparse"
)

// Score weights. Unavailability is an overwhelming veto signal;
// preference and suggestion are small positive signals so near-ties
// fall back to volume of positive votes.
const (
	WeightUnavailable = -100
	WeightPreferred   = 2
	WeightSuggested   = 1
)

// Result is a full ranked report. Winner is the arithmetic maximum and
// is set whenever at least one slot exists, even at a non-positive
// score; callers decide how to present the no-clear-winner case.
type Result struct {
	Rankings []models.RankedSlot
	Winner   *models.RankedSlot
}

// ClearWinner reports whether the winner carries a positive score.
func (r Result) ClearWinner() bool {
	return r.Winner != nil && r.Winner.Score > 0
}

// Decide aggregates the day's votes and free-text suggestions into a
// ranked slot list. Configured slots always appear, even with zero
// votes. Ties keep encounter order: configured slots first in registry
// order, then slots discovered from suggestions in suggestion order.
func Decide(configSlots []string, day *availability.DayState) Result {
	index := make(map[string]int, len(configSlots))
	var rows []models.RankedSlot
	suggesters := make(map[string]map[string]struct{})

	for _, slot := range configSlots {
		if _, ok := index[slot]; ok {
			continue
		}
		u, p := day.Counts(slot)
		index[slot] = len(rows)
		rows = append(rows, models.RankedSlot{
			Slot:  slot,
			Tally: models.SlotTally{Unavailable: u, Preferred: p},
		})
	}

	for _, sug := range day.Suggestions() {
		for _, slot := range timeparse.ParseLines(sug.Text) {
			i, ok := index[slot]
			if !ok {
				u, p := day.Counts(slot)
				i = len(rows)
				index[slot] = i
				rows = append(rows, models.RankedSlot{
					Slot:  slot,
					Tally: models.SlotTally{Unavailable: u, Preferred: p},
				})
			}
			// Per distinct user, not per submitted line.
			users, ok := suggesters[slot]
			if !ok {
				users = make(map[string]struct{})
				suggesters[slot] = users
			}
			users[sug.UserID] = struct{}{}
			rows[i].Tally.Suggested = len(users)
		}
	}

	for i := range rows {
		t := rows[i].Tally
		rows[i].Score = WeightUnavailable*t.Unavailable +
			WeightPreferred*t.Preferred +
			WeightSuggested*t.Suggested
	}

	// Stable sort preserves encounter order among equal scores.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Score > rows[j].Score
	})

	res := Result{Rankings: rows}
	if len(rows) > 0 {
		top := rows[0]
		res.Winner = &top
	}
	return res
}
