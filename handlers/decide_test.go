// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/lakshyajain-0291/dailymeetbot/models"
	"github.com/lakshyajain-0291/dailymeetbot/testutil"
)

func TestDecideEmptyDay(t *testing.T) {
	mgr, _, cfg := setupGroupTest(t)
	handler := NewDecisionHandler(mgr, cfg)

	req := testutil.MakeRequest("POST", "/groups/group-1/decide", nil, nil)
	req.SetPathValue("id", "group-1")
	w := httptest.NewRecorder()

	handler.Decide(w, req)

	testutil.AssertStatus(t, w, 200)
	var resp models.DecisionResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Rankings) != 6 {
		t.Errorf("Expected all 6 configured slots ranked, got %d", len(resp.Rankings))
	}
	if resp.ClearWinner {
		t.Error("A day with no votes has no clear winner")
	}
	for _, row := range resp.Rankings {
		if row.Score != 0 {
			t.Errorf("Expected score 0 for %s, got %d", row.Slot, row.Score)
		}
	}
}

// Full day: votes and a suggestion in, ranked report out.
func TestDecideFullDay(t *testing.T) {
	mgr, sink, cfg := setupGroupTest(t)
	votes := NewVoteHandler(mgr, cfg)
	decide := NewDecisionHandler(mgr, cfg)

	// alice and bob prefer 15:00, carol cannot do 11:00, dave suggests
	// an hour outside the configured slots.
	for _, v := range []models.VoteRequest{
		{UserID: "alice", Slots: []string{"15:00–15:30"}},
		{UserID: "bob", Slots: []string{"15:00–15:30"}},
	} {
		req := testutil.MakeRequest("POST", "/groups/group-1/votes/preferred", v, nil)
		req.SetPathValue("id", "group-1")
		w := httptest.NewRecorder()
		votes.SetPreferred(w, req)
		testutil.AssertStatus(t, w, 200)
	}

	unavail := models.VoteRequest{UserID: "carol", Slots: []string{"11:00–11:30"}}
	req := testutil.MakeRequest("POST", "/groups/group-1/votes/unavailable", unavail, nil)
	req.SetPathValue("id", "group-1")
	w := httptest.NewRecorder()
	votes.SetUnavailable(w, req)
	testutil.AssertStatus(t, w, 200)

	sugg := models.SuggestionRequest{UserID: "dave", Text: "16:00-16:30 works for me"}
	req = testutil.MakeRequest("POST", "/groups/group-1/suggestions", sugg, nil)
	req.SetPathValue("id", "group-1")
	w = httptest.NewRecorder()
	votes.Suggest(w, req)
	testutil.AssertStatus(t, w, 200)

	req = testutil.MakeRequest("POST", "/groups/group-1/decide", nil, nil)
	req.SetPathValue("id", "group-1")
	w = httptest.NewRecorder()
	decide.Decide(w, req)

	testutil.AssertStatus(t, w, 200)
	var resp models.DecisionResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Winner == nil || resp.Winner.Slot != "15:00–15:30" {
		t.Fatalf("Expected winner 15:00–15:30, got %+v", resp.Winner)
	}
	if resp.Winner.Score != 4 {
		t.Errorf("Expected winner score 4, got %d", resp.Winner.Score)
	}
	if !resp.ClearWinner {
		t.Error("Expected a clear winner")
	}
	// The suggested hour joins the ranking alongside the configured slots.
	if len(resp.Rankings) != 7 {
		t.Errorf("Expected 7 ranked slots, got %d", len(resp.Rankings))
	}
	var suggested, blocked *models.RankedSlot
	for i := range resp.Rankings {
		switch resp.Rankings[i].Slot {
		case "16:00–16:30":
			suggested = &resp.Rankings[i]
		case "11:00–11:30":
			blocked = &resp.Rankings[i]
		}
	}
	if suggested == nil || suggested.Score != 1 {
		t.Errorf("Expected suggested slot with score 1, got %+v", suggested)
	}
	if blocked == nil || blocked.Score != -100 {
		t.Errorf("Expected blocked slot with score -100, got %+v", blocked)
	}

	sink.WaitForDecisions(t, 1)
	if sink.Decisions[0].ID != resp.ReportID {
		t.Errorf("Notice ID %s does not match report ID %s", sink.Decisions[0].ID, resp.ReportID)
	}
}
