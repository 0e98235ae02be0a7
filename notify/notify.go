// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/lakshyajain-0291/dailymeetbot/models"
)

// PollNotice carries everything a renderer needs to post a daily
// availability poll. The sink owns formatting and markup.
type PollNotice struct {
	ID      string   `json:"id"`
	GroupID string   `json:"group_id"`
	Channel string   `json:"channel,omitempty"`
	Slots   []string `json:"slots"`
	TagMode string   `json:"tag_mode"`
	TagRole string   `json:"tag_role,omitempty"`
}

// DecisionNotice carries a rendered-ready decision report: labels,
// tallies, scores, and the recommended slot.
type DecisionNotice struct {
	ID          string              `json:"id"`
	GroupID     string              `json:"group_id"`
	Channel     string              `json:"channel,omitempty"`
	Rankings    []models.RankedSlot `json:"rankings"`
	Winner      *models.RankedSlot  `json:"winner,omitempty"`
	ClearWinner bool                `json:"clear_winner"`
}

// Sink is the message-posting collaborator. Implementations must not
// be relied on for state; a failed post leaves the in-memory ledger
// exactly as it was.
type Sink interface {
	PostPoll(ctx context.Context, n PollNotice) error
	PostDecision(ctx context.Context, n DecisionNotice) error
}

// LogSink writes notices to the structured log. It is the default sink
// when no webhook is configured.
type LogSink struct{}

func (LogSink) PostPoll(_ context.Context, n PollNotice) error {
	slog.Info("poll posted",
		"poll_id", n.ID,
		"group_id", n.GroupID,
		"channel", n.Channel,
		"slots", len(n.Slots),
		"tag_mode", n.TagMode,
	)
	return nil
}

func (LogSink) PostDecision(_ context.Context, n DecisionNotice) error {
	winner := ""
	if n.Winner != nil {
		winner = n.Winner.Slot
	}
	slog.Info("decision posted",
		"report_id", n.ID,
		"group_id", n.GroupID,
		"winner", winner,
		"clear_winner", n.ClearWinner,
	)
	return nil
}

// WebhookSink delivers notices as JSON POSTs to a single endpoint. The
// receiving side renders them for whatever chat platform it fronts.
type WebhookSink struct {
	Endpoint string
	Client   *http.Client
}

func NewWebhookSink(endpoint string) *WebhookSink {
	return &WebhookSink{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *WebhookSink) PostPoll(ctx context.Context, n PollNotice) error {
	return s.post(ctx, "poll", n)
}

func (s *WebhookSink) PostDecision(ctx context.Context, n DecisionNotice) error {
	return s.post(ctx, "decision", n)
}

func (s *WebhookSink) post(ctx context.Context, kind string, payload any) error {
	body, err := json.Marshal(map[string]any{
		"type":    kind,
		"payload": payload,
	})
	if err != nil {
		return fmt.Errorf("failed to encode %s notice: %w", kind, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook post failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook post failed: status %d", resp.StatusCode)
	}
	return nil
}
