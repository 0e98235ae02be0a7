// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lakshyajain-0291/dailymeetbot/cliparse"
	"github.com/lakshyajain-0291/dailymeetbot/db"
	"github.com/lakshyajain-0291/dailymeetbot/groups"
	"github.com/lakshyajain-0291/dailymeetbot/notify"
)

// SetupTestDB creates a throwaway in-memory SQLite database with the
// full schema. No daemon required.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", "file::memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A single connection keeps every statement on the same in-memory DB.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3419,
		DatabaseURL:  "file::memory:",
		DatabaseType: "sqlite",
		AdminKeySalt: "test-admin-salt",
	}
}

// FixedClock always reports the same instant.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// RecordingSink captures every notice for assertions.
type RecordingSink struct {
	mu        sync.Mutex
	Polls     []notify.PollNotice
	Decisions []notify.DecisionNotice
}

func (s *RecordingSink) PostPoll(_ context.Context, n notify.PollNotice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Polls = append(s.Polls, n)
	return nil
}

func (s *RecordingSink) PostDecision(_ context.Context, n notify.DecisionNotice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Decisions = append(s.Decisions, n)
	return nil
}

// PollCount returns the number of polls posted so far.
func (s *RecordingSink) PollCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Polls)
}

// DecisionCount returns the number of decision reports posted so far.
func (s *RecordingSink) DecisionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Decisions)
}

// WaitForPolls blocks until at least n polls were posted or the
// timeout elapses. Posting is asynchronous, so tests must wait.
func (s *RecordingSink) WaitForPolls(t *testing.T, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s.PollCount() >= n {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d poll notices (got %d)", n, s.PollCount())
}

// WaitForDecisions blocks until at least n decision reports were posted
// or the timeout elapses.
func (s *RecordingSink) WaitForDecisions(t *testing.T, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s.DecisionCount() >= n {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d decision notices (got %d)", n, s.DecisionCount())
}

// NewTestManager builds a Manager over an in-memory store with a
// recording sink and a fixed clock.
func NewTestManager(t *testing.T) (*groups.Manager, *RecordingSink) {
	t.Helper()

	conn := SetupTestDB(t)
	sink := &RecordingSink{}
	clock := FixedClock{T: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	mgr := groups.NewManager(groups.NewStore(conn), sink, clock, time.Hour)
	t.Cleanup(mgr.Shutdown)
	return mgr, sink
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
