// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/lakshyajain-0291/dailymeetbot/models"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

func newTestTrigger(t *testing.T, at, tz string) *trigger {
	t.Helper()
	loc, err := time.LoadLocation(tz)
	if err != nil {
		t.Fatal(err)
	}
	return &trigger{groupID: "g1", at: at, loc: loc}
}

func TestTriggerFiresOnMatchingMinute(t *testing.T) {
	tr := newTestTrigger(t, "09:00", "UTC")

	if tr.check(time.Date(2025, 6, 1, 8, 59, 30, 0, time.UTC)) {
		t.Error("should not fire before the configured minute")
	}
	if !tr.check(time.Date(2025, 6, 1, 9, 0, 5, 0, time.UTC)) {
		t.Error("should fire on the configured minute")
	}
	if tr.check(time.Date(2025, 6, 1, 9, 1, 0, 0, time.UTC)) {
		t.Error("should not fire after the minute has passed")
	}
}

func TestTriggerAtMostOncePerMinute(t *testing.T) {
	tr := newTestTrigger(t, "09:00", "UTC")

	// Sub-minute cadence means several checks land in the same minute.
	if !tr.check(time.Date(2025, 6, 1, 9, 0, 1, 0, time.UTC)) {
		t.Fatal("first check should fire")
	}
	if tr.check(time.Date(2025, 6, 1, 9, 0, 31, 0, time.UTC)) {
		t.Error("second check in the same minute must not fire")
	}

	// Next day, same minute: a fresh fire.
	if !tr.check(time.Date(2025, 6, 2, 9, 0, 1, 0, time.UTC)) {
		t.Error("same minute on a later day should fire again")
	}
}

func TestTriggerHonorsTimezone(t *testing.T) {
	tr := newTestTrigger(t, "09:00", "Asia/Kolkata")

	// 03:30 UTC is 09:00 IST.
	if !tr.check(time.Date(2025, 6, 1, 3, 30, 0, 0, time.UTC)) {
		t.Error("should fire at the configured local time")
	}
	tr = newTestTrigger(t, "09:00", "Asia/Kolkata")
	if tr.check(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)) {
		t.Error("09:00 UTC is not 09:00 IST")
	}
}

func enabledSchedule(at string) models.AutoSchedule {
	return models.AutoSchedule{
		Enabled:  true,
		Channel:  "chan-1",
		Time:     at,
		Timezone: "UTC",
		TagMode:  models.TagNone,
	}
}

func TestRunnerSetAndStop(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}
	r := NewRunner(clock, time.Hour, func(string) {})

	if err := r.Set("g1", enabledSchedule("09:00")); err != nil {
		t.Fatal(err)
	}
	if !r.Active("g1") {
		t.Fatal("trigger should be active after Set")
	}

	r.Stop("g1")
	if r.Active("g1") {
		t.Error("trigger should be gone after Stop")
	}
	// Stopping again is a no-op.
	r.Stop("g1")
}

func TestRunnerDisabledScheduleTearsDown(t *testing.T) {
	r := NewRunner(&fakeClock{}, time.Hour, func(string) {})

	if err := r.Set("g1", enabledSchedule("09:00")); err != nil {
		t.Fatal(err)
	}

	off := enabledSchedule("09:00")
	off.Enabled = false
	if err := r.Set("g1", off); err != nil {
		t.Fatal(err)
	}
	if r.Active("g1") {
		t.Error("disabling the schedule must tear the trigger down")
	}
}

func TestRunnerNoChannelTearsDown(t *testing.T) {
	r := NewRunner(&fakeClock{}, time.Hour, func(string) {})

	sched := enabledSchedule("09:00")
	sched.Channel = ""
	if err := r.Set("g1", sched); err != nil {
		t.Fatal(err)
	}
	if r.Active("g1") {
		t.Error("a schedule without a destination must not run")
	}
}

func TestRunnerReplaceKeepsSingleTrigger(t *testing.T) {
	r := NewRunner(&fakeClock{}, time.Hour, func(string) {})

	if err := r.Set("g1", enabledSchedule("09:00")); err != nil {
		t.Fatal(err)
	}
	if err := r.Set("g1", enabledSchedule("10:00")); err != nil {
		t.Fatal(err)
	}

	r.mu.Lock()
	n := len(r.triggers)
	r.mu.Unlock()
	if n != 1 {
		t.Errorf("active triggers = %d, want 1", n)
	}
	r.StopAll()
}

func TestRunnerRejectsUnknownTimezone(t *testing.T) {
	r := NewRunner(&fakeClock{}, time.Hour, func(string) {})

	sched := enabledSchedule("09:00")
	sched.Timezone = "Mars/Olympus"
	if err := r.Set("g1", sched); err == nil {
		t.Error("unknown timezone should be rejected")
	}
	if r.Active("g1") {
		t.Error("rejected schedule must not leave a trigger running")
	}
}

func TestRunnerFiresThroughTicker(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 9, 0, 10, 0, time.UTC)}

	fired := make(chan string, 1)
	r := NewRunner(clock, 5*time.Millisecond, func(groupID string) {
		select {
		case fired <- groupID:
		default:
		}
	})

	if err := r.Set("g1", enabledSchedule("09:00")); err != nil {
		t.Fatal(err)
	}
	defer r.StopAll()

	select {
	case id := <-fired:
		if id != "g1" {
			t.Errorf("fired for %s, want g1", id)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("trigger did not fire")
	}
}
