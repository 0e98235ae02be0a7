// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scheduler

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/lakshyajain-0291/dailymeetbot/models"
)

// DefaultInterval is the trigger polling cadence. Sub-minute so a
// configured HH:MM is never skipped; the per-minute guard below keeps
// firing at most once per calendar minute.
const DefaultInterval = 30 * time.Second

// Clock supplies wall-clock time so trigger logic is testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FireFunc is invoked once per matching minute for a group.
type FireFunc func(groupID string)

// trigger is one group's background timer.
type trigger struct {
	groupID string
	at      string // "HH:MM"
	loc     *time.Location

	lastFired string // "2006-01-02 15:04" of the last fire

	stop chan struct{}
	done chan struct{}
}

// check reports whether the trigger should fire for the given instant,
// guarding against a second fire within the same calendar minute.
func (t *trigger) check(now time.Time) bool {
	local := now.In(t.loc)
	if local.Format("15:04") != t.at {
		return false
	}
	minute := local.Format("2006-01-02 15:04")
	if minute == t.lastFired {
		return false
	}
	t.lastFired = minute
	return true
}

// Runner owns at most one active trigger per group.
type Runner struct {
	mu       sync.Mutex
	triggers map[string]*trigger

	clock    Clock
	interval time.Duration
	fire     FireFunc
}

func NewRunner(clock Clock, interval time.Duration, fire FireFunc) *Runner {
	if clock == nil {
		clock = SystemClock{}
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Runner{
		triggers: make(map[string]*trigger),
		clock:    clock,
		interval: interval,
		fire:     fire,
	}
}

// Set replaces the group's trigger with one matching the given
// settings. A disabled schedule, or one without a destination channel,
// tears the trigger down instead of starting an inert one. The previous
// trigger is always stopped first; its goroutine is joined before the
// replacement starts.
func (r *Runner) Set(groupID string, sched models.AutoSchedule) error {
	r.Stop(groupID)

	if !sched.Enabled || sched.Channel == "" {
		return nil
	}

	loc, err := time.LoadLocation(sched.Timezone)
	if err != nil {
		return fmt.Errorf("unknown timezone %q: %w", sched.Timezone, err)
	}

	t := &trigger{
		groupID: groupID,
		at:      sched.Time,
		loc:     loc,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}

	r.mu.Lock()
	r.triggers[groupID] = t
	r.mu.Unlock()

	go r.run(t)

	slog.Info("auto-schedule trigger started",
		"group_id", groupID,
		"at", sched.Time,
		"timezone", sched.Timezone,
	)
	return nil
}

func (r *Runner) run(t *trigger) {
	defer close(t.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			if t.check(r.clock.Now()) {
				r.fire(t.groupID)
			}
		}
	}
}

// Stop cancels the group's trigger, if any, and waits for its goroutine
// to exit so no orphaned timer outlives its owner.
func (r *Runner) Stop(groupID string) {
	r.mu.Lock()
	t, ok := r.triggers[groupID]
	if ok {
		delete(r.triggers, groupID)
	}
	r.mu.Unlock()

	if !ok {
		return
	}
	close(t.stop)
	<-t.done
	slog.Info("auto-schedule trigger stopped", "group_id", groupID)
}

// StopAll cancels every active trigger. Used at shutdown.
func (r *Runner) StopAll() {
	r.mu.Lock()
	ids := make([]string, 0, len(r.triggers))
	for id := range r.triggers {
		ids = append(ids, id)
	}
	r.mu.Unlock()

	for _, id := range ids {
		r.Stop(id)
	}
}

// Active reports whether the group currently has a running trigger.
func (r *Runner) Active(groupID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.triggers[groupID]
	return ok
}
