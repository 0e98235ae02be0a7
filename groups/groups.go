// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package groups

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lakshyajain-0291/dailymeetbot/availability"
	"github.com/lakshyajain-0291/dailymeetbot/decision"
	"github.com/lakshyajain-0291/dailymeetbot/models"
	"github.com/lakshyajain-0291/dailymeetbot/notify"
	"github.com/lakshyajain-0291/dailymeetbot/scheduler"
	"github.com/lakshyajain-0291/dailymeetbot/timeparse"
)

var (
	ErrDuplicateSlot     = errors.New("slot already exists")
	ErrSlotNotFound      = errors.New("slot not found")
	ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM (24-hour)")
	ErrInvalidTagMode    = errors.New("invalid tag mode")
	ErrNoSchedule        = errors.New("no schedule configured")
)

var triggerTimePattern = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)

// Manager is the per-group registry: config cache, daily vote ledgers,
// and auto-schedule triggers, keyed by group ID. Groups are created on
// first reference and fully torn down by RemoveGroup.
//
// All mutations are validate-then-apply: the store write happens first
// and in-memory state changes only on confirmed success.
type Manager struct {
	mu    sync.Mutex
	store *Store
	sink  notify.Sink
	sched *scheduler.Runner

	cfgs map[string]*models.GroupConfig
	days map[string]*availability.DayState
}

// NewManager builds a Manager and its trigger runner. interval <= 0
// uses the default polling cadence.
func NewManager(store *Store, sink notify.Sink, clock scheduler.Clock, interval time.Duration) *Manager {
	m := &Manager{
		store: store,
		sink:  sink,
		cfgs:  make(map[string]*models.GroupConfig),
		days:  make(map[string]*availability.DayState),
	}
	m.sched = scheduler.NewRunner(clock, interval, m.autoFire)
	return m
}

// Resume restarts triggers for every persisted group whose schedule is
// enabled. Called once at startup.
func (m *Manager) Resume() error {
	ids, err := m.store.List()
	if err != nil {
		return err
	}
	for _, id := range ids {
		m.mu.Lock()
		cfg, err := m.configLocked(id)
		m.mu.Unlock()
		if err != nil {
			slog.Error("failed to load group at startup", "group_id", id, "error", err)
			continue
		}
		if !cfg.AutoSchedule.Enabled {
			continue
		}
		if err := m.sched.Set(id, cfg.AutoSchedule); err != nil {
			slog.Error("failed to resume trigger", "group_id", id, "error", err)
		}
	}
	slog.Info("group configurations loaded", "groups", len(ids))
	return nil
}

// Shutdown stops every active trigger.
func (m *Manager) Shutdown() {
	m.sched.StopAll()
}

// configLocked returns the cached config, loading (or defaulting) it on
// first reference. Callers hold m.mu.
func (m *Manager) configLocked(groupID string) (*models.GroupConfig, error) {
	if cfg, ok := m.cfgs[groupID]; ok {
		return cfg, nil
	}
	cfg, err := m.store.Load(groupID)
	if err != nil {
		return nil, err
	}
	m.cfgs[groupID] = cfg
	return cfg, nil
}

// dayLocked returns the group's current ledger, building an empty one
// from the current slot configuration if no poll has been started yet.
func (m *Manager) dayLocked(groupID string) (*availability.DayState, error) {
	if day, ok := m.days[groupID]; ok {
		return day, nil
	}
	cfg, err := m.configLocked(groupID)
	if err != nil {
		return nil, err
	}
	day := availability.NewDayState(cfg.Timeslots)
	m.days[groupID] = day
	return day, nil
}

// Config returns a copy of the group's configuration.
func (m *Manager) Config(groupID string) (*models.GroupConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cfg, err := m.configLocked(groupID)
	if err != nil {
		return nil, err
	}
	return cfg.Clone(), nil
}

// Slots returns the group's configured slot labels in order.
func (m *Manager) Slots(groupID string) ([]string, error) {
	cfg, err := m.Config(groupID)
	if err != nil {
		return nil, err
	}
	return cfg.Timeslots, nil
}

// AddSlot appends a slot label to the group's poll options.
func (m *Manager) AddSlot(groupID, label string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cfg, err := m.configLocked(groupID)
	if err != nil {
		return err
	}
	if slices.Contains(cfg.Timeslots, label) {
		return ErrDuplicateSlot
	}

	next := cfg.Clone()
	next.Timeslots = append(next.Timeslots, label)
	if err := m.store.Save(groupID, next); err != nil {
		return err
	}
	m.cfgs[groupID] = next
	return nil
}

// RemoveSlot removes a slot label, preserving the order of the rest.
// The current day's ledger keeps tracking the slot until the next reset.
func (m *Manager) RemoveSlot(groupID, label string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cfg, err := m.configLocked(groupID)
	if err != nil {
		return err
	}
	i := slices.Index(cfg.Timeslots, label)
	if i < 0 {
		return ErrSlotNotFound
	}

	next := cfg.Clone()
	next.Timeslots = slices.Delete(next.Timeslots, i, i+1)
	if err := m.store.Save(groupID, next); err != nil {
		return err
	}
	m.cfgs[groupID] = next
	return nil
}

// SetSchedule configures and enables the group's daily auto-post.
func (m *Manager) SetSchedule(groupID string, req models.ScheduleRequest) error {
	if !triggerTimePattern.MatchString(req.Time) {
		return ErrInvalidTimeFormat
	}

	m.mu.Lock()
	cfg, err := m.configLocked(groupID)
	if err != nil {
		m.mu.Unlock()
		return err
	}

	next := cfg.Clone()
	next.AutoSchedule.Enabled = true
	next.AutoSchedule.Time = req.Time
	next.AutoSchedule.Channel = req.Channel
	if req.Timezone != "" {
		next.AutoSchedule.Timezone = req.Timezone
	}
	switch req.TagMode {
	case "":
		next.AutoSchedule.TagMode = models.TagNone
		next.AutoSchedule.TagRole = ""
	case models.TagNone, models.TagEveryone:
		next.AutoSchedule.TagMode = req.TagMode
		next.AutoSchedule.TagRole = ""
	case models.TagRole:
		next.AutoSchedule.TagMode = models.TagRole
		next.AutoSchedule.TagRole = req.TagRole
	default:
		m.mu.Unlock()
		return ErrInvalidTagMode
	}

	// Catch a bad timezone before persisting anything.
	if _, err := time.LoadLocation(next.AutoSchedule.Timezone); err != nil {
		m.mu.Unlock()
		return err
	}

	if err := m.store.Save(groupID, next); err != nil {
		m.mu.Unlock()
		return err
	}
	m.cfgs[groupID] = next
	sched := next.AutoSchedule
	m.mu.Unlock()

	return m.sched.Set(groupID, sched)
}

// EnableSchedule re-enables a previously configured schedule.
func (m *Manager) EnableSchedule(groupID string) error {
	return m.setEnabled(groupID, true)
}

// DisableSchedule turns the auto-post off and tears its trigger down.
func (m *Manager) DisableSchedule(groupID string) error {
	return m.setEnabled(groupID, false)
}

func (m *Manager) setEnabled(groupID string, enabled bool) error {
	m.mu.Lock()
	cfg, err := m.configLocked(groupID)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	if enabled && (cfg.AutoSchedule.Time == "" || cfg.AutoSchedule.Channel == "") {
		m.mu.Unlock()
		return ErrNoSchedule
	}

	next := cfg.Clone()
	next.AutoSchedule.Enabled = enabled
	if err := m.store.Save(groupID, next); err != nil {
		m.mu.Unlock()
		return err
	}
	m.cfgs[groupID] = next
	sched := next.AutoSchedule
	m.mu.Unlock()

	return m.sched.Set(groupID, sched)
}

// RemoveGroup tears the group down: trigger stopped, row deleted,
// in-memory state dropped.
func (m *Manager) RemoveGroup(groupID string) error {
	m.sched.Stop(groupID)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.Delete(groupID); err != nil {
		return err
	}
	delete(m.cfgs, groupID)
	delete(m.days, groupID)
	return nil
}

// StartDay resets the group's ledger from the current slot
// configuration and posts a fresh poll. tagged controls whether the
// poll notice carries the configured tag target (auto-posts tag, manual
// ones do not).
func (m *Manager) StartDay(groupID string, tagged bool) (models.StartDayResponse, error) {
	m.mu.Lock()
	cfg, err := m.configLocked(groupID)
	if err != nil {
		m.mu.Unlock()
		return models.StartDayResponse{}, err
	}

	day := availability.NewDayState(cfg.Timeslots)
	m.days[groupID] = day

	notice := notify.PollNotice{
		ID:      uuid.NewString(),
		GroupID: groupID,
		Channel: cfg.AutoSchedule.Channel,
		Slots:   day.TrackedSlots(),
		TagMode: models.TagNone,
	}
	if tagged {
		notice.TagMode = cfg.AutoSchedule.TagMode
		notice.TagRole = cfg.AutoSchedule.TagRole
	}
	m.mu.Unlock()

	// Posting is deferred so slow sinks never hold up the caller.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := m.sink.PostPoll(ctx, notice); err != nil {
			slog.Error("failed to post poll", "group_id", groupID, "poll_id", notice.ID, "error", err)
		}
	}()

	return models.StartDayResponse{PollID: notice.ID, Slots: notice.Slots}, nil
}

// autoFire is the trigger callback: reset and post, with tagging.
func (m *Manager) autoFire(groupID string) {
	if _, err := m.StartDay(groupID, true); err != nil {
		slog.Error("auto-scheduled poll failed", "group_id", groupID, "error", err)
		return
	}
	slog.Info("auto-scheduled poll posted", "group_id", groupID)
}

// SetUnavailable records the user's busy slots, returning the subset
// the current ledger actually tracks.
func (m *Manager) SetUnavailable(groupID, userID string, slots []string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	day, err := m.dayLocked(groupID)
	if err != nil {
		return nil, err
	}
	day.SetUnavailable(userID, slots)
	return tracked(day, slots), nil
}

// SetPreferred records the user's preferred slots; slots the user has
// marked unavailable stay excluded.
func (m *Manager) SetPreferred(groupID, userID string, slots []string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	day, err := m.dayLocked(groupID)
	if err != nil {
		return nil, err
	}
	day.SetPreferred(userID, slots)

	var recorded []string
	for _, slot := range slots {
		if day.IsPreferred(slot, userID) {
			recorded = append(recorded, slot)
		}
	}
	return recorded, nil
}

// RecordSuggestion stores the user's free-text suggestion and returns
// the slots it parses to, for echoing back to the submitter.
func (m *Manager) RecordSuggestion(groupID, userID, text string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	day, err := m.dayLocked(groupID)
	if err != nil {
		return nil, err
	}
	if err := day.RecordSuggestion(userID, text); err != nil {
		return nil, err
	}
	return timeparse.ParseLines(text), nil
}

// Decide runs the decision engine over the current ledger and posts the
// report through the sink.
func (m *Manager) Decide(groupID string) (models.DecisionResponse, error) {
	m.mu.Lock()
	cfg, err := m.configLocked(groupID)
	if err != nil {
		m.mu.Unlock()
		return models.DecisionResponse{}, err
	}
	day, err := m.dayLocked(groupID)
	if err != nil {
		m.mu.Unlock()
		return models.DecisionResponse{}, err
	}

	res := decision.Decide(cfg.Timeslots, day)
	notice := notify.DecisionNotice{
		ID:          uuid.NewString(),
		GroupID:     groupID,
		Channel:     cfg.AutoSchedule.Channel,
		Rankings:    res.Rankings,
		Winner:      res.Winner,
		ClearWinner: res.ClearWinner(),
	}
	m.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := m.sink.PostDecision(ctx, notice); err != nil {
			slog.Error("failed to post decision", "group_id", groupID, "report_id", notice.ID, "error", err)
		}
	}()

	return models.DecisionResponse{
		ReportID:    notice.ID,
		Rankings:    res.Rankings,
		Winner:      res.Winner,
		ClearWinner: res.ClearWinner(),
	}, nil
}

// ScheduleActive reports whether the group currently has a running
// trigger. Exposed for status views and tests.
func (m *Manager) ScheduleActive(groupID string) bool {
	return m.sched.Active(groupID)
}

func tracked(day *availability.DayState, slots []string) []string {
	var out []string
	for _, slot := range slots {
		if day.Tracks(slot) {
			out = append(out, slot)
		}
	}
	return out
}
