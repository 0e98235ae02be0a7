// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package groups_test

import (
	"testing"

	"github.com/lakshyajain-0291/dailymeetbot/groups"
	"github.com/lakshyajain-0291/dailymeetbot/models"
	"github.com/lakshyajain-0291/dailymeetbot/testutil"
)

func TestStoreLoadDefaults(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := groups.NewStore(conn)

	cfg, err := store.Load("never-saved")
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}

	want := models.DefaultGroupConfig()
	if len(cfg.Timeslots) != len(want.Timeslots) {
		t.Errorf("Expected %d default slots, got %d", len(want.Timeslots), len(cfg.Timeslots))
	}
	if cfg.AutoSchedule.Timezone != "Asia/Kolkata" {
		t.Errorf("Expected default timezone Asia/Kolkata, got %s", cfg.AutoSchedule.Timezone)
	}
	if cfg.AutoSchedule.Enabled {
		t.Error("Default schedule should be disabled")
	}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := groups.NewStore(conn)

	cfg := models.DefaultGroupConfig()
	cfg.Timeslots = []string{"10:00–10:30"}
	cfg.AutoSchedule.Enabled = true
	cfg.AutoSchedule.Channel = "general"
	cfg.AutoSchedule.TagMode = models.TagRole
	cfg.AutoSchedule.TagRole = "members"

	if err := store.Save("group-1", cfg); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	loaded, err := store.Load("group-1")
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	if len(loaded.Timeslots) != 1 || loaded.Timeslots[0] != "10:00–10:30" {
		t.Errorf("Slots did not round-trip: %v", loaded.Timeslots)
	}
	if !loaded.AutoSchedule.Enabled || loaded.AutoSchedule.Channel != "general" {
		t.Errorf("Schedule did not round-trip: %+v", loaded.AutoSchedule)
	}
	if loaded.AutoSchedule.TagMode != models.TagRole || loaded.AutoSchedule.TagRole != "members" {
		t.Errorf("Tag target did not round-trip: %+v", loaded.AutoSchedule)
	}
}

func TestStoreSaveOverwrites(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := groups.NewStore(conn)

	cfg := models.DefaultGroupConfig()
	if err := store.Save("group-1", cfg); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	cfg.Timeslots = []string{"08:00–08:30", "09:00–09:30"}
	if err := store.Save("group-1", cfg); err != nil {
		t.Fatalf("Failed to overwrite: %v", err)
	}

	loaded, err := store.Load("group-1")
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	if len(loaded.Timeslots) != 2 {
		t.Errorf("Expected 2 slots after overwrite, got %d", len(loaded.Timeslots))
	}
}

func TestStoreDelete(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := groups.NewStore(conn)

	if err := store.Save("group-1", models.DefaultGroupConfig()); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}
	if err := store.Delete("group-1"); err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}

	ids, err := store.List()
	if err != nil {
		t.Fatalf("Failed to list: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("Expected no groups after delete, got %v", ids)
	}

	// Deleting again is not an error.
	if err := store.Delete("group-1"); err != nil {
		t.Errorf("Deleting an absent group should succeed: %v", err)
	}
}

func TestStoreList(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := groups.NewStore(conn)

	for _, id := range []string{"gamma", "alpha", "beta"} {
		if err := store.Save(id, models.DefaultGroupConfig()); err != nil {
			t.Fatalf("Failed to save %s: %v", id, err)
		}
	}

	ids, err := store.List()
	if err != nil {
		t.Fatalf("Failed to list: %v", err)
	}
	want := []string{"alpha", "beta", "gamma"}
	if len(ids) != len(want) {
		t.Fatalf("Expected %d groups, got %d", len(want), len(ids))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("Expected ids[%d]=%s, got %s", i, want[i], ids[i])
		}
	}
}
