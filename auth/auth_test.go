// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"testing"
)

func TestGenerateID(t *testing.T) {
	id, err := GenerateID(16)
	if err != nil {
		t.Fatal(err)
	}
	if len(id) != 32 {
		t.Errorf("expected 32 hex chars, got %d", len(id))
	}

	other, err := GenerateID(16)
	if err != nil {
		t.Fatal(err)
	}
	if id == other {
		t.Error("two generated IDs should differ")
	}
}

func TestAdminKeyRoundTrip(t *testing.T) {
	key := GenerateAdminKey("guild-123", "salt")
	if err := ValidateAdminKey("guild-123", key, "salt"); err != nil {
		t.Errorf("valid key rejected: %v", err)
	}
}

func TestAdminKeyDeterministic(t *testing.T) {
	a := GenerateAdminKey("guild-123", "salt")
	b := GenerateAdminKey("guild-123", "salt")
	if a != b {
		t.Error("admin key should be deterministic for a fixed group and salt")
	}
}

func TestAdminKeyRejections(t *testing.T) {
	key := GenerateAdminKey("guild-123", "salt")

	if err := ValidateAdminKey("guild-456", key, "salt"); !errors.Is(err, ErrInvalidAdminKey) {
		t.Error("key for another group should be rejected")
	}
	if err := ValidateAdminKey("guild-123", key, "other-salt"); !errors.Is(err, ErrInvalidAdminKey) {
		t.Error("key under another salt should be rejected")
	}
	if err := ValidateAdminKey("guild-123", "", "salt"); !errors.Is(err, ErrInvalidAdminKey) {
		t.Error("empty key should be rejected")
	}
}
