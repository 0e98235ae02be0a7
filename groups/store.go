// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package groups

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lakshyajain-0291/dailymeetbot/models"
)

// Store persists one GroupConfig row per group. The payload column is
// the config JSON verbatim; daily votes never touch the database.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Load returns the group's persisted config, or the defaults if the
// group has never been saved.
func (s *Store) Load(groupID string) (*models.GroupConfig, error) {
	var payload []byte
	err := s.db.QueryRow(`
		SELECT payload FROM group_config WHERE group_id = $1
	`, groupID).Scan(&payload)

	if err == sql.ErrNoRows {
		return models.DefaultGroupConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load group config: %w", err)
	}

	var cfg models.GroupConfig
	if err := json.Unmarshal(payload, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode group config: %w", err)
	}
	return &cfg, nil
}

// Save upserts the group's config row.
func (s *Store) Save(groupID string, cfg *models.GroupConfig) error {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode group config: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO group_config (group_id, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (group_id) DO UPDATE SET payload = $2, updated_at = $3
	`, groupID, payload, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save group config: %w", err)
	}
	return nil
}

// Delete removes the group's row. Deleting an absent group is not an error.
func (s *Store) Delete(groupID string) error {
	_, err := s.db.Exec(`DELETE FROM group_config WHERE group_id = $1`, groupID)
	if err != nil {
		return fmt.Errorf("failed to delete group config: %w", err)
	}
	return nil
}

// List returns every persisted group ID, for schedule resumption at startup.
func (s *Store) List() ([]string, error) {
	rows, err := s.db.Query(`SELECT group_id FROM group_config ORDER BY group_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan group id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
