package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const keyRefreshedAt = "refreshed_at"

func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("get setting %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

// RefreshedAt returns when intervals were last fetched. The zero time means
// never.
func (s *Store) RefreshedAt() (time.Time, error) {
	v, err := s.GetSetting(keyRefreshedAt)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return time.Time{}, nil
		}
		return time.Time{}, err
	}
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s: %w", keyRefreshedAt, err)
	}
	return t, nil
}

func (s *Store) MarkRefreshed(t time.Time) error {
	return s.SetSetting(keyRefreshedAt, t.UTC().Format(time.RFC3339))
}
