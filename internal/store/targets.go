package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sadopc/hours/internal/hours"
)

// SetTarget stores the target configuration for a project, replacing any
// previous one. A config with no targets is still recorded.
func (s *Store) SetTarget(key hours.ProjectKey, title string, cfg hours.TargetConfig) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT INTO project_targets (project_key, title, daily, weekly, monthly, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(project_key) DO UPDATE SET
			title = excluded.title,
			daily = excluded.daily,
			weekly = excluded.weekly,
			monthly = excluded.monthly,
			updated_at = excluded.updated_at`,
		string(key), title, nullInt(cfg.Daily), nullInt(cfg.Weekly), nullInt(cfg.Monthly), now,
	)
	if err != nil {
		return fmt.Errorf("set target %s: %w", title, err)
	}
	return nil
}

func (s *Store) GetTarget(key hours.ProjectKey) (*ProjectTarget, error) {
	row := s.db.QueryRow(
		`SELECT project_key, title, daily, weekly, monthly, updated_at
		 FROM project_targets WHERE project_key = ?`, string(key),
	)
	t, err := scanTarget(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get target %s: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get target %s: %w", key, err)
	}
	return t, nil
}

// ListTargets returns every stored target ordered by title.
func (s *Store) ListTargets() ([]ProjectTarget, error) {
	rows, err := s.db.Query(
		`SELECT project_key, title, daily, weekly, monthly, updated_at
		 FROM project_targets ORDER BY title`,
	)
	if err != nil {
		return nil, fmt.Errorf("list targets: %w", err)
	}
	defer rows.Close()

	var targets []ProjectTarget
	for rows.Next() {
		t, err := scanTarget(rows)
		if err != nil {
			return nil, err
		}
		targets = append(targets, *t)
	}
	return targets, rows.Err()
}

// Targets loads all stored targets as a lookup for report assembly.
func (s *Store) Targets() (hours.Targets, error) {
	list, err := s.ListTargets()
	if err != nil {
		return nil, err
	}
	targets := make(hours.Targets, len(list))
	for _, t := range list {
		targets[t.Key] = t.Config
	}
	return targets, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTarget(r scanner) (*ProjectTarget, error) {
	t := &ProjectTarget{}
	var key, updatedAt string
	var daily, weekly, monthly sql.NullInt64
	if err := r.Scan(&key, &t.Title, &daily, &weekly, &monthly, &updatedAt); err != nil {
		return nil, err
	}
	t.Key = hours.ProjectKey(key)
	t.Config = hours.TargetConfig{
		Daily:   intPtr(daily),
		Weekly:  intPtr(weekly),
		Monthly: intPtr(monthly),
	}
	t.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return t, nil
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
