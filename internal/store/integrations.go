package store

import (
	"fmt"
	"time"
)

// AddIntegration stores a provider account together with its workspaces.
func (s *Store) AddIntegration(in Integration) (*Integration, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin add integration: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := tx.Exec(
		`INSERT INTO integrations (provider, api_key, user_id, fullname, email, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		in.Provider, in.APIKey, in.UserID, in.Fullname, in.Email, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert integration: %w", err)
	}
	id, _ := res.LastInsertId()

	for _, w := range in.Workspaces {
		if _, err := tx.Exec(
			`INSERT INTO workspaces (integration_id, workspace_id, name) VALUES (?, ?, ?)`,
			id, w.ID, w.Name,
		); err != nil {
			return nil, fmt.Errorf("insert workspace %d: %w", w.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit add integration: %w", err)
	}

	in.ID = id
	in.CreatedAt, _ = time.Parse(time.RFC3339, now)
	return &in, nil
}

// ListIntegrations returns all integrations with their workspaces, oldest
// first.
func (s *Store) ListIntegrations() ([]Integration, error) {
	rows, err := s.db.Query(
		`SELECT id, provider, api_key, user_id, fullname, email, created_at FROM integrations ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list integrations: %w", err)
	}

	var integrations []Integration
	for rows.Next() {
		var in Integration
		var createdAt string
		if err := rows.Scan(&in.ID, &in.Provider, &in.APIKey, &in.UserID, &in.Fullname, &in.Email, &createdAt); err != nil {
			rows.Close()
			return nil, err
		}
		in.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		integrations = append(integrations, in)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	// Single connection: workspaces are read after the outer cursor is closed.
	for i := range integrations {
		ws, err := s.listWorkspaces(integrations[i].ID)
		if err != nil {
			return nil, err
		}
		integrations[i].Workspaces = ws
	}
	return integrations, nil
}

func (s *Store) listWorkspaces(integrationID int64) ([]Workspace, error) {
	rows, err := s.db.Query(
		`SELECT workspace_id, name FROM workspaces WHERE integration_id = ? ORDER BY workspace_id`,
		integrationID,
	)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	defer rows.Close()

	var ws []Workspace
	for rows.Next() {
		var w Workspace
		if err := rows.Scan(&w.ID, &w.Name); err != nil {
			return nil, err
		}
		ws = append(ws, w)
	}
	return ws, rows.Err()
}

func (s *Store) DeleteIntegration(id int64) error {
	_, err := s.db.Exec(`DELETE FROM integrations WHERE id = ?`, id)
	return err
}
