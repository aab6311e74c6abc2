package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sadopc/hours/internal/hours"
)

// ReplaceEntries swaps the cached interval set for entries in one
// transaction.
func (s *Store) ReplaceEntries(entries []hours.Interval) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin replace entries: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM time_entries`); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO time_entries (description, client, project, start_time, end_time, billable_cents)
		 VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("prepare insert entry: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		var startTime, endTime sql.NullString
		if start, end, ok := e.Span.Bounds(); ok {
			startTime = sql.NullString{String: start.Format(time.RFC3339), Valid: true}
			endTime = sql.NullString{String: end.Format(time.RFC3339), Valid: true}
		}
		if _, err := stmt.Exec(e.Description, e.Client, e.Project, startTime, endTime, e.BillableCents); err != nil {
			return fmt.Errorf("insert entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace entries: %w", err)
	}
	return nil
}

// ListEntries returns the cached intervals in insertion order, converted to
// the local zone.
func (s *Store) ListEntries() ([]hours.Interval, error) {
	rows, err := s.db.Query(
		`SELECT description, client, project, start_time, end_time, billable_cents
		 FROM time_entries ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []hours.Interval
	for rows.Next() {
		var e hours.Interval
		var startTime, endTime sql.NullString
		if err := rows.Scan(&e.Description, &e.Client, &e.Project, &startTime, &endTime, &e.BillableCents); err != nil {
			return nil, err
		}
		e.Span = hours.SpanOf(parseTime(startTime), parseTime(endTime))
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CountEntries returns the number of cached intervals.
func (s *Store) CountEntries() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM time_entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

func parseTime(v sql.NullString) *time.Time {
	if !v.Valid || v.String == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, v.String)
	if err != nil {
		return nil
	}
	t = t.Local()
	return &t
}
