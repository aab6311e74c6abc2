package store

import (
	"time"

	"github.com/sadopc/hours/internal/hours"
)

// Integration is a configured time-tracking provider account.
type Integration struct {
	ID         int64
	Provider   string
	APIKey     string
	UserID     int64
	Fullname   string
	Email      string
	Workspaces []Workspace
	CreatedAt  time.Time
}

// WorkspaceNames lists the workspace names in stored order.
func (i Integration) WorkspaceNames() []string {
	names := make([]string, 0, len(i.Workspaces))
	for _, w := range i.Workspaces {
		names = append(names, w.Name)
	}
	return names
}

type Workspace struct {
	ID   int64
	Name string
}

// ProjectTarget is a stored target configuration with the title it was
// created for.
type ProjectTarget struct {
	Key       hours.ProjectKey
	Title     string
	Config    hours.TargetConfig
	UpdatedAt time.Time
}
