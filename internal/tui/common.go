package tui

import (
	"strconv"
	"strings"

	"github.com/sadopc/hours/internal/hours"
)

// viewState represents the currently active view.
type viewState int

const (
	viewReport viewState = iota
	viewChart
	viewTargets
)

var viewNames = []string{"Report", "Chart", "Targets"}

// --- Messages ---

type reportDataMsg struct {
	intervals []hours.Interval
	report    hours.Report
}

type refreshDoneMsg struct {
	count int
}

type targetSavedMsg struct {
	title string
}

type statusMsg struct {
	text    string
	isError bool
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

// projectColor picks a stable palette color for a project.
func projectColor(key hours.ProjectKey) string {
	if len(key) < 2 {
		return projectColors[0]
	}
	n, err := strconv.ParseUint(string(key[:2]), 16, 8)
	if err != nil {
		return projectColors[0]
	}
	return projectColors[int(n)%len(projectColors)]
}

// truncate shortens s to w runes with an ellipsis.
func truncate(s string, w int) string {
	r := []rune(s)
	if w <= 1 || len(r) <= w {
		return s
	}
	return string(r[:w-1]) + "…"
}

func padRight(s string, w int) string {
	n := len([]rune(s))
	if n >= w {
		return s
	}
	return s + strings.Repeat(" ", w-n)
}
