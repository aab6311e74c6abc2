package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/hours/internal/hours"
)

type reportModel struct {
	width  int
	height int

	data   hours.Report
	loaded bool
}

func newReportModel() reportModel {
	return reportModel{}
}

func (r *reportModel) setSize(w, h int) {
	r.width = w
	r.height = h
}

func (r reportModel) withReport(rep hours.Report) reportModel {
	r.data = rep
	r.loaded = true
	return r
}

func (r reportModel) view() string {
	w := r.width - 4
	if !r.loaded {
		return panelStyle.Width(w).Render(mutedStyle.Render("Loading report..."))
	}

	parts := []string{titleStyle.Render("Report"), ""}
	if len(r.data.Rows) <= 1 {
		parts = append(parts, mutedStyle.Render("  No entries this month. Press r to refresh."))
	} else {
		parts = append(parts, RenderReport(r.data))
	}
	parts = append(parts, "", RenderSummary(r.data))

	if n := len(r.data.Pending); n > 0 {
		parts = append(parts, warningStyle.Render(
			fmt.Sprintf("%d project(s) without targets. Open the Targets tab to set them.", n),
		))
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
