package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/sadopc/hours/internal/hours"
)

var reportHeaders = []string{
	"Project",
	"Today",
	"Current week / Daily AVG",
	"Current month / Daily AVG",
	"Target (day / week / month)",
}

// Column indexes carrying a status.
const (
	colDay   = 1
	colWeek  = 2
	colMonth = 3
)

// RenderReport draws the report as a bordered table. Day, week and month
// cells are colored by their status and the total row is bold.
func RenderReport(r hours.Report) string {
	rows := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, []string{
			row.Title,
			row.DayCell(),
			row.WeekCell(),
			row.MonthCell(),
			row.TargetCell(),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorSubtle)).
		Headers(reportHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			if row < 0 || row >= len(r.Rows) {
				return tableCellStyle
			}
			return cellStyle(r.Rows[row], col)
		})

	return t.String()
}

func cellStyle(row hours.Row, col int) lipgloss.Style {
	style := tableCellStyle
	if row.IsTotal() {
		return style.Bold(true)
	}
	switch col {
	case colDay:
		return style.Inherit(statusStyle(row.DayStatus))
	case colWeek:
		return style.Inherit(statusStyle(row.WeekStatus))
	case colMonth:
		return style.Inherit(statusStyle(row.MonthStatus))
	}
	return style
}

func statusStyle(s hours.Status) lipgloss.Style {
	switch s {
	case hours.StatusUnder:
		return errorStyle
	case hours.StatusApproaching:
		return warningStyle
	case hours.StatusMet:
		return successStyle
	default:
		return lipgloss.NewStyle()
	}
}

// RenderSummary is the one-line footer printed under the report.
func RenderSummary(r hours.Report) string {
	s := fmt.Sprintf("%s  ·  week %s  ·  month %s", r.Today, r.Week, r.Month)
	if r.Untimed > 0 {
		s += fmt.Sprintf("  ·  %d entries without a time range", r.Untimed)
	}
	return mutedStyle.Render(s)
}
