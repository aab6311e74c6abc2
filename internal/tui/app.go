package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/hours/internal/export"
	"github.com/sadopc/hours/internal/hours"
	"github.com/sadopc/hours/internal/store"
)

// Options wires the dashboard to the rest of the program.
type Options struct {
	// Refresh re-fetches the cache. Nil disables the refresh key.
	Refresh func(ctx context.Context) (int, error)
	// Now defaults to time.Now.
	Now func() time.Time
	// ExportDir is where exports are written. Defaults to the working directory.
	ExportDir string
}

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	opts   Options
	width  int
	height int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int
	refreshing    bool

	intervals []hours.Interval
	report    reportModel
	chart     chartModel
	targets   targetsModel

	help    help.Model
	status  string
	isError bool
}

func NewApp(s *store.Store, opts Options) App {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ExportDir == "" {
		opts.ExportDir = "."
	}

	h := help.New()
	h.ShowAll = false

	return App{
		store:      s,
		opts:       opts,
		activeView: viewReport,
		report:     newReportModel(),
		chart:      newChartModel(),
		targets:    newTargetsModel(s),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return a.loadData()
}

// loadData rebuilds the report from the cache.
func (a App) loadData() tea.Cmd {
	s, now := a.store, a.opts.Now
	return func() tea.Msg {
		intervals, err := s.ListEntries()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Load error: %v", err), isError: true}
		}
		targets, err := s.Targets()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Load error: %v", err), isError: true}
		}
		return reportDataMsg{
			intervals: intervals,
			report:    hours.Assemble(intervals, targets, hours.DateOf(now())),
		}
	}
}

func (a App) runRefresh() tea.Cmd {
	refresh := a.opts.Refresh
	return func() tea.Msg {
		n, err := refresh(context.Background())
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Refresh error: %v", err), isError: true}
		}
		return refreshDoneMsg{count: n}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.report.setSize(a.width, contentHeight)
		a.chart.setSize(a.width, contentHeight)
		a.targets.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		// Export picker
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Refresh):
			if a.opts.Refresh == nil {
				a.setStatus("No integrations to refresh from", true)
				return a, nil
			}
			if a.refreshing {
				return a, nil
			}
			a.refreshing = true
			a.setStatus("Refreshing...", false)
			return a, a.runRefresh()
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewReport
			return a, nil
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewChart
			return a, nil
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewTargets
			return a, nil
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % viewState(len(viewNames))
			return a, nil
		}

	case reportDataMsg:
		a.intervals = msg.intervals
		a.report = a.report.withReport(msg.report)
		a.chart = a.chart.withData(msg.intervals, msg.report)
		a.targets = a.targets.withReport(msg.report)
		return a, nil

	case refreshDoneMsg:
		a.refreshing = false
		a.setStatus(fmt.Sprintf("Fetched %d entries", msg.count), false)
		return a, a.loadData()

	case targetSavedMsg:
		a.setStatus("Saved targets for "+msg.title, false)
		return a, a.loadData()

	case statusMsg:
		a.refreshing = false
		a.setStatus(msg.text, msg.isError)
		return a, nil

	case exportDoneMsg:
		a.setStatus("Exported to "+msg.path, false)
		a.exportPicking = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a *App) setStatus(text string, isError bool) {
	a.status = text
	a.isError = isError
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if a.activeView == viewTargets {
		a.targets, cmd = a.targets.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	return a.activeView == viewTargets && a.targets.formActive
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewReport:
		content = a.report.view()
	case viewChart:
		content = a.chart.view()
	case viewTargets:
		content = a.targets.view()
	}

	// Calculate available height for content
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	// Show export picker overlay
	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("hours")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		style := mutedStyle
		if a.isError {
			style = errorStyle
		}
		status = style.Render(" " + a.status)
	}

	left := footerStyle.Render(helpView)

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(status) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, status)
}

var exportFormats = []string{"CSV", "JSON"}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Format")
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range exportFormats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < len(exportFormats)-1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	intervals := a.intervals
	report := a.report.data
	dir := a.opts.ExportDir
	dateStr := a.opts.Now().Format("2006-01-02")
	return func() tea.Msg {
		var path string
		if format == 0 {
			path = filepath.Join(dir, fmt.Sprintf("hours-export-%s.csv", dateStr))
			if err := export.ToCSV(intervals, path); err != nil {
				return statusMsg{text: fmt.Sprintf("CSV error: %v", err), isError: true}
			}
		} else {
			path = filepath.Join(dir, fmt.Sprintf("hours-export-%s.json", dateStr))
			if err := export.ToJSON(report, intervals, path); err != nil {
				return statusMsg{text: fmt.Sprintf("JSON error: %v", err), isError: true}
			}
		}
		return exportDoneMsg{path: path}
	}
}
