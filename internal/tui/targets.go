package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/hours/internal/hours"
	"github.com/sadopc/hours/internal/store"
)

// targetsModel lists projects with their targets and edits them in a form.
type targetsModel struct {
	store  *store.Store
	width  int
	height int

	rows    []hours.Row
	pending map[hours.ProjectKey]bool
	cursor  int

	formActive bool
	form       *huh.Form
	editing    hours.Row
	fields     targetFields
}

func newTargetsModel(s *store.Store) targetsModel {
	return targetsModel{store: s}
}

func (m *targetsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m targetsModel) withReport(rep hours.Report) targetsModel {
	m.rows = nil
	for _, r := range rep.Rows {
		if !r.IsTotal() {
			m.rows = append(m.rows, r)
		}
	}
	m.pending = make(map[hours.ProjectKey]bool, len(rep.Pending))
	for _, p := range rep.Pending {
		m.pending[p.Key] = true
	}
	if m.cursor >= len(m.rows) {
		m.cursor = max(len(m.rows)-1, 0)
	}
	return m
}

func (m targetsModel) update(msg tea.Msg) (targetsModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.Edit):
			return m.showForm()
		}
	}
	return m, nil
}

func (m targetsModel) showForm() (targetsModel, tea.Cmd) {
	if len(m.rows) == 0 {
		return m, nil
	}
	m.editing = m.rows[m.cursor]
	m.fields = newTargetFields(m.editing.Targets)
	m.form = huh.NewForm(m.fields.group(m.editing.Title)).
		WithShowHelp(true).
		WithShowErrors(true)
	m.formActive = true
	return m, m.form.Init()
}

func (m targetsModel) updateForm(msg tea.Msg) (targetsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, keys.Back) {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.formActive = false
		m.form = nil
		return m, m.save(m.editing, m.fields)
	case huh.StateAborted:
		m.formActive = false
		m.form = nil
		return m, nil
	}

	return m, cmd
}

func (m targetsModel) save(row hours.Row, fields targetFields) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		cfg, err := fields.config()
		if err != nil {
			return statusMsg{text: err.Error(), isError: true}
		}
		if err := s.SetTarget(row.Key, row.Title, cfg); err != nil {
			return statusMsg{text: fmt.Sprintf("Save error: %v", err), isError: true}
		}
		return targetSavedMsg{title: row.Title}
	}
}

func (m targetsModel) view() string {
	w := m.width - 4
	title := titleStyle.Render("Targets")

	if m.formActive && m.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View()),
		)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	if len(m.rows) == 0 {
		rows = append(rows, mutedStyle.Render("  No projects this month"))
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	}

	nameWidth := 32
	rows = append(rows, mutedStyle.Render("  "+padRight("Project", nameWidth)+" Target (day / week / month)"))
	for i, r := range m.rows {
		cursor := "  "
		style := normalItemStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		target := highlightStyle.Render(r.TargetCell())
		if m.pending[r.Key] {
			target = warningStyle.Render("not set")
		} else if !r.Targets.AnySet() {
			target = mutedStyle.Render("none")
		}
		name := style.Render(cursor + padRight(truncate(r.Title, nameWidth), nameWidth))
		rows = append(rows, name+" "+target)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: edit  ↑/↓: select"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
