package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/hours/internal/hours"
)

// chartModel shows one stacked bar per day of the current month.
type chartModel struct {
	width  int
	height int

	projects []hours.Project
	month    hours.Window

	chart barchart.Model
}

func newChartModel() chartModel {
	return chartModel{
		chart: barchart.New(60, 12),
	}
}

func (c *chartModel) setSize(w, h int) {
	c.width = w
	c.height = h
	c.buildChart()
}

func (c chartModel) withData(intervals []hours.Interval, rep hours.Report) chartModel {
	c.projects = hours.GroupByProject(intervals)
	c.month = rep.Month
	c.buildChart()
	return c
}

// dailyBars returns one bar per day of the month with a value per project.
func (c chartModel) dailyBars() []barchart.BarData {
	var bars []barchart.BarData
	for _, d := range c.month.Days() {
		day := hours.DayWindow(d)

		var values []barchart.BarValue
		for _, p := range c.projects {
			spent := hours.TotalIn(p, day)
			if spent <= 0 {
				continue
			}
			values = append(values, barchart.BarValue{
				Name:  p.Title,
				Value: spent.Hours(),
				Style: lipgloss.NewStyle().Foreground(lipgloss.Color(projectColor(p.Key))),
			})
		}

		if len(values) == 0 {
			values = []barchart.BarValue{{Name: "", Value: 0, Style: lipgloss.NewStyle().Foreground(colorSubtle)}}
		}

		bars = append(bars, barchart.BarData{
			Label:  fmt.Sprintf("%02d", d.Day),
			Values: values,
		})
	}
	return bars
}

func (c *chartModel) buildChart() {
	chartWidth := c.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if c.height > 30 {
		chartHeight = 16
	}

	c.chart = barchart.New(chartWidth, chartHeight)
	if c.month == (hours.Window{}) {
		return
	}

	bars := c.dailyBars()
	c.chart.PushAll(bars)
	c.chart.Draw()
}

func (c chartModel) view() string {
	w := c.width - 4

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Chart"), "  ", mutedStyle.Render(c.month.String()),
	)

	if len(c.projects) == 0 {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, header, "", mutedStyle.Render("  No data for this month")),
		)
	}

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", c.chart.View(), "", c.renderLegend(),
		),
	)
}

func (c chartModel) renderLegend() string {
	var items []string
	for _, p := range c.projects {
		if hours.TotalIn(p, c.month) <= 0 {
			continue
		}
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(projectColor(p.Key))).Render("●")
		items = append(items, fmt.Sprintf("%s %s", dot, p.Title))
	}
	if len(items) == 0 {
		return ""
	}
	return "  " + strings.Join(items, "  ")
}
