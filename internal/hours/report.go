package hours

import (
	"fmt"
	"time"
)

// TotalTitle labels the row summing every project.
const TotalTitle = "Total"

// Row is one render-ready line of the report.
type Row struct {
	Title string
	Key   ProjectKey // empty for the total row

	Day          time.Duration
	DayStatus    Status
	Week         time.Duration
	WeekAverage  time.Duration
	WeekStatus   Status
	Month        time.Duration
	MonthAverage time.Duration
	MonthStatus  Status

	Targets TargetConfig
}

// IsTotal reports whether r is the synthetic total row.
func (r Row) IsTotal() bool {
	return r.Key == ""
}

func (r Row) DayCell() string {
	return FormatDuration(r.Day)
}

func (r Row) WeekCell() string {
	return FormatTotals(r.Week, r.WeekAverage)
}

func (r Row) MonthCell() string {
	return FormatTotals(r.Month, r.MonthAverage)
}

func (r Row) TargetCell() string {
	return r.Targets.String()
}

// Pending names a project that has no target configuration yet.
type Pending struct {
	Key   ProjectKey
	Title string
}

// Report is the full result of one aggregation pass.
type Report struct {
	Today   Date
	Day     Window
	Week    Window
	Month   Window
	Rows    []Row // projects by title, total last
	Pending []Pending

	Untimed int
}

// Total returns the last row.
func (r Report) Total() Row {
	if len(r.Rows) == 0 {
		return Row{Title: TotalTitle}
	}
	return r.Rows[len(r.Rows)-1]
}

// Assemble groups intervals by project and computes every row for the given
// reference date. It never fails and keeps no state between calls.
func Assemble(intervals []Interval, targets TargetLookup, today Date) Report {
	r := Report{
		Today:   today,
		Day:     DayWindow(today),
		Week:    WeekWindow(today),
		Month:   MonthWindow(today),
		Untimed: Untracked(Intervals(intervals)),
	}

	for _, p := range GroupByProject(intervals) {
		cfg, ok := targets.Target(p.Key)
		if !ok {
			r.Pending = append(r.Pending, Pending{Key: p.Key, Title: p.Title})
		}
		row := r.row(p, cfg)
		row.Title = p.DisplayTitle()
		row.Key = p.Key
		r.Rows = append(r.Rows, row)
	}

	total := r.row(Intervals(intervals), TargetConfig{})
	total.Title = TotalTitle
	r.Rows = append(r.Rows, total)
	return r
}

func (r Report) row(e Entries, cfg TargetConfig) Row {
	row := Row{
		Day:          TotalIn(e, r.Day),
		Week:         TotalIn(e, r.Week),
		WeekAverage:  DailyAverage(e, r.Week),
		Month:        TotalIn(e, r.Month),
		MonthAverage: DailyAverage(e, r.Month),
		Targets:      cfg,
	}
	row.DayStatus = Classify(cfg.Daily, row.Day)
	row.WeekStatus = Classify(cfg.Weekly, row.Week)
	row.MonthStatus = Classify(cfg.Monthly, row.Month)
	return row
}

// FormatDuration renders "<h>h <m>m", or "" when there is not a whole minute
// to show.
func FormatDuration(d time.Duration) string {
	minutes := int64(d / time.Minute)
	if minutes <= 0 {
		return ""
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// FormatTotals renders "total / average", or "" for an empty window.
func FormatTotals(total, average time.Duration) string {
	t := FormatDuration(total)
	if t == "" {
		return ""
	}
	return t + " / " + FormatDuration(average)
}
