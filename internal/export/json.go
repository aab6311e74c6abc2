package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/hours/internal/hours"
)

type jsonExport struct {
	ExportedAt string         `json:"exported_at"`
	Today      string         `json:"today"`
	Report     []jsonRow      `json:"report"`
	Count      int            `json:"count"`
	Entries    []jsonInterval `json:"entries"`
}

type jsonRow struct {
	Title        string `json:"title"`
	Key          string `json:"key,omitempty"`
	Day          string `json:"day"`
	DayStatus    string `json:"day_status"`
	Week         string `json:"week"`
	WeekStatus   string `json:"week_status"`
	Month        string `json:"month"`
	MonthStatus  string `json:"month_status"`
	Targets      string `json:"targets,omitempty"`
	DayMinutes   int64  `json:"day_minutes"`
	WeekMinutes  int64  `json:"week_minutes"`
	MonthMinutes int64  `json:"month_minutes"`
}

type jsonInterval struct {
	Project       string `json:"project"`
	Client        string `json:"client,omitempty"`
	Description   string `json:"description,omitempty"`
	StartTime     string `json:"start_time,omitempty"`
	EndTime       string `json:"end_time,omitempty"`
	DurationSec   int64  `json:"duration_seconds"`
	Duration      string `json:"duration"`
	BillableCents int64  `json:"billable_cents"`
}

// ToJSON writes the report rows followed by the raw intervals.
func ToJSON(report hours.Report, intervals []hours.Interval, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Today:      report.Today.String(),
		Count:      len(intervals),
	}

	for _, r := range report.Rows {
		export.Report = append(export.Report, jsonRow{
			Title:        r.Title,
			Key:          string(r.Key),
			Day:          r.DayCell(),
			DayStatus:    r.DayStatus.String(),
			Week:         r.WeekCell(),
			WeekStatus:   r.WeekStatus.String(),
			Month:        r.MonthCell(),
			MonthStatus:  r.MonthStatus.String(),
			Targets:      r.TargetCell(),
			DayMinutes:   int64(r.Day / time.Minute),
			WeekMinutes:  int64(r.Week / time.Minute),
			MonthMinutes: int64(r.Month / time.Minute),
		})
	}

	for _, i := range intervals {
		e := jsonInterval{
			Project:       i.Project,
			Client:        i.Client,
			Description:   i.Description,
			DurationSec:   int64(i.Duration() / time.Second),
			BillableCents: i.BillableCents,
		}
		if start, end, ok := i.Span.Bounds(); ok {
			e.StartTime = start.Format(time.RFC3339)
			e.EndTime = end.Format(time.RFC3339)
		}
		e.Duration = formatDuration(e.DurationSec)
		export.Entries = append(export.Entries, e)
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
