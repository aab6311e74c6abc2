package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sadopc/hours/internal/hours"
)

// ToCSV writes one row per interval. Untimed intervals have empty Start and
// End columns.
func ToCSV(intervals []hours.Interval, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"Project", "Client", "Description", "Start", "End", "Duration (s)", "Duration", "Billable"}); err != nil {
		return err
	}

	for _, i := range intervals {
		startStr, endStr := "", ""
		if start, end, ok := i.Span.Bounds(); ok {
			startStr = start.Format(time.RFC3339)
			endStr = end.Format(time.RFC3339)
		}
		secs := int64(i.Duration() / time.Second)

		row := []string{
			i.Project,
			i.Client,
			i.Description,
			startStr,
			endStr,
			strconv.FormatInt(secs, 10),
			formatDuration(secs),
			formatCents(i.BillableCents),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func formatDuration(secs int64) string {
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func formatCents(c int64) string {
	return fmt.Sprintf("%d.%02d", c/100, c%100)
}
