package toggl

import (
	"context"
	"math"
	"time"

	"github.com/sadopc/hours/internal/hours"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentWorkspaces bounds parallel report requests.
const maxConcurrentWorkspaces = 4

// FetchWindow fetches every workspace of the user concurrently and converts
// the rows to intervals. Results keep workspace order.
func (c *Client) FetchWindow(ctx context.Context, userID int64, workspaceIDs []int64, w hours.Window) ([]hours.Interval, error) {
	results := make([][]TimeEntry, len(workspaceIDs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentWorkspaces)
	for i, id := range workspaceIDs {
		g.Go(func() error {
			entries, err := c.TimeEntries(ctx, id, userID, w.From.In(time.Local), w.To.In(time.Local))
			if err != nil {
				return err
			}
			results[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var intervals []hours.Interval
	for _, entries := range results {
		for _, e := range entries {
			intervals = append(intervals, e.Interval())
		}
	}
	return intervals, nil
}

// Interval converts a report row. Missing text fields become empty strings
// and times are moved to the local zone.
func (e TimeEntry) Interval() hours.Interval {
	var start, end *time.Time
	if e.Start != nil {
		t := e.Start.Local()
		start = &t
	}
	if e.End != nil {
		t := e.End.Local()
		end = &t
	}
	var cents int64
	if e.Billable != nil {
		cents = int64(math.Round(*e.Billable * 100))
	}
	return hours.Interval{
		Description:   deref(e.Description),
		Client:        deref(e.Client),
		Project:       deref(e.Project),
		Span:          hours.SpanOf(start, end),
		BillableCents: cents,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
