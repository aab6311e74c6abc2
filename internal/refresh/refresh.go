// Package refresh keeps the local interval cache in step with the
// configured integrations.
package refresh

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sadopc/hours/internal/hours"
	"github.com/sadopc/hours/internal/log"
	"github.com/sadopc/hours/internal/metrics"
	"github.com/sadopc/hours/internal/store"
)

// ErrNoIntegrations is returned when there is nothing to fetch from.
var ErrNoIntegrations = errors.New("no integrations set up")

// Fetcher fetches the intervals of one integration for a window.
type Fetcher interface {
	Fetch(ctx context.Context, in store.Integration, w hours.Window) ([]hours.Interval, error)
}

// Cache is the part of the store the refresher writes to.
type Cache interface {
	ListIntegrations() ([]store.Integration, error)
	ReplaceEntries(entries []hours.Interval) error
	MarkRefreshed(t time.Time) error
}

// Required reports whether the cache is older than threshold minutes. A zero
// threshold or a cache that was never filled always needs a refresh.
func Required(now, refreshedAt time.Time, threshold int) bool {
	if threshold <= 0 || refreshedAt.IsZero() {
		return true
	}
	return now.Sub(refreshedAt) >= time.Duration(threshold)*time.Minute
}

type Refresher struct {
	cache   Cache
	fetcher Fetcher
	logger  *log.Logger
	metrics *metrics.Metrics
}

func New(cache Cache, fetcher Fetcher, logger *log.Logger, m *metrics.Metrics) *Refresher {
	if logger == nil {
		logger = log.Discard()
	}
	if m == nil {
		m = metrics.New()
	}
	return &Refresher{
		cache:   cache,
		fetcher: fetcher,
		logger:  logger.WithComponent("refresh"),
		metrics: m,
	}
}

// Run fetches the month containing now from every integration and replaces
// the cache. The cache is left untouched when any integration fails.
func (r *Refresher) Run(ctx context.Context, now time.Time) (int, error) {
	started := time.Now()
	n, err := r.run(ctx, now)
	r.metrics.RefreshDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		r.metrics.RefreshFailures.Inc()
		r.logger.Error("refresh failed", "error", err)
		return 0, err
	}
	return n, nil
}

func (r *Refresher) run(ctx context.Context, now time.Time) (int, error) {
	integrations, err := r.cache.ListIntegrations()
	if err != nil {
		return 0, err
	}
	if len(integrations) == 0 {
		return 0, ErrNoIntegrations
	}

	month := hours.MonthWindow(hours.DateOf(now))
	var all []hours.Interval
	for _, in := range integrations {
		intervals, err := r.fetcher.Fetch(ctx, in, month)
		if err != nil {
			return 0, fmt.Errorf("fetch %s integration %d: %w", in.Provider, in.ID, err)
		}
		untimed := hours.Untracked(hours.Intervals(intervals))
		r.metrics.IntervalsFetched.WithLabelValues(in.Provider).Add(float64(len(intervals)))
		r.metrics.IntervalsUntimed.Add(float64(untimed))
		r.logger.Info("fetched intervals", "provider", in.Provider, "integration", in.ID, "window", month.String(), "count", len(intervals), "untimed", untimed)
		all = append(all, intervals...)
	}

	if err := r.cache.ReplaceEntries(all); err != nil {
		return 0, err
	}
	if err := r.cache.MarkRefreshed(now); err != nil {
		return 0, err
	}
	return len(all), nil
}
