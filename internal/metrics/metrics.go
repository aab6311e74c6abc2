// Package metrics records refresh and report counters for the Prometheus
// node_exporter textfile collector.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors of one process run.
type Metrics struct {
	registry *prometheus.Registry

	IntervalsFetched     *prometheus.CounterVec
	IntervalsUntimed     prometheus.Counter
	RefreshFailures      prometheus.Counter
	RefreshDuration      prometheus.Histogram
	ProjectsUnconfigured prometheus.Gauge
	ReportRows           prometheus.Gauge
}

// New creates the collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		IntervalsFetched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hours_intervals_fetched_total",
			Help: "Intervals fetched from integrations.",
		}, []string{"provider"}),
		IntervalsUntimed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hours_intervals_untimed_total",
			Help: "Intervals missing a start or end, excluded from totals.",
		}),
		RefreshFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hours_refresh_failures_total",
			Help: "Failed refreshes.",
		}),
		RefreshDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "hours_refresh_duration_seconds",
			Help:    "Time spent fetching intervals from integrations.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		ProjectsUnconfigured: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hours_projects_unconfigured",
			Help: "Projects without a target configuration in the last report.",
		}),
		ReportRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hours_report_projects",
			Help: "Projects in the last report.",
		}),
	}
	m.registry.MustRegister(
		m.IntervalsFetched,
		m.IntervalsUntimed,
		m.RefreshFailures,
		m.RefreshDuration,
		m.ProjectsUnconfigured,
		m.ReportRows,
	)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteFile writes the textfile to path. An empty path is a no-op.
func (m *Metrics) WriteFile(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create metrics directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
