package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()
	m.IntervalsFetched.WithLabelValues("toggl").Add(3)
	m.IntervalsUntimed.Inc()
	m.ProjectsUnconfigured.Set(2)

	require.Equal(t, 3.0, testutil.ToFloat64(m.IntervalsFetched.WithLabelValues("toggl")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.IntervalsUntimed))
	require.Equal(t, 2.0, testutil.ToFloat64(m.ProjectsUnconfigured))
}

func TestWriteFile(t *testing.T) {
	m := New()
	m.RefreshFailures.Inc()
	path := filepath.Join(t.TempDir(), "textfile", "hours.prom")

	require.NoError(t, m.WriteFile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "hours_refresh_failures_total 1")
}

func TestWriteFileDisabled(t *testing.T) {
	require.NoError(t, New().WriteFile(""))
}
