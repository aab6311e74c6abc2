package log

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelInfo, Component: "refresh", Output: &buf})
	l.Info("fetched", "count", 3)

	out := buf.String()
	require.Contains(t, out, "component=refresh")
	require.Contains(t, out, "count=3")
	require.Equal(t, "refresh", l.Component())
}

func TestLoggerLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelWarn, Component: "x", Output: &buf})
	l.Info("hidden")
	require.Empty(t, buf.String())
	l.Warn("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelInfo, Component: "root", Output: &buf}).WithComponent("toggl")
	require.Equal(t, "toggl", l.Component())
	l.Info("hi")
	require.Contains(t, buf.String(), "component=toggl")
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err)
		require.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hours.log")
	l, closeFn, err := Open("info", path)
	require.NoError(t, err)
	l.Info("written")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "written")
}
