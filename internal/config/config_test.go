package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HOURS_DB_PATH", "HOURS_LOG_LEVEL", "HOURS_LOG_FILE", "HOURS_METRICS_FILE", "HOURS_REFRESH_THRESHOLD", "TOGGL_API_TOKEN"} {
		t.Setenv(k, "")
	}
	// Keep godotenv away from any .env in the package directory.
	t.Chdir(t.TempDir())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultRefreshThreshold, cfg.RefreshThreshold)
	require.Equal(t, DefaultLogLevel, cfg.LogLevel)
	require.Equal(t, DefaultTogglAPIURL, cfg.TogglAPIURL)
	require.NotEmpty(t, cfg.DBPath)
}

func TestLoadFileKeepsDefaultsForMissingKeys(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /tmp/x.db\nrefresh_threshold_minutes: 0\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/x.db", cfg.DBPath)
	require.Equal(t, 0, cfg.RefreshThreshold)
	require.Equal(t, DefaultLogLevel, cfg.LogLevel)
	require.Equal(t, DefaultTogglReportsURL, cfg.TogglReportsURL)
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOURS_DB_PATH", "/tmp/env.db")
	t.Setenv("HOURS_LOG_LEVEL", "debug")
	t.Setenv("HOURS_REFRESH_THRESHOLD", "15")
	t.Setenv("TOGGL_API_TOKEN", "tok")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, "/tmp/env.db", cfg.DBPath)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 15, cfg.RefreshThreshold)
	require.Equal(t, "tok", cfg.TogglToken)
}

func TestDotEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("HOURS_LOG_LEVEL")
	require.NoError(t, os.WriteFile(".env", []byte("HOURS_LOG_LEVEL=info\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("HOURS_LOG_LEVEL") })

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.LogLevel = "loud"
	cfg.RefreshThreshold = -1
	cfg.DBPath = " "
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	require.Contains(t, err.Error(), "log_level")
	require.Contains(t, err.Error(), "refresh_threshold_minutes")
	require.Contains(t, err.Error(), "db_path")
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := Default()
	cfg.RefreshThreshold = 30
	cfg.TogglToken = "never-written"
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "never-written")

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 30, loaded.RefreshThreshold)
}

func TestLoadWritesDefaultsOnFirstRun(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOURS_DB_PATH", "/tmp/env-only.db")
	path := filepath.Join(t.TempDir(), "hours", "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/env-only.db", cfg.DBPath)
	require.True(t, FileExists(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "refresh_threshold_minutes: 180")
	require.NotContains(t, string(data), "env-only", "environment overrides must not be persisted")
}

func TestLoadKeepsExistingFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("refresh_threshold_minutes: 5\n"), 0o600))

	_, err := Load(path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "refresh_threshold_minutes: 5\n", string(data))
}

func TestInvalidEnvThreshold(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOURS_REFRESH_THRESHOLD", "abc")

	_, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.ErrorIs(t, err, ErrInvalid)
	require.Contains(t, err.Error(), "HOURS_REFRESH_THRESHOLD")
}
