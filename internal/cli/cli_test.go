package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sadopc/hours/internal/config"
	"github.com/sadopc/hours/internal/hours"
	"github.com/sadopc/hours/internal/toggl"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2022, time.January, 12, 12, 0, 0, 0, time.UTC).Local()

type env struct {
	dir        string
	configPath string
	cfg        *config.Config
}

// newEnv writes a config pointing every path into a temp dir and pins the
// clock.
func newEnv(t *testing.T) *env {
	t.Helper()
	for _, k := range []string{"HOURS_DB_PATH", "HOURS_LOG_LEVEL", "HOURS_LOG_FILE", "HOURS_METRICS_FILE", "HOURS_REFRESH_THRESHOLD", "TOGGL_API_TOKEN"} {
		t.Setenv(k, "")
	}

	dir := t.TempDir()
	cfg := config.Default()
	cfg.DBPath = filepath.Join(dir, "hours.db")
	cfg.LogLevel = "error"
	cfg.MetricsFile = filepath.Join(dir, "hours.prom")

	e := &env{dir: dir, configPath: filepath.Join(dir, "config.yaml"), cfg: cfg}
	e.save(t)

	oldNow, oldPrompt := now, promptTargets
	now = func() time.Time { return testNow }
	promptTargets = func([]hours.Pending) (map[hours.ProjectKey]hours.TargetConfig, error) {
		t.Fatal("unexpected target prompt")
		return nil, nil
	}
	t.Cleanup(func() { now, promptTargets = oldNow, oldPrompt })
	return e
}

func (e *env) save(t *testing.T) {
	t.Helper()
	require.NoError(t, config.Save(e.configPath, e.cfg))
}

func (e *env) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", e.configPath}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

// fakeToggl serves a single user with two workspaces and one entry in each.
func fakeToggl(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/me", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(toggl.User{ID: 7, Fullname: "John Doe", Email: "john.doe@example.com"})
	})
	mux.HandleFunc("/api/workspaces", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]toggl.Workspace{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}})
	})
	mux.HandleFunc("/reports/details", func(w http.ResponseWriter, r *http.Request) {
		var data []toggl.TimeEntry
		if r.URL.Query().Get("page") == "1" {
			start := time.Date(2022, time.January, 12, 10, 0, 0, 0, time.UTC)
			data = []toggl.TimeEntry{{
				ID:      1,
				Client:  strPtr("Acme"),
				Project: strPtr("Beta"),
				Start:   timePtr(start),
				End:     timePtr(start.Add(90 * time.Minute)),
			}}
			if r.URL.Query().Get("workspace_id") == "2" {
				data[0].Client = nil
				data[0].Project = strPtr("Alpha")
			}
		}
		json.NewEncoder(w).Encode(map[string]any{"total_count": len(data), "per_page": 50, "data": data})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func (e *env) setupToggl(t *testing.T) {
	t.Helper()
	srv := fakeToggl(t)
	e.cfg.TogglAPIURL = srv.URL + "/api"
	e.cfg.TogglReportsURL = srv.URL + "/reports"
	e.save(t)
	t.Setenv("TOGGL_API_TOKEN", "key")

	out, _, err := e.run(t, "integrations", "setup", "toggl")
	require.NoError(t, err)
	require.Contains(t, out, "New Toggl configuration saved!")
	require.Contains(t, out, "workspaces: a, b")
}

func TestIntegrationsListEmpty(t *testing.T) {
	e := newEnv(t)
	out, _, err := e.run(t, "integrations", "list")
	require.NoError(t, err)
	require.Equal(t, "No integrations set up yet.\n", out)
}

func TestIntegrationsSetupAndList(t *testing.T) {
	e := newEnv(t)
	e.setupToggl(t)

	out, _, err := e.run(t, "integrations", "list")
	require.NoError(t, err)
	require.Equal(t, "Enabled integrations:\n\nToggl, workspaces: a, b\n", out)
}

func TestIntegrationsSetupUnauthorized(t *testing.T) {
	e := newEnv(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)
	e.cfg.TogglAPIURL = srv.URL
	e.save(t)
	t.Setenv("TOGGL_API_TOKEN", "wrong")

	_, _, err := e.run(t, "integrations", "setup", "toggl")
	require.ErrorContains(t, err, "rejected")
}

func TestRefreshWithoutIntegrations(t *testing.T) {
	e := newEnv(t)
	_, _, err := e.run(t, "refresh")
	require.ErrorContains(t, err, "no integrations")
}

func TestReportWithoutIntegrations(t *testing.T) {
	e := newEnv(t)
	out, errOut, err := e.run(t, "--no-prompt")
	require.NoError(t, err)
	require.Contains(t, errOut, noIntegrationsHint)
	require.Contains(t, out, "Total")
}

func TestReportRefreshesAndRenders(t *testing.T) {
	e := newEnv(t)
	e.setupToggl(t)

	out, _, err := e.run(t, "--no-prompt")
	require.NoError(t, err)
	require.Contains(t, out, "Updated monthly hours from integrations (2 entries)")
	require.Contains(t, out, "Acme / Beta")
	require.Contains(t, out, "Alpha")
	require.Contains(t, out, "3h 0m")

	metrics, err := os.ReadFile(e.cfg.MetricsFile)
	require.NoError(t, err)
	require.Contains(t, string(metrics), "hours_report_projects 2")

	// The cache is fresh now, so a second run does not fetch again.
	out, _, err = e.run(t, "--no-prompt")
	require.NoError(t, err)
	require.NotContains(t, out, "Updated monthly hours")
}

func TestReportPromptsForMissingTargets(t *testing.T) {
	e := newEnv(t)
	e.setupToggl(t)

	var asked []string
	promptTargets = func(pending []hours.Pending) (map[hours.ProjectKey]hours.TargetConfig, error) {
		out := map[hours.ProjectKey]hours.TargetConfig{}
		for _, p := range pending {
			asked = append(asked, p.Title)
			out[p.Key] = hours.TargetConfig{Daily: hours.Hours(2)}
		}
		return out, nil
	}

	out, _, err := e.run(t)
	require.NoError(t, err)
	require.Equal(t, []string{"Alpha", "Beta"}, asked)
	require.Contains(t, out, "2h / - / -")

	// Answered projects are not asked again.
	asked = nil
	_, _, err = e.run(t)
	require.NoError(t, err)
	require.Empty(t, asked)
}

func TestTargetsSetAndList(t *testing.T) {
	e := newEnv(t)

	out, _, err := e.run(t, "targets", "list")
	require.NoError(t, err)
	require.Contains(t, out, "No project targets yet")

	out, _, err = e.run(t, "targets", "set", "Beta", "--daily", "4", "--monthly", "100")
	require.NoError(t, err)
	require.Contains(t, out, "4h / - / 100h")

	// Unset flags keep their value, an empty value clears.
	out, _, err = e.run(t, "targets", "set", "Beta", "--weekly", "20", "--monthly", "")
	require.NoError(t, err)
	require.Contains(t, out, "4h / 20h / -")

	out, _, err = e.run(t, "targets", "list")
	require.NoError(t, err)
	require.Contains(t, out, "Beta")
	require.Contains(t, out, "4h / 20h / -")
}

func TestTargetsSetRejectsOutOfRange(t *testing.T) {
	e := newEnv(t)
	_, _, err := e.run(t, "targets", "set", "Beta", "--daily", "300")
	require.ErrorContains(t, err, "--daily")
}

func TestExport(t *testing.T) {
	e := newEnv(t)
	e.setupToggl(t)
	_, _, err := e.run(t, "refresh")
	require.NoError(t, err)

	path := filepath.Join(e.dir, "out.json")
	out, _, err := e.run(t, "export", "--format", "json", "--out", path)
	require.NoError(t, err)
	require.Contains(t, out, "Exported 2 entries")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, json.Valid(data))

	path = filepath.Join(e.dir, "out.csv")
	_, _, err = e.run(t, "export", "-f", "csv", "-o", path)
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, 3, strings.Count(string(data), "\n"))
}

func TestExportUnknownFormat(t *testing.T) {
	e := newEnv(t)
	_, _, err := e.run(t, "export", "--format", "xml")
	require.ErrorContains(t, err, "unknown format")
}

func TestInfo(t *testing.T) {
	e := newEnv(t)
	out, _, err := e.run(t, "info")
	require.NoError(t, err)
	require.Contains(t, out, e.configPath)
	require.Contains(t, out, e.cfg.DBPath)
	require.Contains(t, out, "never")
}
