package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/hours/internal/hours"
	"github.com/sadopc/hours/internal/refresh"
	"github.com/sadopc/hours/internal/tui"
)

// Replaced in tests.
var (
	now           = time.Now
	promptTargets = tui.PromptTargets
	promptToggl   = tui.PromptToggl
)

const noIntegrationsHint = "No integrations set up yet. Run 'hours integrations setup toggl' to add one."

type reportFlags struct {
	refresh  bool
	noPrompt bool
}

func runReport(cmd *cobra.Command, g *globalFlags, rf *reportFlags) error {
	s, err := openSession(g)
	if err != nil {
		return err
	}
	defer s.Close()

	out := cmd.OutOrStdout()
	t := now()

	required, err := s.refreshRequired(t)
	if err != nil {
		return err
	}
	if rf.refresh || required {
		n, err := s.refresh(cmd.Context(), t)
		switch {
		case errors.Is(err, refresh.ErrNoIntegrations):
			fmt.Fprintln(cmd.ErrOrStderr(), noIntegrationsHint)
		case err != nil:
			fmt.Fprintf(cmd.ErrOrStderr(), "Could not refresh hours, showing cached data: %v\n", err)
		default:
			fmt.Fprintf(out, "Updated monthly hours from integrations (%d entries)\n", n)
		}
	}

	report, err := buildReport(s, t)
	if err != nil {
		return err
	}

	if len(report.Pending) > 0 && !rf.noPrompt {
		configs, err := promptTargets(report.Pending)
		if err != nil {
			return fmt.Errorf("ask targets: %w", err)
		}
		if len(configs) > 0 {
			if err := saveTargets(s, report.Pending, configs); err != nil {
				return err
			}
			if report, err = buildReport(s, t); err != nil {
				return err
			}
		}
	}

	fmt.Fprintln(out, tui.RenderReport(report))
	fmt.Fprintln(out, tui.RenderSummary(report))
	return nil
}

// buildReport assembles the report for the calendar day of t from the cache.
func buildReport(s *session, t time.Time) (hours.Report, error) {
	intervals, err := s.store.ListEntries()
	if err != nil {
		return hours.Report{}, err
	}
	targets, err := s.store.Targets()
	if err != nil {
		return hours.Report{}, err
	}

	report := hours.Assemble(intervals, targets, hours.DateOf(t))
	if report.Untimed > 0 {
		s.logger.Warn("intervals without a time range left out of totals", "count", report.Untimed)
	}
	s.metrics.ReportRows.Set(float64(len(report.Rows) - 1))
	s.metrics.ProjectsUnconfigured.Set(float64(len(report.Pending)))
	return report, nil
}

func saveTargets(s *session, pending []hours.Pending, configs map[hours.ProjectKey]hours.TargetConfig) error {
	for _, p := range pending {
		cfg, ok := configs[p.Key]
		if !ok {
			continue
		}
		if err := s.store.SetTarget(p.Key, p.Title, cfg); err != nil {
			return fmt.Errorf("save targets for %s: %w", p.Title, err)
		}
	}
	return nil
}
