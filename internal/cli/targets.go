package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/sadopc/hours/internal/hours"
	"github.com/sadopc/hours/internal/store"
	"github.com/sadopc/hours/internal/tui"
)

func newTargetsCmd(g *globalFlags) *cobra.Command {
	targetsCmd := &cobra.Command{
		Use:   "targets",
		Short: "Manage project targets",
	}

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List project targets",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(g)
			if err != nil {
				return err
			}
			defer s.Close()

			targets, err := s.store.ListTargets()
			if err != nil {
				return err
			}
			listTargets(cmd.OutOrStdout(), targets)
			return nil
		},
	}

	var daily, weekly, monthly string
	setCmd := &cobra.Command{
		Use:   "set <project>",
		Short: "Set the targets of a project",
		Long: `Set the daily, weekly and monthly hour targets of a project. Flags that
are not given keep their current value; pass an empty string to clear one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(g)
			if err != nil {
				return err
			}
			defer s.Close()

			flags := map[string]string{}
			for name, v := range map[string]string{"daily": daily, "weekly": weekly, "monthly": monthly} {
				if cmd.Flags().Changed(name) {
					flags[name] = v
				}
			}
			cfg, err := setTarget(s.store, args[0], flags)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", styleSuccess.Render("Targets for "+args[0]+":"), describeTargets(cfg))
			return nil
		},
	}
	setCmd.Flags().StringVar(&daily, "daily", "", "daily target in hours (1-255)")
	setCmd.Flags().StringVar(&weekly, "weekly", "", "weekly target in hours (1-255)")
	setCmd.Flags().StringVar(&monthly, "monthly", "", "monthly target in hours (1-255)")

	targetsCmd.AddCommand(listCmd)
	targetsCmd.AddCommand(setCmd)
	return targetsCmd
}

// setTarget merges the given fields into the stored configuration of project.
func setTarget(s *store.Store, project string, fields map[string]string) (hours.TargetConfig, error) {
	key := hours.KeyOf(project)

	var cfg hours.TargetConfig
	existing, err := s.GetTarget(key)
	switch {
	case err == nil:
		cfg = existing.Config
	case !errors.Is(err, store.ErrNotFound):
		return cfg, err
	}

	slots := map[string]**int{"daily": &cfg.Daily, "weekly": &cfg.Weekly, "monthly": &cfg.Monthly}
	for name, v := range fields {
		slot, ok := slots[name]
		if !ok {
			return cfg, fmt.Errorf("unknown target %q", name)
		}
		t, err := tui.ParseTarget(v)
		if err != nil {
			return cfg, fmt.Errorf("--%s: %w", name, err)
		}
		*slot = t
	}

	if err := s.SetTarget(key, project, cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func describeTargets(cfg hours.TargetConfig) string {
	if !cfg.AnySet() {
		return "none"
	}
	return cfg.String()
}

func listTargets(w io.Writer, targets []store.ProjectTarget) {
	if len(targets) == 0 {
		fmt.Fprintln(w, "No project targets yet. They are asked for the first time a project shows up.")
		return
	}

	rows := make([][]string, 0, len(targets))
	for _, t := range targets {
		rows = append(rows, []string{t.Title, describeTargets(t.Config)})
	}
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleLabel).
		Headers("Project", "Target (day / week / month)").
		Rows(rows...)
	fmt.Fprintln(w, tbl.String())
}
