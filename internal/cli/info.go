package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/hours/internal/config"
)

func newInfoCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show some basic info",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(g)
			if err != nil {
				return err
			}
			defer s.Close()
			return printInfo(cmd.OutOrStdout(), g, s)
		},
	}
}

func printInfo(w io.Writer, g *globalFlags, s *session) error {
	cfgPath := g.configPath
	if cfgPath == "" {
		p, err := config.DefaultFile()
		if err != nil {
			return err
		}
		cfgPath = p
	}

	entries, err := s.store.CountEntries()
	if err != nil {
		return err
	}
	integrations, err := s.store.ListIntegrations()
	if err != nil {
		return err
	}
	targets, err := s.store.ListTargets()
	if err != nil {
		return err
	}
	refreshedAt, err := s.store.RefreshedAt()
	if err != nil {
		return err
	}

	refreshed := "never"
	if !refreshedAt.IsZero() {
		refreshed = refreshedAt.Local().Format(time.DateTime)
	}

	rows := [][2]string{
		{"Config file", cfgPath},
		{"Database", s.cfg.DBPath},
		{"Refresh threshold", fmt.Sprintf("%d min", s.cfg.RefreshThreshold)},
		{"Last refreshed", refreshed},
		{"Cached entries", fmt.Sprint(entries)},
		{"Integrations", fmt.Sprint(len(integrations))},
		{"Project targets", fmt.Sprint(len(targets))},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s %s\n", styleLabel.Render(fmt.Sprintf("%-18s", r[0]+":")), styleValue.Render(r[1]))
	}
	return nil
}
