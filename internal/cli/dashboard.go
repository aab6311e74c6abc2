package cli

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sadopc/hours/internal/tui"
)

func newDashboardCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"ui"},
		Short:   "Open the interactive dashboard",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(g)
			if err != nil {
				return err
			}
			defer s.Close()

			dir, err := os.Getwd()
			if err != nil {
				return err
			}

			app := tui.NewApp(s.store, tui.Options{
				Refresh: func(ctx context.Context) (int, error) {
					return s.refresh(ctx, now())
				},
				Now:       now,
				ExportDir: dir,
			})
			p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}
}
