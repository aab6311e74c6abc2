package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sadopc/hours/internal/refresh"
)

func newRefreshCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Refresh hours through integrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(g)
			if err != nil {
				return err
			}
			defer s.Close()

			n, err := s.refresh(cmd.Context(), now())
			if errors.Is(err, refresh.ErrNoIntegrations) {
				return errors.New("no integrations set up yet, run 'hours integrations setup toggl' first")
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated monthly hours from integrations (%d entries)\n", n)
			return nil
		},
	}
}
