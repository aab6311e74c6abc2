// Package cli implements the hours commands.
package cli

import (
	"github.com/spf13/cobra"
)

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
}

// newRootCmd builds the command tree. Running without a subcommand prints the
// monthly report.
func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	rf := &reportFlags{}

	rootCmd := &cobra.Command{
		Use:   "hours",
		Short: "Keep track of your tracked hours",
		Long: `hours pulls your tracked time from Toggl Track and shows how the
current day, week and month compare to your per-project targets.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, g, rf)
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "config file (default ~/.config/hours/config.yaml)")
	rootCmd.Flags().BoolVar(&rf.refresh, "refresh", false, "refresh hours from integrations before printing them")
	rootCmd.Flags().BoolVar(&rf.noPrompt, "no-prompt", false, "do not ask for missing project targets")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(newDashboardCmd(g))
	rootCmd.AddCommand(newExportCmd(g))
	rootCmd.AddCommand(newInfoCmd(g))
	rootCmd.AddCommand(newIntegrationsCmd(g))
	rootCmd.AddCommand(newRefreshCmd(g))
	rootCmd.AddCommand(newTargetsCmd(g))

	return rootCmd
}

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}
