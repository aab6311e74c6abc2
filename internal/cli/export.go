package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sadopc/hours/internal/export"
)

func newExportCmd(g *globalFlags) *cobra.Command {
	var format, out string

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export cached entries and the current report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "csv" && format != "json" {
				return fmt.Errorf("unknown format %q: must be csv or json", format)
			}

			s, err := openSession(g)
			if err != nil {
				return err
			}
			defer s.Close()

			t := now()
			if out == "" {
				out = fmt.Sprintf("hours-export-%s.%s", t.Format("2006-01-02"), format)
			}

			intervals, err := s.store.ListEntries()
			if err != nil {
				return err
			}
			switch format {
			case "csv":
				if err := export.ToCSV(intervals, out); err != nil {
					return err
				}
			case "json":
				report, err := buildReport(s, t)
				if err != nil {
					return err
				}
				if err := export.ToJSON(report, intervals, out); err != nil {
					return err
				}
			}

			s.logger.Info("exported", "format", format, "path", out, "count", len(intervals))
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", len(intervals), out)
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&format, "format", "f", "csv", "output format: csv or json")
	exportCmd.Flags().StringVarP(&out, "out", "o", "", "output path (default hours-export-<date>.<format>)")
	return exportCmd
}
