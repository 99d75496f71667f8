package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/strrl/rofi-recent/internal/recent"
)

// NewStatsCommand creates the stats command
func NewStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show per-program usage statistics for the whole registry",
		Long: `Aggregate every registration in the registry per program, ignoring the
per-program limit. Excluded programs are left out.`,
		Args: cobra.NoArgs,
		RunE: runStats,
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return &ExitError{Code: ExitSetup, Err: err}
	}
	records, err := a.loadRecords(cmd.Context())
	if err != nil {
		return &ExitError{Code: ExitSetup, Err: err}
	}

	stats, err := recent.FetchProgramStats(cmd.Context(), records, recent.ParseExclusions(a.cfg.Exclude), a.logger)
	if err != nil {
		return fmt.Errorf("failed to compute statistics: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(stats) == 0 {
		fmt.Fprintln(out, "No recent files found")
		return nil
	}

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%-24s %6s %6s  %-16s  %s", "PROGRAM", "FILES", "OPENS", "LAST ACTIVITY", "LATEST TYPE")))
	for _, stat := range stats {
		fmt.Fprintf(out, "%-24s %6d %6d  %-16s  %s\n",
			stat.Program,
			stat.Files,
			stat.Registrations,
			stat.LastActivity.Format(timeLayout),
			dimStyle.Render(stat.LatestType))
	}
	return nil
}
