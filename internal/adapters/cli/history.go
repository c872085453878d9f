package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewHistoryCommand creates the history command
func NewHistoryCommand() *cobra.Command {
	var (
		groupName string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded resolutions of a group",
		Long: `Show the latest resolutions of a group, newest first.

Resolutions are recorded when planner.record_history is enabled.

Examples:
  craftchain history --group alloys
  craftchain history --group alloys --limit 50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := resolveGroupName(groupName)
			if err != nil {
				return err
			}

			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if limit <= 0 {
				limit = s.cfg.Planner.HistoryLimit
			}

			resp, err := s.planner.ListRuns(s.ctx, name, limit)
			if err != nil {
				return err
			}

			return writeOutput(cmd.OutOrStdout(), resp, func() error {
				if len(resp.Runs) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "No recorded resolutions for %s\n", name)
					return nil
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "RESOLVED\tCRAFTS\tINPUTS\tLEFTOVERS\tDURATION\tMODE")
				for _, run := range resp.Runs {
					mode := "full"
					if run.SkipCalculation {
						mode = "skip"
					}
					fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\t%s\n",
						run.ResolvedAt.Format("2006-01-02 15:04:05"),
						run.TotalCrafts,
						len(run.Inputs),
						len(run.Remaining),
						run.Duration,
						mode,
					)
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().StringVarP(&groupName, "group", "g", "", "Group to show")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of runs (default: planner.history_limit)")

	return cmd
}
