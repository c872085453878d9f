package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/craftchain-go/internal/adapters/document"
	"github.com/andrescamacho/craftchain-go/internal/application/planning"
)

// NewResolveCommand creates the resolve command
func NewResolveCommand() *cobra.Command {
	var (
		groupName       string
		filePath        string
		skipCalculation bool
		noColor         bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a bookmark group into crafts, inputs and leftovers",
		Long: `Resolve a stored group or a document file.

Every requested output is propagated down the pinned recipes: craft counts are
rounded up to whole crafts, surplus is banked and reused, fluids move between
containers and their bulk form, and whatever cannot be crafted is reported as an
input to gather.

With --skip-calculation the group is only mapped and every quantity reads zero.

Examples:
  craftchain resolve --group alloys
  craftchain resolve --file alloys.yaml
  craftchain resolve --group alloys --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if groupName != "" && filePath != "" {
				return fmt.Errorf("--group and --file are mutually exclusive")
			}

			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			var report *planning.ResolutionReport
			if filePath != "" {
				doc, err := document.LoadFile(filePath)
				if err != nil {
					return err
				}
				report, err = s.planner.ResolveDocument(s.ctx, doc, skipCalculation)
				if err != nil {
					return err
				}
			} else {
				name, err := resolveGroupName(groupName)
				if err != nil {
					return err
				}
				report, err = s.planner.ResolveGroup(s.ctx, name, skipCalculation)
				if err != nil {
					return err
				}
			}

			return writeOutput(cmd.OutOrStdout(), report, func() error {
				_, err := fmt.Fprint(cmd.OutOrStdout(), NewReportFormatter(!noColor).Format(report))
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&groupName, "group", "g", "", "Stored group to resolve")
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Group document to resolve without storing it")
	cmd.Flags().BoolVar(&skipCalculation, "skip-calculation", false, "Map the group without propagating demand")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable ANSI colors")

	return cmd
}
