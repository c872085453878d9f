package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/craftchain-go/internal/adapters/document"
)

// NewGroupCommand creates the group command with subcommands
func NewGroupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Manage stored bookmark groups",
		Long: `Import, list and delete bookmark groups.

A group is a YAML or JSON document naming the pinned entries, the recipes they
refer to and the fluid containers involved. Importing a group with an existing
name replaces its content.

Examples:
  craftchain group import alloys.yaml
  craftchain group list
  craftchain group delete alloys`,
	}

	cmd.AddCommand(newGroupImportCommand())
	cmd.AddCommand(newGroupListCommand())
	cmd.AddCommand(newGroupDeleteCommand())

	return cmd
}

func newGroupImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a group document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.LoadFile(args[0])
			if err != nil {
				return err
			}

			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			resp, err := s.planner.ImportGroup(s.ctx, doc)
			if err != nil {
				return err
			}

			return writeOutput(cmd.OutOrStdout(), resp, func() error {
				verb := "Imported"
				if resp.Replaced {
					verb = "Replaced"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s group %s (%d entries, id %s)\n", verb, resp.Name, resp.Entries, resp.GroupID)
				return nil
			})
		},
	}
}

func newGroupListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			resp, err := s.planner.ListGroups(s.ctx)
			if err != nil {
				return err
			}

			return writeOutput(cmd.OutOrStdout(), resp, func() error {
				if len(resp.Groups) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No groups stored")
					return nil
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "NAME\tENTRIES\tRECIPES\tITEMS\tUPDATED")
				for _, g := range resp.Groups {
					fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n", g.Name, g.Entries, g.Recipes, g.Items, g.UpdatedAt.Format("2006-01-02 15:04"))
				}
				return w.Flush()
			})
		},
	}
}

func newGroupDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.planner.DeleteGroup(s.ctx, args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted group %s\n", args[0])
			return nil
		},
	}
}
