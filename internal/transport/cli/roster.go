package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grape-tasting-acid/workshop-team-drawer/internal/drawer"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/transport/tui"
)

func newRosterCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Load the rosters and show the leader board without drawing",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.wrap(runRoster)
	return cmd
}

func runRoster(cmd *cobra.Command, _ []string, rt *Runtime) error {
	out := cmd.OutOrStdout()

	roster, err := rt.Usecase.LoadRoster(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintln(out, tui.RenderSummary(roster.Summary()))
	fmt.Fprintln(out, tui.RenderLeaders(roster.Leaders))
	if err := drawer.ValidateLeaders(roster.Leaders); err != nil {
		fmt.Fprintf(out, "warning: %v\n", err)
	}
	return nil
}
