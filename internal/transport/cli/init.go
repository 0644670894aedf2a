package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create template roster files that do not exist yet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.opts.SkipBootstrap = true
			return a.wrap(runInit)(cmd, args)
		},
	}
}

func runInit(cmd *cobra.Command, _ []string, rt *Runtime) error {
	out := cmd.OutOrStdout()

	created, err := rt.Usecase.InitTemplates(cmd.Context())
	if err != nil {
		return err
	}
	if len(created) == 0 {
		fmt.Fprintf(out, "all roster files already exist in %s\n", rt.Config.Roster.Dir)
		return nil
	}
	for _, p := range created {
		fmt.Fprintf(out, "created: %s\n", p)
	}
	return nil
}
