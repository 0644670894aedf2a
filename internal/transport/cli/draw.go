package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grape-tasting-acid/workshop-team-drawer/internal/transport/tui"
)

type drawFlags struct {
	seed      int64
	export    bool
	noAnimate bool
}

func newDrawCommand(a *app) *cobra.Command {
	f := &drawFlags{}
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Draw teams and optionally export the result",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.wrap(func(cmd *cobra.Command, _ []string, rt *Runtime) error {
		var seed *int64
		if cmd.Flags().Changed("seed") {
			seed = &f.seed
		}
		return runDraw(cmd, rt, seed, f)
	})

	cmd.Flags().Int64Var(&f.seed, "seed", 0, "seed for a reproducible draw (random when omitted)")
	cmd.Flags().BoolVarP(&f.export, "export", "e", false, "export the result after drawing")
	cmd.Flags().BoolVar(&f.noAnimate, "no-animate", false, "print the result without the reveal animation")
	cmd.Flags().StringVar(&a.opts.ExportFormat, "format", "", "export format (xlsx, csv)")
	cmd.Flags().StringVar(&a.opts.ExportDir, "out", "", "export directory")
	return cmd
}

func runDraw(cmd *cobra.Command, rt *Runtime, seed *int64, f *drawFlags) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	roster, err := rt.Usecase.LoadRoster(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, tui.RenderSummary(roster.Summary()))

	a, err := rt.Usecase.Draw(ctx, roster, seed)
	if err != nil {
		return err
	}

	completed := false
	if rt.Config.UI.Animate && !f.noAnimate && isTerminal(out) {
		completed, err = tui.Run(ctx, *a, tui.OptionsFrom(rt.Config.UI), cmd.InOrStdin(), out)
		if err != nil {
			return err
		}
	}
	if !completed {
		fmt.Fprintln(out, tui.RenderBoard(*a))
	}
	fmt.Fprintf(out, "seed: %d (rerun with --seed %d to reproduce)\n", a.Seed, a.Seed)

	if !f.export {
		return nil
	}
	paths, err := rt.Usecase.Export(ctx, a)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintf(out, "saved: %s\n", p)
	}
	return nil
}
