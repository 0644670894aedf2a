package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/grape-tasting-acid/workshop-team-drawer/internal/transport/cli/middleware"
)

type app struct {
	opts Options
}

// NewRootCommand builds the teamdraw command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "teamdraw",
		Short: "Draw workshop teams from leader and candidate rosters",
		Long: `teamdraw splits the OB, YB and GIRL rosters across one team per leader.
Leftover OB/YB members go to female-led teams first and leftover girls to
male-led teams first. A seed makes a draw reproducible.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.opts.ConfigPath, "config", "c", "", "config file (YAML)")
	flags.StringVar(&a.opts.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&a.opts.RosterDir, "roster-dir", "", "directory holding roster files")
	flags.StringVar(&a.opts.RosterFormat, "roster-format", "", "roster file format (csv, yaml)")

	root.AddCommand(
		newDrawCommand(a),
		newInitCommand(a),
		newRosterCommand(a),
	)
	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		return writeError(stderr, err)
	}
	return ExitOK
}

// wrap sets up a runtime for the duration of one command and logs the run.
func (a *app) wrap(run func(cmd *cobra.Command, args []string, rt *Runtime) error) middleware.RunE {
	return func(cmd *cobra.Command, args []string) error {
		rt, err := Setup(cmd.Context(), a.opts)
		if err != nil {
			return err
		}
		defer func() { _ = rt.Close(context.Background()) }()

		return middleware.CommandLogger(rt.Log.Named("cli"), func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, rt)
		})(cmd, args)
	}
}
