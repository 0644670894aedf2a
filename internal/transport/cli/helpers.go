package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/grape-tasting-acid/workshop-team-drawer/internal/entities"
)

// Process exit codes.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitInvalidInput = 2
	ExitConfig       = 3
	ExitInterrupted  = 130
)

// writeError prints a user-facing message for err and returns the exit code to use.
func writeError(w io.Writer, err error) int {
	code := ExitFailure
	msg := err.Error()

	switch {
	case errors.Is(err, entities.ErrInvalidRoster):
		code = ExitInvalidInput
		msg = "cannot draw: " + err.Error()
	case errors.Is(err, entities.ErrRosterNotFound):
		code = ExitInvalidInput
		msg = err.Error() + " (run `teamdraw init` to create template rosters)"
	case errors.Is(err, entities.ErrInvalidArgument):
		code = ExitInvalidInput
	case errors.Is(err, entities.ErrEmptyAssignment):
		code = ExitInvalidInput
		msg = "nothing to export: " + err.Error()
	case errors.Is(err, entities.ErrUnknownBackend):
		code = ExitConfig
	case errors.Is(err, context.Canceled):
		code = ExitInterrupted
		msg = "interrupted"
	}

	_, _ = fmt.Fprintf(w, "error: %s\n", msg)
	return code
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
