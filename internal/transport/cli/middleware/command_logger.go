// Package middleware contains command middlewares for delivery.
package middleware

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RunE matches cobra.Command.RunE.
type RunE func(cmd *cobra.Command, args []string) error

// CommandLogger logs each command run with its path, arguments, outcome and duration.
func CommandLogger(log *zap.SugaredLogger, next RunE) RunE {
	return func(cmd *cobra.Command, args []string) error {
		start := time.Now()
		err := next(cmd, args)
		dur := time.Since(start)

		fields := []any{
			"command", cmd.CommandPath(),
			"args", args,
			"duration_ms", float64(dur.Microseconds()) / 1000.0,
		}
		if err != nil {
			log.Errorw("command", append(fields, "error", err)...)
			return err
		}
		log.Infow("command", fields...)
		return nil
	}
}
