// Package main runs the teamdraw command line.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grape-tasting-acid/workshop-team-drawer/internal/transport/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
