// Package main is the entrypoint for the firedash CLI and dashboard.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/emberstack/firedash/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
