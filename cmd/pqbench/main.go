package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nuclio/errors"

	"pqbench/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommandeer().Execute(ctx); err != nil {
		errors.PrintErrorStack(os.Stderr, err, 5)
		stop()
		os.Exit(1)
	}
}
