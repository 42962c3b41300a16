// Package main provides a CLI for exact streak probabilities.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/cointoss/internal/platform/config"

	streakcmd "github.com/louisbranch/cointoss/internal/cmd/streak"
)

func main() {
	cfg, err := streakcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.ExitErr(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := streakcmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		config.ExitErr(err)
	}
}
