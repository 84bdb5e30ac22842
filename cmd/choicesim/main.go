// Command choicesim runs a voting-rule simulation described by a YAML file
// and prints the report as YAML.
//
//	choicesim -config exp.yaml -workers 4
//
// Environment: CHOICESIM_CONFIG, CHOICESIM_WORKERS, CHOICESIM_LOG_LEVEL.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/katalvlaran/choice/internal/choicesim"
)

func main() {
	cfg, err := choicesim.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := choicesim.Run(ctx, cfg, os.Stdout, logger); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
