// Package main is the entry point for the te editor.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/te/internal/app"
	"github.com/dshills/te/internal/config"
	"github.com/dshills/te/internal/renderer/backend"
)

func main() {
	os.Exit(run())
}

func run() int {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: te must be run in a terminal")
		return 1
	}

	// The editor owns the screen while it runs; logs are printed afterwards.
	sink := &app.MemorySink{}
	logCfg := app.DefaultLoggerConfig()
	logCfg.Output = sink
	logger := app.NewLogger(logCfg)
	defer func() {
		_, _ = sink.WriteTo(os.Stderr)
	}()

	screen, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	application, err := app.New(app.Options{
		Backend: screen,
		Config:  config.Default(),
		Logger:  logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		if errors.Is(err, app.ErrQuit) || errors.Is(err, context.Canceled) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
