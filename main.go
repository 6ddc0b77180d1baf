package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(run())
}

func run() int {
	config, err := ParseConfig(os.Args[1:], os.Getenv)
	if err != nil {
		return HandleExitError(os.Stderr, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return HandleExitError(os.Stderr, RunApp(ctx, config, NewLogger(os.Stderr, config.LogLevel)))
}
