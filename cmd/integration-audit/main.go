package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"integration-audit/internal/cli"
)

func main() {
	// Cancel in-flight API calls on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
