package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/apimgr/xfetch/src/cmd"
)

func main() {
	// Initialize CLI environment before executing commands
	InitCLI()

	// Ctrl-C aborts an in-flight request
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cmd.Execute(ctx)
	stop()

	os.Exit(code)
}
