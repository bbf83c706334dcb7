package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// notifyContext cancels the render request on SIGINT or SIGTERM.
// syscall.SIGTERM is defined on every platform, so no build tags are needed.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
