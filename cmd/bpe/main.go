// Command bpe analyzes draw.io business-process diagrams from the command
// line.
//
// Usage:
//
//	bpe extract flows/order.xml
//	bpe analyze --format json 'flows/**/*.xml'
//	bpe classify validate payment
//	bpe watch flows/order.xml
//
// Exit codes: 0 = success, 1 = error or no labels found.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
