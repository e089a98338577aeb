// Command throneadmin is the operator CLI: database migrations, the first
// super admin, partner listing, the commission maturity sweep, session
// cleanup and gathering management.
//
// Configuration is read the same way as the server: CONFIG_PATH (or
// --config) plus environment variables.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand(newCommandContext())
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
