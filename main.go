// Command sealr seals secrets into authenticated tokens and opens them again.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/idelchi/sealr/internal/commands"
	"github.com/idelchi/sealr/internal/config"
)

// Global variable for CI stamping.
var version = "unknown - unofficial & generated by unknown"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	var cfg config.Config

	err := commands.NewRootCommand(&cfg, version).ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
