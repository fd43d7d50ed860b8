package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tacogips/altadder/internal/cli"
)

// Version information (set via ldflags during build)
var (
	version   = ""
	gitCommit = ""
	buildDate = ""
)

func main() {
	// Build-time variables win over the embedded VERSION file
	if version != "" {
		cli.Version = version
	}
	if gitCommit != "" {
		cli.GitCommit = gitCommit
	}
	if buildDate != "" {
		cli.BuildDate = buildDate
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute the root command
	cli.Execute(ctx)
}
