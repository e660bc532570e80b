package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vantage",
		Short: "Component testing harness adapter tooling",
		Long: `Vantage renders component trees for test harnesses.

It mounts component descriptions into live trees, answers queries
against them, and drives synthetic events with synchronous state
flushing. The CLI wraps that in a small toolbox:

  • preview: serve a scenario live over HTTP with hot updates
  • version: print build information`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		previewCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
