// Package main provides the entry point for the ivmap CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/intervalmap/cmd/ivmap/commands"
)

// Build metadata, overridden via -ldflags at release time.
var (
	version = "dev"
	commit  = "<unknown>"
	date    = "<unknown>"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ivmap",
		Short: "Interval map inspection tool",
		Long: `ivmap replays interval-map assignment scripts and renders the
resulting breakpoint structure.

Commands:
  apply     Replay a script against a fresh interval map`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add commands.
	rootCmd.AddCommand(commands.NewApplyCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "ivmap %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}
