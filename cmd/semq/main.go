// Command semq is the CLI entry point for the semantic query engine: a
// `search` subcommand running a DSL query against a file set, and a
// `history` subcommand listing recent runs.
//
// Grounded on the teacher's demo/cmd/main.go cobra wiring (root command
// plus AddCommand subcommands, Execute-and-exit-on-error), rebuilt around
// search and history instead of demo scenarios.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harlowlabs/semq/internal/config"
)

func main() {
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:           "semq",
		Short:         "Semantic grep for source code",
		Long:          "Query Go and Python source trees with a small DSL over function, class, call, and variable selectors.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(newSearchCmd(cfg), newHistoryCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}
