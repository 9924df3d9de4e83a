package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/harlowlabs/semq/internal/clierr"
	"github.com/harlowlabs/semq/internal/config"
	"github.com/harlowlabs/semq/internal/discover"
	"github.com/harlowlabs/semq/internal/evaluator"
	"github.com/harlowlabs/semq/internal/history"
	"github.com/harlowlabs/semq/internal/output"
	"github.com/harlowlabs/semq/internal/provider"
	"github.com/harlowlabs/semq/internal/provider/golang"
	"github.com/harlowlabs/semq/internal/provider/python"
	"github.com/harlowlabs/semq/internal/query"
)

func newSearchCmd(cfg *config.Config) *cobra.Command {
	var (
		noGit        bool
		globs        []string
		outputFormat string
		logLevel     string
		historyDB    string
	)

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search source files for nodes matching a DSL query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args[0], noGit, globs, outputFormat, logLevel, historyDB)
		},
	}

	cmd.Flags().BoolVar(&noGit, "no-git", cfg.NoGit, "Discover files via glob instead of git ls-files")
	cmd.Flags().StringSliceVar(&globs, "glob", nil, "Glob pattern(s) to search when discovering by glob (--no-git or outside a git work tree; repeatable); defaults to every provider-known extension")
	cmd.Flags().StringVar(&outputFormat, "output-format", cfg.OutputFormat, "Output format: grep or json")
	cmd.Flags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warning, error, critical, none")
	cmd.Flags().StringVar(&historyDB, "history-db", cfg.HistoryDB, "Path to the search history database")

	return cmd
}

func runSearch(cmd *cobra.Command, queryText string, noGit bool, globs []string, outputFormat, logLevel, historyDB string) error {
	configureLogging(logLevel)

	tree, err := query.Parse(queryText)
	if err != nil {
		return err
	}

	root, err := os.Getwd()
	if err != nil {
		return clierr.Wrap(clierr.ErrUnknown, "resolving working directory", err)
	}

	registry := provider.NewRegistry()
	registry.Register(golang.New())
	registry.Register(python.New())

	files, err := discoverFiles(root, noGit, globs)
	if err != nil {
		return clierr.Wrap(clierr.ErrDiscovery, "discovering source files", err)
	}
	files = discover.FilterByExtension(registry, files)

	started := time.Now()
	matches, errs := evaluator.Search(context.Background(), registry, files, tree, func(path string) ([]byte, error) {
		return os.ReadFile(discover.Join(root, path))
	})

	formatter, err := newFormatter(cmd, outputFormat)
	if err != nil {
		return err
	}

	matchCount := 0
	for m := range matches {
		matchCount++
		if err := formatter.Write(m, m.Path, output.Format(m.Node)); err != nil {
			return clierr.Wrap(clierr.ErrUnknown, "writing output", err)
		}
	}
	if err := formatter.Close(); err != nil {
		return clierr.Wrap(clierr.ErrUnknown, "finalizing output", err)
	}
	if err := <-errs; err != nil {
		return err
	}

	recordHistory(historyDB, queryText, root, len(files), matchCount, time.Since(started))
	return nil
}

func discoverFiles(root string, noGit bool, globs []string) ([]string, error) {
	if !noGit {
		if files, err := discover.Git(root); err == nil {
			return files, nil
		}
		slog.Debug("git discovery unavailable, falling back to glob", "root", root)
	}
	return discover.Glob(root, globs)
}

func newFormatter(cmd *cobra.Command, format string) (output.Formatter, error) {
	switch format {
	case "", "grep":
		return output.NewGrep(cmd.OutOrStdout()), nil
	case "json":
		return output.NewJSON(cmd.OutOrStdout()), nil
	default:
		return nil, clierr.CLIError{Code: clierr.ErrUnknown, Message: fmt.Sprintf("unknown output format %q", format)}
	}
}

func configureLogging(level string) {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "error", "critical":
		l = slog.LevelError
	case "none":
		slog.SetDefault(slog.New(slog.NewTextHandler(discardWriter{}, nil)))
		return
	default:
		l = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func recordHistory(dbPath, queryText, root string, fileCount, matchCount int, elapsed time.Duration) {
	store, err := history.Open(dbPath)
	if err != nil {
		slog.Warn("history unavailable", "path", dbPath, "error", err)
		return
	}
	run := history.Run{
		Query:      queryText,
		Root:       filepath.Clean(root),
		FileCount:  fileCount,
		MatchCount: matchCount,
		DurationMS: elapsed.Milliseconds(),
	}
	if err := store.Record(run); err != nil {
		slog.Warn("failed to record search history", "error", err)
	}
}
