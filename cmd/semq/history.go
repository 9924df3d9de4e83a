package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harlowlabs/semq/internal/clierr"
	"github.com/harlowlabs/semq/internal/config"
	"github.com/harlowlabs/semq/internal/history"
)

func newHistoryCmd(cfg *config.Config) *cobra.Command {
	var (
		limit     int
		historyDB string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent search runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := history.Open(historyDB)
			if err != nil {
				return clierr.Wrap(clierr.ErrUnknown, "opening history database", err)
			}
			runs, err := store.Recent(limit)
			if err != nil {
				return clierr.Wrap(clierr.ErrUnknown, "reading search history", err)
			}
			for _, r := range runs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-40s  files=%d matches=%d  %dms\n",
					r.CreatedAt.Format("2006-01-02 15:04:05"), r.Query, r.FileCount, r.MatchCount, r.DurationMS)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", cfg.HistoryLimit, "Number of recent runs to show")
	cmd.Flags().StringVar(&historyDB, "history-db", cfg.HistoryDB, "Path to the search history database")

	return cmd
}
