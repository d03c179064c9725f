package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"umascan/internal/config"
	"umascan/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded match history",
	}

	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryStatsCommand(ctx))
	historyCmd.AddCommand(newHistoryClearCommand(ctx))

	return historyCmd
}

func openHistory(ctx *commandContext) (*history.Store, *config.Config, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	if !cfg.History.Enabled {
		return nil, nil, fmt.Errorf("history is disabled; set history.enabled = true in the config")
	}
	store, err := history.Open(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open history: %w", err)
	}
	return store, cfg, nil
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var search string
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show recent matches, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openHistory(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.Search(cmd.Context(), search, limit)
			if err != nil {
				return fmt.Errorf("list history: %w", err)
			}

			if jsonFlag {
				return writeJSON(cmd, entries)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No recorded matches")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{
					entry.CreatedAt.Local().Format("2006-01-02 15:04"),
					entry.EventName,
					entry.OwnerName,
					strconv.Itoa(entry.Score),
				})
			}
			if stdoutIsTerminal() {
				fmt.Fprintln(out, renderTable(
					[]string{"When", "Event", "Owner", "Score"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
				))
			} else {
				for _, row := range rows {
					fmt.Fprintln(out, strings.Join(row, "\t"))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum entries to show")
	cmd.Flags().StringVar(&search, "search", "", "Filter by event or owner name")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit entries as JSON")
	return cmd
}

func newHistoryStatsCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize recorded matches",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openHistory(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			summary, err := store.Summarize(cmd.Context())
			if err != nil {
				return fmt.Errorf("summarize history: %w", err)
			}

			if jsonFlag {
				return writeJSON(cmd, summary)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total matches: %d\n", summary.Total)
			fmt.Fprintf(out, "Sessions: %d\n", summary.Sessions)
			if len(summary.Owners) > 0 {
				fmt.Fprintln(out, "Matches by owner:")
				for _, oc := range summary.Owners {
					fmt.Fprintf(out, "  %s: %d\n", oc.Name, oc.Count)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the summary as JSON")
	return cmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded matches",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("refusing to clear history without --force")
			}
			store, _, err := openHistory(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Clear(cmd.Context())
			if err != nil {
				return fmt.Errorf("clear history: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d entries\n", removed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Confirm deletion")
	return cmd
}
