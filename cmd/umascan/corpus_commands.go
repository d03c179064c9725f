package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newCorpusCommand(ctx *commandContext) *cobra.Command {
	corpusCmd := &cobra.Command{
		Use:   "corpus",
		Short: "Corpus inspection utilities",
	}

	corpusCmd.AddCommand(newCorpusStatsCommand(ctx))
	corpusCmd.AddCommand(newCorpusValidateCommand(ctx))

	return corpusCmd
}

func newCorpusStatsCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show corpus size and vocabulary statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			engine, err := ctx.newEngine(cmd)
			if err != nil {
				return err
			}
			snap := engine.Snapshot()

			if jsonFlag {
				return writeJSON(cmd, map[string]any{
					"path":       cfg.Corpus.Path,
					"events":     snap.Index.EventCount(),
					"names":      snap.Index.KeyCount(),
					"vocabulary": snap.Vocabulary.Len(),
					"skipped":    snap.Skipped,
					"loadedAt":   snap.LoadedAt,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Corpus: %s\n", cfg.Corpus.Path)
			rows := [][]string{
				{"Events", strconv.Itoa(snap.Index.EventCount())},
				{"Distinct names", strconv.Itoa(snap.Index.KeyCount())},
				{"Vocabulary tokens", strconv.Itoa(snap.Vocabulary.Len())},
				{"Skipped entries", strconv.Itoa(snap.Skipped)},
			}
			if stdoutIsTerminal() {
				fmt.Fprintln(out, renderTable(
					[]string{"Statistic", "Value"},
					rows,
					[]columnAlignment{alignLeft, alignRight},
				))
			} else {
				for _, row := range rows {
					fmt.Fprintf(out, "%s\t%s\n", row[0], row[1])
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit statistics as JSON")
	return cmd
}

func newCorpusValidateCommand(ctx *commandContext) *cobra.Command {
	var showDuplicates bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Load the corpus and report problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Corpus path: %s\n", cfg.Corpus.Path)

			engine, err := ctx.newEngine(cmd)
			if err != nil {
				return err
			}
			snap := engine.Snapshot()
			if snap.Index.EventCount() == 0 {
				return fmt.Errorf("corpus is empty or failed to load; matching would never hit")
			}

			fmt.Fprintf(out, "Loaded %d events under %d names\n", snap.Index.EventCount(), snap.Index.KeyCount())
			if snap.Skipped > 0 {
				fmt.Fprintf(out, "Skipped %d malformed or non-latin entries\n", snap.Skipped)
			}

			dupes := snap.Index.DuplicateKeys()
			if len(dupes) == 0 {
				fmt.Fprintln(out, "No shared names; every query resolves without disambiguation")
				return nil
			}
			fmt.Fprintf(out, "%d names are shared by multiple events (resolved by owner filter or session frequency)\n", len(dupes))
			if showDuplicates {
				for _, key := range dupes {
					variants := snap.Index.Lookup(key)
					fmt.Fprintf(out, "  %s (%d variants)\n", key, len(variants))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showDuplicates, "duplicates", false, "List every shared name")
	return cmd
}
