package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"umascan/internal/history"
	"umascan/internal/match"
	"umascan/internal/session"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var ownerFlag string
	var jsonFlag bool
	var noHistoryFlag bool

	cmd := &cobra.Command{
		Use:   "match [fragments...]",
		Short: "Match OCR text fragments against the event corpus",
		Long: `Match runs the full pipeline over the given text fragments: normalization,
vocabulary-based token correction, similarity ranking, and variant
disambiguation. Fragments come from the command line, or from stdin
(one per line) when no arguments are given.

Examples:
  umascan match Lovely Tralning Weather
  umascan match --owner c2 "New Year's" Resolution
  ocr-dump screen.png | umascan match --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fragments := args
			if len(fragments) == 0 {
				scanned, err := readFragments(cmd)
				if err != nil {
					return err
				}
				fragments = scanned
			}
			if len(fragments) == 0 {
				return fmt.Errorf("no text fragments provided")
			}

			engine, err := ctx.newEngine(cmd)
			if err != nil {
				return err
			}

			tracker := session.NewFrequencyTracker()
			result, ok := engine.Match(match.Query{
				Fragments:   fragments,
				OwnerFilter: strings.TrimSpace(ownerFlag),
				Tracker:     tracker,
			})
			if !ok {
				if jsonFlag {
					return writeJSON(cmd, map[string]any{"matched": false})
				}
				fmt.Fprintln(cmd.OutOrStdout(), "No match")
				return nil
			}

			if !noHistoryFlag {
				if err := recordMatch(ctx, cmd, tracker.ID(), fragments, result); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: record history: %v\n", err)
				}
			}

			if jsonFlag {
				return writeJSON(cmd, map[string]any{
					"matched": true,
					"result":  result,
				})
			}
			printResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&ownerFlag, "owner", "o", "", "Owner id to prefer when several events share a name")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the result as JSON")
	cmd.Flags().BoolVar(&noHistoryFlag, "no-history", false, "Skip recording this match in history")
	return cmd
}

// readFragments collects stdin lines as fragments, skipping blanks.
func readFragments(cmd *cobra.Command) ([]string, error) {
	var fragments []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fragments = append(fragments, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read fragments: %w", err)
	}
	return fragments, nil
}

func recordMatch(ctx *commandContext, cmd *cobra.Command, sessionID string, fragments []string, result match.Result) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	if !cfg.History.Enabled {
		return nil
	}

	store, err := history.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	ownerName := ""
	if names := result.Variant.SourceNames(); len(names) > 0 {
		ownerName = names[0]
	}
	_, err = store.Add(cmd.Context(), history.Entry{
		SessionID: sessionID,
		EventID:   result.Variant.ID,
		EventName: result.Variant.Name,
		OwnerName: ownerName,
		Score:     result.Score,
		Fragments: fragments,
	})
	return err
}

func printResult(cmd *cobra.Command, result match.Result) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Matched: %s (score %d)\n", result.Variant.Name, result.Score)
	fmt.Fprintf(out, "Event id: %s\n", result.Variant.ID)
	if result.Variant.Type != "" {
		fmt.Fprintf(out, "Type: %s\n", result.Variant.Type)
	}
	if names := result.Variant.SourceNames(); len(names) > 0 {
		fmt.Fprintf(out, "Source: %s\n", strings.Join(names, ", "))
	}
	if result.Aliased {
		fmt.Fprintf(out, "Query rewritten by alias to %q\n", result.Corrected)
	} else if result.Corrected != "" {
		fmt.Fprintf(out, "Corrected query: %s\n", result.Corrected)
	}

	if len(result.Variant.Choices) > 0 {
		fmt.Fprintln(out)
		for i, choice := range result.Variant.Choices {
			fmt.Fprintf(out, "%d. %s\n", i+1, choice.Text)
			for _, effect := range choice.Effects {
				fmt.Fprintf(out, "   %s\n", effect)
			}
		}
	}

	if len(result.Candidates) > 1 {
		fmt.Fprintln(out)
		printCandidates(cmd, result.Candidates)
	}
}

func printCandidates(cmd *cobra.Command, candidates []match.Candidate) {
	out := cmd.OutOrStdout()
	if !stdoutIsTerminal() {
		for _, c := range candidates {
			fmt.Fprintf(out, "%s\t%d\n", c.Key, c.Score)
		}
		return
	}

	rows := make([][]string, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, []string{c.Key, strconv.Itoa(c.Score)})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Candidate", "Score"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	))
}
