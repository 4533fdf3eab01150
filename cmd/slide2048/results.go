package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/slide2048/internal/platform/tui"
	"github.com/vovakirdan/slide2048/internal/storage"
)

var (
	flagLimit  int
	flagBrowse bool
	flagClear  bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show the best recorded sessions",
	Long: `Display recorded sessions, best max tile first. Ties go to the
session that needed fewer moves.

Examples:
  slide2048 results
  slide2048 results --limit 25
  slide2048 results --browse
  slide2048 results --clear`,
	Args: cobra.NoArgs,
	RunE: runResults,
}

func init() {
	resultsCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of results to show")
	resultsCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive results table")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded results")
}

func runResults(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Results cleared.")
		return nil
	}

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunResults(store, width, height)
	}

	results, err := store.TopResults(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving results: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Best Results")
	fmt.Fprintln(out)

	if len(results) == 0 {
		fmt.Fprintln(out, "No results recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'slide2048 play' to record the first one!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-10s  %-10s  %s\n", "Rank", "Max", "Moves", "Difficulty", "Outcome", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-10s  %-10s  %s\n", "----", "---", "-----", "----------", "-------", "----")

	for i, r := range results {
		outcome := string(r.Outcome)
		if r.Won {
			outcome += "*"
		}
		fmt.Fprintf(out, "  %-4d  %-8d  %-6d  %-10s  %-10s  %s\n",
			i+1, r.MaxTile, r.Moves, r.Difficulty, outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	total, err := store.CountResults()
	if err == nil {
		fmt.Fprintf(out, "\n%d sessions recorded. * = win tile reached\n", total)
	}
	return nil
}
