package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/registry"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsStats bool
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [pattern]",
	Short: "Show the longest recorded runs",
	Long: `Display the recorded runs with the most generations.
Without an argument runs of every pattern are listed.

Examples:
  life runs
  life runs acorn
  life runs --stats
  life runs glider --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVarP(&flagRunsLimit, "limit", "n", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsStats, "stats", false, "Show per-pattern totals instead of single runs")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete the recorded runs")
}

func runRuns(_ *cobra.Command, args []string) {
	var pattern string
	if len(args) == 1 {
		pattern = args[0]
		if !registry.Exists(pattern) {
			fmt.Fprintf(os.Stderr, "Error: unknown pattern %q\n", pattern)
			fmt.Fprintln(os.Stderr, "Run 'life patterns' to see available patterns.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagRunsClear:
		err = clearRuns(store, pattern)
	case flagRunsStats:
		err = printStats(store)
	default:
		err = printRuns(store, pattern)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func clearRuns(store *storage.Store, pattern string) error {
	if err := store.ClearRuns(pattern); err != nil {
		return err
	}
	if pattern == "" {
		fmt.Println("All runs deleted.")
	} else {
		fmt.Printf("Runs for %s deleted.\n", pattern)
	}
	return nil
}

func printRuns(store *storage.Store, pattern string) error {
	runs, err := store.TopRuns(pattern, flagRunsLimit)
	if err != nil {
		return err
	}

	if pattern == "" {
		fmt.Println("Longest Runs - all patterns")
	} else {
		fmt.Printf("Longest Runs - %s\n", pattern)
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-8s  %-14s  %-12s  %s\n", "Rank", "Generations", "Peak", "Pattern", "Player", "When")
	fmt.Printf("  %-4s  %-12s  %-8s  %-14s  %-12s  %s\n", "----", "-----------", "----", "-------", "------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-8s  %-14s  %-12s  %s\n",
			i+1,
			humanize.Comma(int64(r.Generations)),
			humanize.Comma(int64(r.PeakPopulation)),
			r.Pattern,
			r.Player,
			humanize.Time(r.CreatedAt),
		)
	}
	return nil
}

func printStats(store *storage.Store) error {
	stats, err := store.AllPatternStats()
	if err != nil {
		return err
	}

	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-14s  %-5s  %-12s  %-10s  %-8s  %s\n", "Pattern", "Runs", "Best", "Average", "Peak", "Last played")
	fmt.Printf("  %-14s  %-5s  %-12s  %-10s  %-8s  %s\n", "-------", "----", "----", "-------", "----", "-----------")
	for _, id := range ids {
		ps := stats[id]
		fmt.Printf("  %-14s  %-5d  %-12s  %-10s  %-8s  %s\n",
			id,
			ps.Runs,
			humanize.Comma(int64(ps.MaxGenerations)),
			humanize.CommafWithDigits(ps.AvgGenerations, 1),
			humanize.Comma(int64(ps.PeakPopulation)),
			humanize.Time(ps.LastPlayed),
		)
	}
	return nil
}
