package main

import (
	"fmt"

	"github.com/automoto/hopdrop/storage"
	"github.com/spf13/cobra"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show recorded scores",
	Long: `Without a level, show per-level totals. With a level, show its top scores.

Examples:
  hopsim scores
  hopsim scores 01_tower --limit 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		return printStats(store)
	}

	level := args[0]
	scores, err := store.TopScores(level, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", level)
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-9s  %s\n", "Rank", "Score", "Outcome", "Date")
	fmt.Printf("  %-4s  %-8s  %-9s  %s\n", "----", "-----", "-------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %-9s  %s\n", i+1, entry.Score, entry.Outcome, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printStats(store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-12s  %-5s  %-8s  %s\n", "Level", "Runs", "Finishes", "Best")
	fmt.Printf("  %-12s  %-5s  %-8s  %s\n", "-----", "----", "--------", "----")
	for _, s := range stats {
		fmt.Printf("  %-12s  %-5d  %-8d  %d\n", s.Level, s.Runs, s.Finishes, s.HighScore)
	}
	return nil
}
