package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-gate/internal/platform/tui"
	"github.com/vovakirdan/dino-gate/internal/storage"
)

var (
	flagPlain  bool
	flagClear  bool
	flagRecent bool
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse the best runs per song",
	Long: `Display the best runs for a song.

By default an interactive table opens; left/right switches between songs
with recorded runs. --plain prints the table for the song instead.

Examples:
  dinogate scores
  dinogate scores --song-id 3 --plain
  dinogate scores --recent
  dinogate scores --song-id 3 --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores instead of opening the table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all runs for the song")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Print the latest runs across all songs")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", storage.DefaultLimit, "Number of runs to print with --plain")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRuns(flagSongID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared runs for song #%d.\n", flagSongID)

	case flagRecent:
		if err := printRecent(store, flagLimit); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
			os.Exit(1)
		}

	case flagPlain:
		if err := printScores(store, flagSongID, flagLimit); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}

	default:
		width, height := terminalSize()
		logger, closeLog := fileLogger()
		defer closeLog()
		if err := tui.RunScoreboard(store, flagSongID, width, height, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func printScores(store *storage.Store, songID, limit int) error {
	runs, err := store.TopRuns(songID, limit)
	if err != nil {
		return err
	}

	fmt.Printf("Best Runs - song #%d\n", songID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'dinogate play --song-id %d' to set the first score!\n", songID)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-7s  %-8s  %-6s  %s\n", "Rank", "Score", "Time", "Speed", "Date")
	fmt.Printf("  %-4s  %-7s  %-8s  %-6s  %s\n", "----", "-----", "----", "-----", "----")

	for i, r := range runs {
		dur := time.Duration(r.DurationMs) * time.Millisecond
		fmt.Printf("  %-4d  %-7d  %-8s  x%-5.2f  %s\n",
			i+1, r.Score, dur.Round(100*time.Millisecond), r.PeakSpeed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(songID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Runs: %d  Average: %.0f\n", stats.BestScore, stats.Runs, stats.AvgScore)
	return nil
}

func printRecent(store *storage.Store, limit int) error {
	runs, err := store.RecentRuns(limit)
	if err != nil {
		return err
	}

	fmt.Println("Recent Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-6s  %-7s  %-8s  %s\n", "Song", "Score", "Time", "Date")
	fmt.Printf("  %-6s  %-7s  %-8s  %s\n", "----", "-----", "----", "----")
	for _, r := range runs {
		dur := time.Duration(r.DurationMs) * time.Millisecond
		fmt.Printf("  #%-5d  %-7d  %-8s  %s\n",
			r.SongID, r.Score, dur.Round(100*time.Millisecond), r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
