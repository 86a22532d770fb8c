package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-gate/internal/audio"
	"github.com/vovakirdan/dino-gate/internal/storage"
)

var songsCmd = &cobra.Command{
	Use:   "songs",
	Short: "List songs with recorded runs",
	Long:  `Shows every song that has at least one recorded run, with its best score.`,
	Args:  cobra.NoArgs,
	Run:   runSongs,
}

func runSongs(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	songs, err := store.Songs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(songs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Println("Songs:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-4s  %-6s  %-6s  %s\n", "ID", "Runs", "Best", "Track")
	fmt.Printf("  %-4s  %-6s  %-6s  %s\n", "--", "----", "----", "-----")

	dir := expandHome(flagSongsDir)
	for _, id := range songs {
		stats, err := store.Stats(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		track := audio.SongPath(dir, id)
		if _, err := os.Stat(track); err != nil {
			track += " (missing)"
		}
		fmt.Printf("  %-4d  %-6d  %-6d  %s\n", id, stats.Runs, stats.BestScore, track)
	}

	fmt.Println()
	fmt.Println("Run 'dinogate play --song-id <id>' to play along.")
}
