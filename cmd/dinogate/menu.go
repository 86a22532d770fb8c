package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-gate/internal/audio"
	"github.com/vovakirdan/dino-gate/internal/platform/tui"
	"github.com/vovakirdan/dino-gate/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a song and play in the terminal",
	Long: `Start in interactive menu mode.

The menu lists the tracks in --songs-dir and every song with recorded runs.
After a game ends you return to the menu to pick again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play song
  S/Tab        - Scores for the highlighted song
  Q            - Quit

Examples:
  dinogate menu
  dinogate menu --songs-dir ./music --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	addGameFlags(menuCmd)
	addTerminalFlags(menuCmd)
}

func runMenu(cmd *cobra.Command, args []string) {
	width, height := terminalSize()
	songID := flagSongID

	// Menu loop
	for {
		items, err := menuItems()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		result, err := tui.RunMenu(items, songID, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if result.Quit {
			return
		}
		if result.Width > 0 && result.Height > 0 {
			width, height = result.Width, result.Height
		}
		songID = result.SongID

		if result.WantsScoreboard {
			if err := showScoreboard(songID, width, height); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			continue
		}

		if err := playTerminal(songID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// menuItems reads the songs directory and the run history. The store is
// closed again before a game opens it.
func menuItems() ([]tui.SongItem, error) {
	tracks, err := audio.ListSongs(expandHome(flagSongsDir))
	if err != nil {
		return nil, err
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("run history disabled", "err", err)
		return tui.SongItems(tracks, nil, logger), nil
	}
	defer store.Close()
	return tui.SongItems(tracks, store, logger), nil
}

func showScoreboard(songID, width, height int) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	logger, closeLog := fileLogger()
	defer closeLog()
	return tui.RunScoreboard(store, songID, width, height, logger)
}
