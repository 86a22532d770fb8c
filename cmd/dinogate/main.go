// dinogate is an endless runner: jump over cacti while the ground speeds up.
//
// Usage:
//
//	dinogate play            - Play in the terminal
//	dinogate menu            - Pick a song, then play in the terminal
//	dinogate window          - Play in a desktop window
//	dinogate scores          - Browse the best runs per song
//	dinogate songs           - List songs with recorded runs
//	dinogate config          - Print or check the game config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.dinogate/runs.db)
//	--song-id <id>      - Song the run is played to and recorded under
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagSongID   int
	flagSongsDir string
	flagLogFile  string
	flagVerbose  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dinogate",
	Short: "dinogate - endless runner for the terminal and the desktop",
	Long: `dinogate is an endless runner. Jump over the cacti; the longer you
survive, the faster the ground scrolls.

Available commands:
  play     - Play in the terminal
  menu     - Pick a song, then play in the terminal
  window   - Play in a desktop window
  scores   - Browse the best runs per song
  songs    - List songs with recorded runs
  config   - Print or check the game config

Examples:
  dinogate play
  dinogate play --song-id 3 --difficulty hard
  dinogate menu --songs-dir ./music
  dinogate play --control /tmp/dino.sock --host-reset
  dinogate window --assets ./assets
  dinogate scores --song-id 3`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dinogate/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().IntVar(&flagSongID, "song-id", 1, "Song to play and record runs under")
	rootCmd.PersistentFlags().StringVar(&flagSongsDir, "songs-dir", "~/.dinogate/songs", "Directory of <song-id>.mp3 tracks")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.dinogate/dinogate.log", "Log file for the terminal frontend")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(songsCmd)
}
