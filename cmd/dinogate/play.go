package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-gate/internal/platform/tui"
)

var flagHoldWindow time.Duration

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the runner in the terminal.

Controls:
  Space/Up/W - Jump (hold for a higher jump)
  P/Esc      - Pause / resume
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Releasing jump after a crash also restarts, once the short cool-down has
passed.

Difficulty options:
  easy   - Half the speed-up rate
  normal - Default speed-up rate
  hard   - Two and a half times the speed-up rate

Host control:
  --control <path> listens on a unix socket. Each line a host writes is one
  of PAUSE, RESUME, RESET or START; every GAME_STARTED and GAME_OVER event is
  written back as one line.

Examples:
  dinogate play
  dinogate play --difficulty hard
  dinogate play --hold-window 500ms
  dinogate play --song-id 2 --songs-dir ./music
  dinogate play --control /tmp/dino.sock --host-reset`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
	addTerminalFlags(playCmd)
}

// addTerminalFlags registers flags that only the terminal frontend reads.
func addTerminalFlags(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&flagHoldWindow, "hold-window", tui.DefaultHoldWindow, "How long one key press holds jump")
}

func runPlay(cmd *cobra.Command, args []string) {
	width, height := terminalSize()
	if err := playTerminal(flagSongID, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// playTerminal runs one terminal game for a song until the player quits.
func playTerminal(songID, width, height int) error {
	// The TUI owns stdout, so logs go to a file
	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := newLogger(logFile)

	session, err := newGameSession(songID, runtimeConfig(width, height), logger)
	if err != nil {
		return err
	}
	defer session.Close()

	if err := tui.Run(tui.Options{
		Options:     session.opts,
		PauseOnBlur: flagPauseOnBlur,
		HoldWindow:  flagHoldWindow,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
