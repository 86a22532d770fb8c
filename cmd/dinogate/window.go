package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-gate/internal/platform/gfx"
)

var (
	flagAssets       string
	flagWindowWidth  int
	flagWindowHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start the runner in a resizable desktop window.

Controls:
  Space/Up/W, left mouse, touch - Jump (hold for a higher jump)
  P                             - Pause / resume
  R/Enter                       - Restart (after game over)
  Esc/Q                         - Quit

Sprites are read from --assets as ground.png, standing_still.png,
dino_run1.png, dino_run2.png and cactus_1.png to cactus_3.png. Missing
images are drawn as solid blocks.

Examples:
  dinogate window
  dinogate window --assets ./assets --width 1200 --height 300
  dinogate window --pause-on-blur`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory of sprite PNGs")
	windowCmd.Flags().IntVar(&flagWindowWidth, "width", 800, "Initial window width in pixels")
	windowCmd.Flags().IntVar(&flagWindowHeight, "height", 200, "Initial window height in pixels")
}

func runWindow(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)

	if flagWindowWidth < 1 || flagWindowHeight < 1 {
		fmt.Fprintf(os.Stderr, "Error: invalid window size %dx%d\n", flagWindowWidth, flagWindowHeight)
		os.Exit(1)
	}

	session, err := newGameSession(flagSongID, runtimeConfig(flagWindowWidth, flagWindowHeight), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := gfx.Run(gfx.Options{
		Options:     session.opts,
		Assets:      flagAssets,
		PauseOnBlur: flagPauseOnBlur,
	})

	session.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
