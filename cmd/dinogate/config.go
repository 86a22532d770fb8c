package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-gate/internal/config"
)

var flagCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in game config as YAML. Save it to
~/.dinogate/configs/dino.yaml or pass it with --config to tune the game.

With --check, the given file is loaded and validated instead.

Examples:
  dinogate config > ~/.dinogate/configs/dino.yaml
  dinogate config --check ./my-dino.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate a config file")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagCheck == "" {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.LoadDino(flagCheck)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s: ok (playfield %gx%g, %d obstacle kinds)\n",
		flagCheck, cfg.Playfield.Width, cfg.Playfield.Height, len(cfg.Obstacles.Kinds))
}
