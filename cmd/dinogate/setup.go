package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-gate/internal/audio"
	"github.com/vovakirdan/dino-gate/internal/bridge"
	"github.com/vovakirdan/dino-gate/internal/config"
	"github.com/vovakirdan/dino-gate/internal/core"
	"github.com/vovakirdan/dino-gate/internal/platform/driver"
	"github.com/vovakirdan/dino-gate/internal/storage"
)

// Game flags shared by play and window.
var (
	flagConfig      string
	flagDifficulty  string
	flagControl     string
	flagAutoStart   bool
	flagHostReset   bool
	flagPauseOnBlur bool
)

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().StringVar(&flagControl, "control", "", "Unix socket for host commands and events")
	cmd.Flags().BoolVar(&flagAutoStart, "auto-start", false, "Start running without waiting for a jump")
	cmd.Flags().BoolVar(&flagHostReset, "host-reset", false, "Only the host RESET command starts a new session")
	cmd.Flags().BoolVar(&flagPauseOnBlur, "pause-on-blur", false, "Pause while the game has no focus")
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dinogate",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogFile opens the log file for appending, creating its directory.
func openLogFile(path string) (*os.File, error) {
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// fileLogger logs to --log-file for screens that own stdout. Without a
// usable log file warnings are dropped.
func fileLogger() (*log.Logger, func()) {
	f, err := openLogFile(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}

// loadGameConfig resolves the config file, the preset and the flag overrides.
func loadGameConfig() (config.DinoConfig, error) {
	cfg, err := config.LoadDino(flagConfig)
	if err != nil {
		return config.DinoConfig{}, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.DinoConfig{}, err
	}
	config.ApplyDinoPreset(&cfg, preset)

	if flagAutoStart {
		cfg.Session.AutoStart = true
	}
	if flagHostReset {
		cfg.Session.HostReset = true
	}
	return cfg, nil
}

// gameSession bundles everything a frontend needs besides its viewport.
type gameSession struct {
	opts    driver.Options
	store   *storage.Store
	music   *audio.Music
	control *bridge.SocketHost
	cancel  context.CancelFunc
	logger  *log.Logger
}

// newGameSession loads config and opens the optional collaborators. Only a
// bad config or an unusable control socket is fatal; a missing database or
// song just plays without them.
func newGameSession(songID int, runtime core.RuntimeConfig, logger *log.Logger) (*gameSession, error) {
	if songID < 1 {
		return nil, fmt.Errorf("invalid song id %d", songID)
	}
	cfg, err := loadGameConfig()
	if err != nil {
		return nil, err
	}

	s := &gameSession{logger: logger}
	b := bridge.New(bridge.DefaultBuffer, logger)

	if store, err := storage.Open(flagDBPath); err != nil {
		logger.Warn("run history disabled", "err", err)
	} else {
		s.store = store
	}

	songPath := audio.SongPath(expandHome(flagSongsDir), songID)
	if music, err := audio.OpenMusic(songPath); err != nil {
		logger.Warn("music disabled", "song", songID, "err", err)
	} else {
		s.music = music
	}

	var forwarders []driver.EventForwarder
	if flagControl != "" {
		host, err := bridge.ListenSocket(flagControl, b, logger)
		if err != nil {
			s.Close()
			return nil, err
		}
		ctx, cancel := context.WithCancel(context.Background())
		s.control, s.cancel = host, cancel
		go func() {
			if err := host.Serve(ctx); err != nil {
				logger.Error("control socket stopped", "err", err)
			}
		}()
		forwarders = append(forwarders, host)
		logger.Info("control socket listening", "path", host.Addr())
	}

	s.opts = driver.Options{
		Config:     cfg,
		Runtime:    runtime,
		Bridge:     b,
		Music:      s.music,
		Store:      s.store,
		SongID:     songID,
		Forwarders: forwarders,
		Logger:     logger,
	}
	return s, nil
}

// Close releases the collaborators in reverse order of opening.
func (s *gameSession) Close() {
	var errs []error
	if s.cancel != nil {
		s.cancel()
	}
	if s.control != nil {
		errs = append(errs, s.control.Close())
	}
	if s.music != nil {
		errs = append(errs, s.music.Close())
	}
	if s.store != nil {
		errs = append(errs, s.store.Close())
	}
	if err := errors.Join(errs...); err != nil {
		s.logger.Warn("shutdown", "err", err)
	}
}

// runtimeConfig overlays the viewport and the global flags on the defaults.
func runtimeConfig(width, height int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if width > 0 && height > 0 {
		cfg.ViewportW, cfg.ViewportH = width, height
	}
	if flagFPS > 0 {
		cfg.FPS = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}
