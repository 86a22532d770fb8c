package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in, expected string
	}{
		{"~/.dinogate/runs.db", filepath.Join(home, ".dinogate", "runs.db")},
		{"~", home},
		{"/tmp/runs.db", "/tmp/runs.db"},
		{"~other/runs.db", "~other/runs.db"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := expandHome(tc.in); got != tc.expected {
			t.Errorf("expandHome(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestLoadGameConfigFlags(t *testing.T) {
	defer func() {
		flagConfig, flagDifficulty, flagAutoStart, flagHostReset = "", "", false, false
	}()

	base, err := loadGameConfig()
	if err != nil {
		t.Fatalf("loadGameConfig() failed: %v", err)
	}

	flagDifficulty = "hard"
	flagAutoStart = true
	flagHostReset = true
	cfg, err := loadGameConfig()
	if err != nil {
		t.Fatalf("loadGameConfig() failed: %v", err)
	}
	if !cfg.Session.AutoStart || !cfg.Session.HostReset {
		t.Errorf("session = %+v, expected auto start and host reset", cfg.Session)
	}
	if cfg.Difficulty.SpeedIncrement <= base.Difficulty.SpeedIncrement {
		t.Errorf("hard increment %v not above default %v", cfg.Difficulty.SpeedIncrement, base.Difficulty.SpeedIncrement)
	}

	flagDifficulty = "impossible"
	if _, err := loadGameConfig(); err == nil {
		t.Error("unknown difficulty accepted")
	}
}

func TestNewGameSessionWithControlSocket(t *testing.T) {
	dir := t.TempDir()
	defer func() {
		flagDBPath, flagSongsDir, flagControl = "~/.dinogate/runs.db", "~/.dinogate/songs", ""
	}()
	flagDBPath = filepath.Join(dir, "runs.db")
	flagSongsDir = filepath.Join(dir, "songs")
	flagControl = filepath.Join(dir, "dino.sock")

	s, err := newGameSession(2, runtimeConfig(80, 24), newLogger(os.Stderr))
	if err != nil {
		t.Fatalf("newGameSession() failed: %v", err)
	}
	defer s.Close()

	if s.store == nil {
		t.Error("store not opened")
	}
	if s.music != nil {
		t.Error("music opened although the song file is missing")
	}
	if len(s.opts.Forwarders) != 1 {
		t.Errorf("forwarders = %d, expected the control socket", len(s.opts.Forwarders))
	}
	if s.opts.SongID != 2 {
		t.Errorf("SongID = %d, expected 2", s.opts.SongID)
	}
}

func TestNewGameSessionRejectsSongID(t *testing.T) {
	if _, err := newGameSession(0, runtimeConfig(80, 24), newLogger(os.Stderr)); err == nil {
		t.Error("song id 0 accepted")
	}
}
