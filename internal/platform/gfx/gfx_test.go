package gfx

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/dino-gate/internal/bridge"
	"github.com/vovakirdan/dino-gate/internal/core"
)

func TestSpritePath(t *testing.T) {
	got := SpritePath("assets", core.SpriteRun1)
	want := filepath.Join("assets", "dino_run1.png")
	if got != want {
		t.Errorf("SpritePath() = %q, expected %q", got, want)
	}
}

func TestPlaceholderColor(t *testing.T) {
	player := PlaceholderColor(core.SpriteRun2)
	if player != PlaceholderColor(core.SpriteStandingStill) {
		t.Error("player poses should share a placeholder")
	}
	if PlaceholderColor("cactus_1") == player {
		t.Error("obstacles should not look like the player")
	}
	if c := PlaceholderColor(core.SpriteGround); c.A != 0xff {
		t.Errorf("ground placeholder alpha = %d, expected opaque", c.A)
	}
}

func TestTextSize(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{28, 28},
		{minTextSize, minTextSize},
		{2.8, minTextSize},
		{0, minTextSize},
	}
	for _, tc := range tests {
		if got := TextSize(tc.in); got != tc.expected {
			t.Errorf("TextSize(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestFocusTracker(t *testing.T) {
	f := NewFocusTracker()

	if _, changed := f.Observe(true); changed {
		t.Fatal("staying focused should not emit")
	}

	cmd, changed := f.Observe(false)
	if !changed || cmd != bridge.CommandPause {
		t.Fatalf("blur = (%v, %v), expected PAUSE", cmd, changed)
	}
	if _, changed := f.Observe(false); changed {
		t.Fatal("staying blurred should not emit")
	}

	cmd, changed = f.Observe(true)
	if !changed || cmd != bridge.CommandResume {
		t.Errorf("focus = (%v, %v), expected RESUME", cmd, changed)
	}
}

func TestDefaultBindingsCoverEveryAction(t *testing.T) {
	b := DefaultBindings()
	for _, a := range []Action{ActionJump, ActionRestart, ActionPause, ActionQuit} {
		if len(b[a].Keys) == 0 {
			t.Errorf("action %d has no keys", a)
		}
	}
}
