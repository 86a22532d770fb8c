package dino

import (
	"strings"
	"testing"

	"github.com/vovakirdan/dino-gate/internal/config"
	"github.com/vovakirdan/dino-gate/internal/core"
)

type drawCall struct {
	sprite     core.Sprite
	x, y, w, h float64
}

type fakeSurface struct {
	clears int
	images []drawCall
	texts  []string
}

func (f *fakeSurface) Clear() {
	f.clears++
	f.images = f.images[:0]
	f.texts = f.texts[:0]
}

func (f *fakeSurface) DrawImage(sprite core.Sprite, x, y, w, h float64) {
	f.images = append(f.images, drawCall{sprite, x, y, w, h})
}

func (f *fakeSurface) DrawText(text string, x, y, size float64) {
	f.texts = append(f.texts, text)
}

func (f *fakeSurface) count(sprite core.Sprite) int {
	n := 0
	for _, c := range f.images {
		if c.sprite == sprite {
			n++
		}
	}
	return n
}

func (f *fakeSurface) hasText(substr string) bool {
	for _, s := range f.texts {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

func TestRenderWaiting(t *testing.T) {
	g, _ := newTestGame(config.DefaultDinoConfig())
	surf := &fakeSurface{}

	g.Render(surf)

	if surf.clears != 1 {
		t.Errorf("Clear called %d times, expected 1", surf.clears)
	}
	if n := surf.count(core.SpriteGround); n != 2 {
		t.Errorf("ground drawn %d times, expected 2", n)
	}
	if surf.count(core.SpriteStandingStill) != 1 {
		t.Error("waiting player should stand still")
	}
	if !surf.hasText("START") {
		t.Errorf("texts = %v, expected a start hint", surf.texts)
	}
}

func TestRenderGroundTilesAdjacent(t *testing.T) {
	g, _ := newTestGame(config.DefaultDinoConfig())
	g.session.Ground.X = -1234.5
	surf := &fakeSurface{}

	g.Render(surf)

	var tiles []drawCall
	for _, c := range surf.images {
		if c.sprite == core.SpriteGround {
			tiles = append(tiles, c)
		}
	}
	if len(tiles) != 2 {
		t.Fatalf("got %d ground tiles", len(tiles))
	}
	if tiles[0].x != -1234.5 || tiles[1].x != -1234.5+2400 {
		t.Errorf("tiles at %f and %f, expected %f and %f", tiles[0].x, tiles[1].x, -1234.5, -1234.5+2400)
	}
}

func TestRenderRunningDrawsObstaclesAndRunPose(t *testing.T) {
	g, _ := newTestGame(config.DefaultDinoConfig())
	g.Step(0, hold)
	g.Step(stepMs, release)
	g.session.Spawner.obstacles = []Obstacle{
		{Sprite: "cactus_2", X: 500, Y: 133, Width: 65, Height: 67},
	}
	surf := &fakeSurface{}

	g.Render(surf)

	if surf.count("cactus_2") != 1 {
		t.Error("obstacle not drawn")
	}
	if surf.count(core.SpriteRun1)+surf.count(core.SpriteRun2) != 1 {
		t.Error("running player should use a run frame")
	}
	if surf.hasText("START") || surf.hasText("GAME OVER") {
		t.Errorf("unexpected overlay: %v", surf.texts)
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g, _ := newTestGame(config.DefaultDinoConfig())
	g.Step(0, hold)
	crash(t, g)
	surf := &fakeSurface{}

	g.Render(surf)
	if !surf.hasText("GAME OVER") {
		t.Errorf("texts = %v, expected GAME OVER", surf.texts)
	}
	if surf.hasText("RESTART") {
		t.Error("restart hint shown during cool-down")
	}

	g.Step(1000, release)
	g.Render(surf)
	if !surf.hasText("RESTART") {
		t.Error("restart hint missing after cool-down")
	}
}

func TestRenderPausedOverlay(t *testing.T) {
	g, _ := newTestGame(config.DefaultDinoConfig())
	g.Pause()
	surf := &fakeSurface{}

	g.Render(surf)

	if !surf.hasText("PAUSED") {
		t.Errorf("texts = %v, expected PAUSED", surf.texts)
	}
}

func TestRenderIsPure(t *testing.T) {
	g, _ := newTestGame(config.DefaultDinoConfig())
	g.Step(0, hold)
	g.Step(stepMs, hold)
	before := *g.session.Player

	g.Render(&fakeSurface{})
	g.Render(&fakeSurface{})

	if *g.session.Player != before {
		t.Error("rendering changed player state")
	}
}
