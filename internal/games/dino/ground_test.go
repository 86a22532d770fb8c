package dino

import (
	"testing"

	"github.com/vovakirdan/dino-gate/internal/config"
)

func newTestGround() *Ground {
	cfg := config.DefaultDinoConfig()
	return NewGround(cfg, NewScaleContext(800, 200, cfg.Playfield))
}

func TestGroundPlacement(t *testing.T) {
	g := newTestGround()
	if g.X != 0 || g.Y != 176 || g.Width != 2400 || g.Height != 24 {
		t.Errorf("ground = %+v, expected x=0 y=176 2400x24", g)
	}
}

func TestGroundScrolls(t *testing.T) {
	g := newTestGround()
	g.Update(2, 10)

	// 2 * 10 ms * 0.5 units/ms
	if g.X != -10 {
		t.Errorf("X = %f, expected -10", g.X)
	}
}

func TestGroundWraps(t *testing.T) {
	g := newTestGround()
	g.X = -2399

	g.Update(1, 4)

	if g.X != 0 {
		t.Errorf("X = %f after passing -width, expected wrap to 0", g.X)
	}
}

func TestGroundTilesCoverViewport(t *testing.T) {
	g := newTestGround()
	for i := 0; i < 1000; i++ {
		g.Update(1.7, 33)
		if g.X > 0 || g.X < -g.Width {
			t.Fatalf("X = %f out of (-width, 0]", g.X)
		}
		tiles := g.Tiles()
		if tiles[0].Right() != tiles[1].X {
			t.Fatalf("seam between tiles: %f vs %f", tiles[0].Right(), tiles[1].X)
		}
		if tiles[1].Right() < 800 {
			t.Fatalf("tiles end at %f, before the right edge", tiles[1].Right())
		}
	}
}
