package dino

import (
	"github.com/vovakirdan/dino-gate/internal/config"
	"github.com/vovakirdan/dino-gate/internal/core"
)

// Ground is the tiling ground strip scrolling under the player.
type Ground struct {
	X, Y   float64
	Width  float64
	Height float64
	speed  float64 // Scaled base speed
}

// NewGround creates the strip at x = 0 along the bottom of the playfield.
func NewGround(cfg config.DinoConfig, scale ScaleContext) *Ground {
	g := &Ground{
		Width:  cfg.Ground.Width * scale.Ratio,
		Height: cfg.Ground.Height * scale.Ratio,
		speed:  cfg.Physics.BaseSpeed * scale.Ratio,
	}
	g.Y = scale.Height - g.Height
	return g
}

// Update scrolls the strip left and wraps it once a full width has passed.
func (g *Ground) Update(speed, elapsed float64) {
	if elapsed <= 0 {
		return
	}
	g.X -= speed * elapsed * g.speed
	if g.X < -g.Width {
		g.X = 0
	}
}

// Tiles returns the two copies drawn each frame. The second copy starts where
// the first ends, so any x in (-Width, 0] leaves no seam.
func (g *Ground) Tiles() [2]core.Box {
	return [2]core.Box{
		core.NewBox(g.X, g.Y, g.Width, g.Height),
		core.NewBox(g.X+g.Width, g.Y, g.Width, g.Height),
	}
}

// Rescale applies a scale ratio change.
func (g *Ground) Rescale(factor float64) {
	g.X *= factor
	g.Y *= factor
	g.Width *= factor
	g.Height *= factor
	g.speed *= factor
}
