package dino

import (
	"fmt"

	"github.com/vovakirdan/dino-gate/internal/core"
)

// Overlay text sizes in base units.
const (
	hudTextSize     = 16.0
	overlayTextSize = 28.0
	hintTextSize    = 14.0
)

// Render draws the current frame. It only reads state, so rendering the
// same frame twice gives the same picture.
func (g *Game) Render(dst core.Surface) {
	dst.Clear()
	s := g.session
	r := g.scale.Ratio

	for _, t := range s.Ground.Tiles() {
		dst.DrawImage(core.SpriteGround, t.X, t.Y, t.W, t.H)
	}
	for _, o := range s.Spawner.Obstacles() {
		dst.DrawImage(o.Sprite, o.X, o.Y, o.Width, o.Height)
	}
	p := s.Player
	dst.DrawImage(g.playerSprite(), p.X, p.Y, p.Width, p.Height)

	dst.DrawText(fmt.Sprintf("%05d", s.Score()), g.scale.Width-50*r, 16*r, hudTextSize*r)

	midX := g.scale.Width / 2
	midY := g.scale.Height / 2
	switch g.phase {
	case core.PhaseWaitingToStart:
		dst.DrawText("PRESS JUMP TO START", midX, midY, hintTextSize*r)
	case core.PhaseGameOver:
		dst.DrawText("GAME OVER", midX, midY-20*r, overlayTextSize*r)
		if g.RestartReady() {
			dst.DrawText("RELEASE JUMP TO RESTART", midX, midY+15*r, hintTextSize*r)
		}
	}
	if g.hostPaused {
		dst.DrawText("PAUSED", midX, 40*r, overlayTextSize*r)
	}
}

// playerSprite derives the pose sprite. The player stands still until the
// session starts.
func (g *Game) playerSprite() core.Sprite {
	if g.phase == core.PhaseWaitingToStart {
		return core.SpriteStandingStill
	}
	switch g.session.Player.Pose() {
	case PoseRun1:
		return core.SpriteRun1
	case PoseRun2:
		return core.SpriteRun2
	default:
		return core.SpriteStandingStill
	}
}
