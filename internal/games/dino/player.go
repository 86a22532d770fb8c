package dino

import (
	"github.com/vovakirdan/dino-gate/internal/config"
	"github.com/vovakirdan/dino-gate/internal/core"
)

// JumpState is the vertical state of the player.
type JumpState int

const (
	Grounded JumpState = iota
	Ascending
	Falling
)

// String returns a human-readable name for the jump state.
func (s JumpState) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Ascending:
		return "ascending"
	case Falling:
		return "falling"
	default:
		return "unknown"
	}
}

// Pose is the visual representation of the player for one frame.
type Pose int

const (
	PoseStill Pose = iota
	PoseRun1
	PoseRun2
)

// Player is the runner. It owns its position, vertical motion and the
// running-leg animation timer; it never reads input sources directly.
type Player struct {
	X, Y          float64
	Width, Height float64
	StandingY     float64 // Resting y of the top edge
	VelocityY     float64 // Units per ms, negative is up
	State         JumpState

	minJumpHeight float64
	maxJumpHeight float64
	jumpSpeed     float64
	gravity       float64

	runFrameMs float64
	runTimer   float64
	runFrame   int // 0 or 1
}

// NewPlayer creates a grounded player standing on the floor of the scaled playfield.
func NewPlayer(cfg config.DinoConfig, scale ScaleContext) *Player {
	r := scale.Ratio
	p := &Player{
		X:             cfg.Player.X * r,
		Width:         cfg.Player.Width * r,
		Height:        cfg.Player.Height * r,
		minJumpHeight: cfg.Player.MinJumpHeight * r,
		maxJumpHeight: cfg.Player.MaxJumpHeight * r,
		jumpSpeed:     cfg.Physics.JumpSpeed * r,
		gravity:       cfg.Physics.Gravity * r,
		runFrameMs:    cfg.Player.RunFrameMs,
		runTimer:      cfg.Player.RunFrameMs,
	}
	p.StandingY = scale.Height - p.Height - cfg.Player.GroundGap*r
	p.Y = p.StandingY
	return p
}

// Update advances the animation timer and vertical motion by elapsed ms.
// jump is the level-sensitive jump intent for this step.
func (p *Player) Update(speed, elapsed float64, jump bool) {
	if elapsed <= 0 {
		return
	}
	p.advanceRunTimer(speed, elapsed)

	if p.State == Grounded {
		if !jump {
			return
		}
		p.State = Ascending
	}

	switch p.State {
	case Ascending:
		h := p.Altitude()
		// The minimum hop is checked first so a quick tap still completes it.
		if h < p.minJumpHeight || (h < p.maxJumpHeight && jump) {
			p.VelocityY = -p.jumpSpeed
			p.Y += p.VelocityY * elapsed
			if top := p.StandingY - p.maxJumpHeight; p.Y < top {
				p.Y = top
			}
		} else {
			p.State = Falling
			p.VelocityY = p.gravity
		}
	case Falling:
		p.VelocityY = p.gravity
		p.Y += p.VelocityY * elapsed
		if p.Y >= p.StandingY {
			p.Y = p.StandingY
			p.VelocityY = 0
			p.State = Grounded
		}
	}
}

// Altitude returns how far the player is above its standing line.
func (p *Player) Altitude() float64 {
	return p.StandingY - p.Y
}

// advanceRunTimer decays the leg timer faster as the game speeds up.
func (p *Player) advanceRunTimer(speed, elapsed float64) {
	if p.runTimer <= 0 {
		p.runFrame ^= 1
		p.runTimer = p.runFrameMs
	}
	p.runTimer -= elapsed * speed
}

// Pose derives the visual pose from already-updated state.
// Airborne players are frozen in the still pose.
func (p *Player) Pose() Pose {
	if p.State != Grounded {
		return PoseStill
	}
	if p.runFrame == 0 {
		return PoseRun1
	}
	return PoseRun2
}

// Box returns the player's bounds.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Rescale applies a scale ratio change without moving the player relative
// to its standing line.
func (p *Player) Rescale(factor float64) {
	p.X *= factor
	p.Y *= factor
	p.Width *= factor
	p.Height *= factor
	p.StandingY *= factor
	p.VelocityY *= factor
	p.minJumpHeight *= factor
	p.maxJumpHeight *= factor
	p.jumpSpeed *= factor
	p.gravity *= factor
}
