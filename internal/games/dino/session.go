package dino

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/dino-gate/internal/config"
)

// scoreUnit is the distance in base units worth one point.
const scoreUnit = 40.0

// Session is one play-through. Every subsystem is created together and
// replaced together on reset, so no timer or animation state can outlive it.
type Session struct {
	Player  *Player
	Ground  *Ground
	Spawner *Spawner
	Ramp    *config.DifficultyRamp

	baseSpeed float64 // Unscaled, for scoring
	runTimeMs float64
	distance  float64 // Base units travelled
}

// NewSession builds a fresh session for the given scale.
func NewSession(cfg config.DinoConfig, scale ScaleContext, rng *rand.Rand) *Session {
	return &Session{
		Player:    NewPlayer(cfg, scale),
		Ground:    NewGround(cfg, scale),
		Spawner:   NewSpawner(cfg, scale, rng),
		Ramp:      config.NewDifficultyRamp(cfg.Difficulty),
		baseSpeed: cfg.Physics.BaseSpeed,
	}
}

// Advance runs one running step and reports whether the player was hit.
// Updates are strictly ordered so the collision test sees positions from
// the same step.
func (s *Session) Advance(elapsed float64, jump bool) bool {
	if elapsed <= 0 {
		return false
	}
	speed := s.Ramp.Multiplier()

	s.Ground.Update(speed, elapsed)
	s.Spawner.Update(speed, elapsed)
	s.Player.Update(speed, elapsed, jump)
	s.Ramp.Update(elapsed)

	s.runTimeMs += elapsed
	s.distance += s.baseSpeed * speed * elapsed

	return s.Spawner.CheckCollision(s.Player.Box())
}

// Score returns the distance-based score.
func (s *Session) Score() int {
	return int(math.Floor(s.distance / scoreUnit))
}

// RunTimeMs returns the simulated running time.
func (s *Session) RunTimeMs() float64 {
	return s.runTimeMs
}

// Rescale applies a scale ratio change to every entity.
func (s *Session) Rescale(factor float64) {
	s.Player.Rescale(factor)
	s.Ground.Rescale(factor)
	s.Spawner.Rescale(factor)
}
