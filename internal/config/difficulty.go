package config

// StartMultiplier is the speed multiplier every session begins with.
const StartMultiplier = 1.0

// DifficultyRamp owns the global speed multiplier of one session.
// The multiplier only grows while the session runs and has no ceiling:
// the game is meant to become unwinnable eventually.
type DifficultyRamp struct {
	multiplier float64
	increment  float64
}

// NewDifficultyRamp creates a ramp at StartMultiplier.
func NewDifficultyRamp(cfg DifficultyConfig) *DifficultyRamp {
	increment := cfg.SpeedIncrement
	if increment < 0 {
		increment = 0
	}
	return &DifficultyRamp{
		multiplier: StartMultiplier,
		increment:  increment,
	}
}

// Update advances the ramp by elapsed milliseconds.
// Non-positive elapsed time leaves the multiplier unchanged.
func (d *DifficultyRamp) Update(elapsed float64) {
	if elapsed <= 0 {
		return
	}
	d.multiplier += elapsed * d.increment
}

// Multiplier returns the current speed multiplier.
func (d *DifficultyRamp) Multiplier() float64 {
	return d.multiplier
}
