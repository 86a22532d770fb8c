// Package config provides YAML-based game configuration loading and
// the difficulty ramp for the dino runner.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by Validate for every rejected configuration.
var ErrInvalidConfig = errors.New("invalid config")

// DinoConfig contains all configuration for the dino runner.
// Lengths are base playfield units; they are multiplied by the scale ratio
// at session creation. Durations are milliseconds.
type DinoConfig struct {
	Playfield  DinoPlayfield    `yaml:"playfield"`
	Physics    DinoPhysics      `yaml:"physics"`
	Player     DinoPlayer       `yaml:"player"`
	Ground     DinoGround       `yaml:"ground"`
	Obstacles  DinoObstacles    `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Session    SessionConfig    `yaml:"session"`
}

// DinoPlayfield is the unscaled logical size of the game.
type DinoPlayfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DinoPhysics defines motion rates, in units per millisecond.
type DinoPhysics struct {
	JumpSpeed float64 `yaml:"jump_speed"`
	Gravity   float64 `yaml:"gravity"`
	BaseSpeed float64 `yaml:"base_speed"` // Ground and obstacle scroll speed
}

// DinoPlayer defines player geometry and jump thresholds.
type DinoPlayer struct {
	X             float64 `yaml:"x"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	GroundGap     float64 `yaml:"ground_gap"`      // Distance between feet and the floor
	MinJumpHeight float64 `yaml:"min_jump_height"` // Clearance above the standing line
	MaxJumpHeight float64 `yaml:"max_jump_height"`
	RunFrameMs    float64 `yaml:"run_frame_ms"` // Visible duration of one running-leg frame
}

// DinoGround defines the scrolling ground strip.
type DinoGround struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DinoObstacles defines spawning cadence, collision fairness and the catalog.
type DinoObstacles struct {
	MinIntervalMs float64        `yaml:"min_interval_ms"`
	MaxIntervalMs float64        `yaml:"max_interval_ms"`
	SpawnOffset   float64        `yaml:"spawn_offset"` // Spawn x as a multiple of playfield width
	Shrink        float64        `yaml:"shrink"`       // Hitbox shrink divisor, > 1
	Kinds         []ObstacleKind `yaml:"kinds"`
}

// ObstacleKind is one entry of the obstacle catalog.
type ObstacleKind struct {
	Name   string  `yaml:"name"`
	Sprite string  `yaml:"sprite"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DifficultyConfig defines the speed ramp.
type DifficultyConfig struct {
	SpeedIncrement float64 `yaml:"speed_increment"` // Multiplier gain per millisecond
}

// SessionConfig defines how the life-cycle couples to the host.
type SessionConfig struct {
	RestartCooldownMs float64 `yaml:"restart_cooldown_ms"`
	AutoStart         bool    `yaml:"auto_start"` // Skip the start gesture
	HostReset         bool    `yaml:"host_reset"` // Only the host may reset after game over
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Empty means "use config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// IncrementFactorForPreset returns how much a preset scales the speed increment.
func IncrementFactorForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.5
	case DifficultyHard:
		return 2.5
	default:
		return 1.0
	}
}

// Validate checks the invariants the simulation relies on.
func (c DinoConfig) Validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("%w: playfield must have positive size", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player must have positive size", ErrInvalidConfig)
	case c.Ground.Width <= 0 || c.Ground.Height <= 0:
		return fmt.Errorf("%w: ground must have positive size", ErrInvalidConfig)
	case c.Player.MinJumpHeight < 0 || c.Player.MaxJumpHeight < c.Player.MinJumpHeight:
		return fmt.Errorf("%w: need 0 <= min_jump_height <= max_jump_height", ErrInvalidConfig)
	case c.Physics.JumpSpeed <= 0 || c.Physics.Gravity <= 0 || c.Physics.BaseSpeed <= 0:
		return fmt.Errorf("%w: physics rates must be positive", ErrInvalidConfig)
	case c.Player.RunFrameMs <= 0:
		return fmt.Errorf("%w: run_frame_ms must be positive", ErrInvalidConfig)
	case c.Obstacles.MinIntervalMs <= 0 || c.Obstacles.MaxIntervalMs < c.Obstacles.MinIntervalMs:
		return fmt.Errorf("%w: need 0 < min_interval_ms <= max_interval_ms", ErrInvalidConfig)
	case c.Obstacles.Shrink <= 1:
		return fmt.Errorf("%w: shrink must be greater than 1", ErrInvalidConfig)
	case len(c.Obstacles.Kinds) == 0:
		return fmt.Errorf("%w: obstacle catalog is empty", ErrInvalidConfig)
	case c.Difficulty.SpeedIncrement < 0:
		return fmt.Errorf("%w: speed_increment must not be negative", ErrInvalidConfig)
	}
	for _, k := range c.Obstacles.Kinds {
		if k.Width <= 0 || k.Height <= 0 {
			return fmt.Errorf("%w: obstacle %q must have positive size", ErrInvalidConfig, k.Name)
		}
	}
	return nil
}
