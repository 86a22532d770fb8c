package config

import (
	_ "embed"
)

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

// DefaultDinoConfig returns the default dino runner configuration.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		Playfield: DinoPlayfield{
			Width:  800,
			Height: 200,
		},
		Physics: DinoPhysics{
			JumpSpeed: 0.6,
			Gravity:   0.4,
			BaseSpeed: 0.5,
		},
		Player: DinoPlayer{
			X:             10,
			Width:         88 / 1.5,
			Height:        94 / 1.5,
			GroundGap:     1.5,
			MinJumpHeight: 85.83, // Apex 150 above the floor
			MaxJumpHeight: 135.83,
			RunFrameMs:    200,
		},
		Ground: DinoGround{
			Width:  2400,
			Height: 24,
		},
		Obstacles: DinoObstacles{
			MinIntervalMs: 500,
			MaxIntervalMs: 2000,
			SpawnOffset:   1.5,
			Shrink:        1.4,
			Kinds: []ObstacleKind{
				{Name: "cactus_1", Sprite: "cactus_1", Width: 48 / 1.5, Height: 100 / 1.5},
				{Name: "cactus_2", Sprite: "cactus_2", Width: 98 / 1.5, Height: 100 / 1.5},
				{Name: "cactus_3", Sprite: "cactus_3", Width: 68 / 1.5, Height: 70 / 1.5},
			},
		},
		Difficulty: DifficultyConfig{
			SpeedIncrement: 0.00001,
		},
		Session: SessionConfig{
			RestartCooldownMs: 1000,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDinoYAML
}
