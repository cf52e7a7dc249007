package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// Kept in sync with defaults/runner.yaml; used as a last-resort fallback
// and as the baseline for headless tests.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			Gravity:      1800,
			JumpSpeed:    650,
			InitialSpeed: 300,
			SpeedRamp:    10,
			MaxTickMS:    100,
		},
		World: RunnerWorld{
			Width:   800,
			Height:  250,
			GroundY: 230,
		},
		Player: RunnerPlayer{
			X:          50,
			RunWidth:   44,
			RunHeight:  47,
			DuckWidth:  59,
			DuckHeight: 26,
		},
		Spawn: RunnerSpawn{
			IntervalMinMS: 600,
			IntervalMaxMS: 1400,
		},
		Obstacles: []ObstacleType{
			{Name: "cactus_small", Width: 17, Height: 35, Altitude: 0},
			{Name: "cactus_large", Width: 25, Height: 50, Altitude: 0},
			{Name: "cactus_cluster", Width: 51, Height: 35, Altitude: 0},
			{Name: "bird", Width: 46, Height: 28, Altitude: 30},
		},
	}
}

// DefaultRunnerYAML returns the embedded default YAML.
func DefaultRunnerYAML() []byte {
	return defaultRunnerYAML
}
