package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultRunnerConfig(t *testing.T) {
	cfg := DefaultRunnerConfig()

	if cfg.Physics.Gravity <= 0 {
		t.Error("Gravity must be positive")
	}
	if cfg.Physics.JumpSpeed <= 0 {
		t.Error("JumpSpeed must be positive")
	}
	if cfg.Physics.MaxTickMS <= 0 {
		t.Error("MaxTickMS must be positive")
	}
	if cfg.World.GroundY >= cfg.World.Height {
		t.Error("Ground line must sit inside the world")
	}
	if cfg.Spawn.IntervalMinMS > cfg.Spawn.IntervalMaxMS {
		t.Error("Spawn interval bounds are inverted")
	}
	if len(cfg.Obstacles) == 0 {
		t.Fatal("Obstacle catalog must not be empty")
	}

	// The duck hitbox must be strictly lower than the run hitbox or
	// ducking would be pointless.
	if cfg.Player.DuckHeight >= cfg.Player.RunHeight {
		t.Error("Duck hitbox should be shorter than the run hitbox")
	}

	// At least one obstacle must fly so ducking matters.
	hasAirborne := false
	for _, o := range cfg.Obstacles {
		if o.Altitude > 0 {
			hasAirborne = true
		}
		if o.Width <= 0 || o.Height <= 0 {
			t.Errorf("Obstacle %s has degenerate dimensions", o.Name)
		}
	}
	if !hasAirborne {
		t.Error("Catalog should contain an airborne obstacle")
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg RunnerConfig
	if err := yaml.Unmarshal(DefaultRunnerYAML(), &cfg); err != nil {
		t.Fatalf("Embedded YAML failed to parse: %v", err)
	}

	want := DefaultRunnerConfig()
	if cfg.Physics != want.Physics {
		t.Errorf("Embedded physics %+v differs from defaults %+v", cfg.Physics, want.Physics)
	}
	if cfg.World != want.World {
		t.Errorf("Embedded world %+v differs from defaults %+v", cfg.World, want.World)
	}
	if cfg.Player != want.Player {
		t.Errorf("Embedded player %+v differs from defaults %+v", cfg.Player, want.Player)
	}
	if len(cfg.Obstacles) != len(want.Obstacles) {
		t.Errorf("Embedded catalog has %d entries, defaults have %d",
			len(cfg.Obstacles), len(want.Obstacles))
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "custom.yaml")

	custom := `
physics:
  gravity: 900
  jump_speed: 500
  initial_speed: 200
  speed_ramp: 5
  max_tick_ms: 50
world:
  width: 400
  height: 125
  ground_y: 115
`
	if err := os.WriteFile(cfgPath, []byte(custom), 0o644); err != nil {
		t.Fatalf("Cannot write test config: %v", err)
	}

	cfg, err := LoadRunner(cfgPath)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}

	if cfg.Physics.Gravity != 900 {
		t.Errorf("Gravity = %f, expected 900 from custom config", cfg.Physics.Gravity)
	}
	if cfg.World.Width != 400 {
		t.Errorf("Width = %f, expected 400 from custom config", cfg.World.Width)
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	_, err := LoadRunner("/nonexistent/path/runner.yaml")
	if err == nil {
		t.Error("LoadRunner() with a missing explicit path should fail")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		input    string
		expected DifficultyPreset
	}{
		{"easy", DifficultyEasy},
		{"normal", DifficultyNormal},
		{"hard", DifficultyHard},
		{"fixed", DifficultyFixed},
		{"", ""},
		{"nightmare", ""},
	}

	for _, tc := range tests {
		if got := ParsePreset(tc.input); got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	base := DefaultRunnerConfig()

	easy := DefaultRunnerConfig()
	ApplyRunnerPreset(&easy, DifficultyEasy)
	if easy.Physics.InitialSpeed >= base.Physics.InitialSpeed {
		t.Error("Easy should start slower")
	}
	if easy.Spawn.IntervalMinMS <= base.Spawn.IntervalMinMS {
		t.Error("Easy should spawn less often")
	}

	hard := DefaultRunnerConfig()
	ApplyRunnerPreset(&hard, DifficultyHard)
	if hard.Physics.InitialSpeed <= base.Physics.InitialSpeed {
		t.Error("Hard should start faster")
	}
	if hard.Physics.SpeedRamp <= base.Physics.SpeedRamp {
		t.Error("Hard should ramp faster")
	}

	fixed := DefaultRunnerConfig()
	ApplyRunnerPreset(&fixed, DifficultyFixed)
	if fixed.Physics.SpeedRamp != 0 {
		t.Error("Fixed should freeze the speed ramp")
	}
	if fixed.Physics.InitialSpeed != base.Physics.InitialSpeed {
		t.Error("Fixed should keep the starting speed")
	}

	// Empty preset leaves the config untouched
	plain := DefaultRunnerConfig()
	ApplyRunnerPreset(&plain, "")
	if plain.Physics != base.Physics {
		t.Error("Empty preset should not modify physics")
	}
}
