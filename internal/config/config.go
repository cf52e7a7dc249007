// Package config provides YAML-based game configuration loading and
// difficulty presets for the runner platform.
package config

// RunnerConfig contains all tunable parameters for the runner simulation.
type RunnerConfig struct {
	Physics   RunnerPhysics  `yaml:"physics"`
	World     RunnerWorld    `yaml:"world"`
	Player    RunnerPlayer   `yaml:"player"`
	Spawn     RunnerSpawn    `yaml:"spawn"`
	Obstacles []ObstacleType `yaml:"obstacles"`
}

// RunnerPhysics defines the kinematics and progression constants.
// Units are world pixels and seconds.
type RunnerPhysics struct {
	Gravity      float64 `yaml:"gravity"`       // Downward acceleration, px/s^2
	JumpSpeed    float64 `yaml:"jump_speed"`    // Upward impulse magnitude, px/s
	InitialSpeed float64 `yaml:"initial_speed"` // Scroll speed at episode start, px/s
	SpeedRamp    float64 `yaml:"speed_ramp"`    // Scroll speed gain, px/s^2
	MaxTickMS    float64 `yaml:"max_tick_ms"`   // dt clamp to avoid tunneling on frame drops
}

// RunnerWorld defines the fixed world dimensions in pixels.
type RunnerWorld struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"` // Y of the ground line; entity bottoms rest here
}

// RunnerPlayer defines the player placement and hitboxes.
// Running and ducking use different hitbox dimensions.
type RunnerPlayer struct {
	X          float64 `yaml:"x"`
	RunWidth   float64 `yaml:"run_width"`
	RunHeight  float64 `yaml:"run_height"`
	DuckWidth  float64 `yaml:"duck_width"`
	DuckHeight float64 `yaml:"duck_height"`
}

// RunnerSpawn defines the obstacle spawn countdown bounds in milliseconds.
// The effective interval is divided by the current speed ratio so spatial
// obstacle density stays roughly constant as the game speeds up.
type RunnerSpawn struct {
	IntervalMinMS float64 `yaml:"interval_min_ms"`
	IntervalMaxMS float64 `yaml:"interval_max_ms"`
}

// ObstacleType is one entry of the static obstacle catalog.
// Altitude is the gap between the obstacle's bottom edge and the ground;
// zero means the obstacle sits on the ground.
type ObstacleType struct {
	Name     string  `yaml:"name"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Altitude float64 `yaml:"altitude"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values map to the
// empty preset, meaning "use config as-is".
func ParsePreset(s string) DifficultyPreset {
	switch s {
	case "easy", "normal", "hard", "fixed":
		return DifficultyPreset(s)
	default:
		return ""
	}
}
