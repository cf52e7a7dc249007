package runner

import (
	"github.com/striderun/strider/internal/config"
	"github.com/striderun/strider/internal/core"
)

// Status is the player's movement state. Running and ducking have
// different hitbox dimensions, so the ground clamp differs by status.
type Status int

const (
	StatusRunning Status = iota
	StatusJumping
	StatusDucking
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusJumping:
		return "jumping"
	case StatusDucking:
		return "ducking"
	default:
		return "unknown"
	}
}

// Player is the runner's vertical state. Y is the hitbox top edge in
// world pixels from the top; VY is positive downward, matching Y.
type Player struct {
	Y      float64
	VY     float64
	Status Status

	// duckHeld tracks the held duck input so a player landing with the
	// key still down comes down ducking.
	duckHeld bool
}

// newPlayer returns a player standing on the ground.
func newPlayer(cfg config.RunnerConfig) Player {
	p := Player{Status: StatusRunning}
	p.Y = groundY(cfg, p.Status)
	return p
}

// groundY returns the ground clamp for the given status: the Y at which
// the hitbox bottom rests on the ground line.
func groundY(cfg config.RunnerConfig, s Status) float64 {
	if s == StatusDucking {
		return cfg.World.GroundY - cfg.Player.DuckHeight
	}
	return cfg.World.GroundY - cfg.Player.RunHeight
}

// Grounded reports whether the player sits exactly at the ground clamp
// for its current status.
func (p *Player) Grounded(cfg config.RunnerConfig) bool {
	return p.Y == groundY(cfg, p.Status)
}

// Hitbox returns the player's collision box for its current status.
func (p *Player) Hitbox(cfg config.RunnerConfig) core.Box {
	w, h := cfg.Player.RunWidth, cfg.Player.RunHeight
	if p.Status == StatusDucking {
		w, h = cfg.Player.DuckWidth, cfg.Player.DuckHeight
	}
	return core.NewBox(cfg.Player.X, p.Y, w, h)
}

// integrate advances the vertical motion by dt seconds using
// semi-implicit Euler: velocity first, then position from the new
// velocity. Landing clamps position to the ground and zeroes velocity.
func (p *Player) integrate(dt float64, cfg config.RunnerConfig) {
	gy := groundY(cfg, p.Status)

	p.VY += cfg.Physics.Gravity * dt
	p.Y += p.VY * dt

	if p.Y >= gy {
		p.Y = gy
		p.VY = 0
		if p.Status == StatusJumping {
			if p.duckHeld {
				p.Status = StatusDucking
				p.Y = groundY(cfg, p.Status)
			} else {
				p.Status = StatusRunning
			}
		}
	}
}

// jump applies the upward impulse if the player is grounded for its
// current status. A single impulse, no double jump, no variable height.
// Returns true if the jump happened.
func (p *Player) jump(cfg config.RunnerConfig) bool {
	if !p.Grounded(cfg) {
		return false
	}
	p.VY = -cfg.Physics.JumpSpeed
	p.Status = StatusJumping
	return true
}

// duck switches to the ducking hitbox. Velocity is untouched; an
// airborne player only changes dimensions, which shifts its ground
// clamp target. Returns true if the status actually changed.
func (p *Player) duck() bool {
	p.duckHeld = true
	if p.Status == StatusDucking {
		return false
	}
	p.Status = StatusDucking
	return true
}

// standUp reverts a duck on key release. A player that is airborne goes
// back to the jumping status; a grounded one snaps to the running clamp.
func (p *Player) standUp(cfg config.RunnerConfig) {
	p.duckHeld = false
	if p.Status != StatusDucking {
		return
	}
	if p.Y == groundY(cfg, StatusDucking) && p.VY == 0 {
		p.Status = StatusRunning
		p.Y = groundY(cfg, p.Status)
	} else {
		p.Status = StatusJumping
	}
}
