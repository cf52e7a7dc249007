// Package runner implements an endless-runner simulation: a ground-bound
// player dodges scrolling obstacles by jumping and ducking while score and
// scroll speed ramp up over the episode.
//
// The simulation is deterministic and headless. All state lives in World;
// the only way to advance it is Tick, which applies queued input, runs
// kinematics, scrolls and spawns obstacles, and checks collisions, in that
// order. The platform adapter in game.go drives it at a fixed tick rate.
package runner

import (
	"math"
	"math/rand"

	"github.com/striderun/strider/internal/config"
	"github.com/striderun/strider/internal/core"
)

// Phase is the overall mode of the game.
type Phase int

const (
	// PhaseWaiting is the idle state before the first episode.
	PhaseWaiting Phase = iota
	// PhaseRunning is an episode in progress.
	PhaseRunning
	// PhaseGameOver follows a collision; confirm starts a new episode.
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// milestoneStep is the score interval between milestone cues.
const milestoneStep = 100

// World is the complete simulation state. Every counter that evolves
// between ticks is an explicit field; there is no hidden state besides
// the RNG stream.
type World struct {
	Phase     Phase
	Player    Player
	Obstacles []Obstacle

	Score float64 // Accumulated score; display floor(Score)
	Speed float64 // Current scroll speed, px/s

	// SpawnCountdown is the time until the next obstacle spawn, in
	// milliseconds. Reset to a random interval after every spawn.
	SpawnCountdown float64

	cfg           config.RunnerConfig
	rng           *rand.Rand
	lastMilestone int
}

// NewWorld creates a world in the waiting phase with the given config and
// RNG seed. The same seed and input sequence always produce the same run.
func NewWorld(cfg config.RunnerConfig, seed int64) *World {
	w := &World{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	w.Phase = PhaseWaiting
	w.Player = newPlayer(cfg)
	w.Speed = cfg.Physics.InitialSpeed
	return w
}

// Config returns the world's configuration.
func (w *World) Config() config.RunnerConfig {
	return w.cfg
}

// DisplayScore returns the score as shown to the player.
func (w *World) DisplayScore() int {
	return int(math.Floor(w.Score))
}

// startEpisode resets all per-episode state: player on the ground,
// no obstacles, zero score, initial speed, fresh spawn countdown.
func (w *World) startEpisode() {
	w.Phase = PhaseRunning
	w.Player = newPlayer(w.cfg)
	w.Obstacles = w.Obstacles[:0]
	w.Score = 0
	w.Speed = w.cfg.Physics.InitialSpeed
	w.SpawnCountdown = w.rollSpawnInterval()
	w.lastMilestone = 0
}

// Tick advances the simulation by dt seconds, applying the queued input
// events first. It returns the discrete cues produced by this tick.
//
// Oversized frames (first frame, backgrounded terminal) are clamped to
// MaxTickMS so neither the player nor an obstacle can tunnel through
// anything in a single step.
func (w *World) Tick(dt float64, in core.InputFrame) []core.Event {
	if dt < 0 {
		dt = 0
	}
	if maxDT := w.cfg.Physics.MaxTickMS / 1000; dt > maxDT {
		dt = maxDT
	}

	var events []core.Event

	// Input is applied at a fixed point before integration so a jump
	// impulse and the gravity step of the same tick cannot race. A
	// confirm that starts an episode consumes the whole tick: the fresh
	// reset state stays observable and simulation begins next tick.
	wasRunning := w.Phase == PhaseRunning
	events = w.applyInput(in, events)

	if !wasRunning || w.Phase != PhaseRunning {
		return events
	}

	w.Player.integrate(dt, w.cfg)

	w.scrollObstacles(dt)
	w.despawnObstacles()
	if w.updateSpawnCountdown(dt) {
		w.spawnObstacle()
	}

	events = w.accumulateScore(dt, events)

	if w.checkCollision() {
		w.Phase = PhaseGameOver
		events = append(events, core.EventGameOver)
	}

	return events
}

// applyInput processes the frame's queued input events.
// Confirm starts (or restarts) an episode outside of running, and jumps
// while running. Duck only changes the hitbox; it never touches vy.
func (w *World) applyInput(in core.InputFrame, events []core.Event) []core.Event {
	if in.Has(core.ActionConfirm) {
		switch w.Phase {
		case PhaseWaiting, PhaseGameOver:
			w.startEpisode()
			return events
		case PhaseRunning:
			if w.Player.jump(w.cfg) {
				events = append(events, core.EventJump)
			}
		}
	}

	if w.Phase != PhaseRunning {
		return events
	}

	if in.Has(core.ActionDuck) {
		if w.Player.duck() {
			events = append(events, core.EventDuck)
		}
	}
	if in.Has(core.ActionDuckRelease) {
		w.Player.standUp(w.cfg)
	}

	return events
}

// accumulateScore advances score and speed, both monotone within an
// episode, and emits a cue whenever the displayed score crosses a
// milestone boundary.
func (w *World) accumulateScore(dt float64, events []core.Event) []core.Event {
	w.Score += w.Speed * dt / 10
	w.Speed += w.cfg.Physics.SpeedRamp * dt

	if m := w.DisplayScore() / milestoneStep; m > w.lastMilestone {
		w.lastMilestone = m
		events = append(events, core.EventMilestone)
	}
	return events
}

// checkCollision tests the player hitbox against every live obstacle.
// Boxes that merely touch along an edge do not collide.
func (w *World) checkCollision() bool {
	player := w.Player.Hitbox(w.cfg)
	for i := range w.Obstacles {
		if player.Overlaps(w.Obstacles[i].Hitbox()) {
			return true
		}
	}
	return false
}
