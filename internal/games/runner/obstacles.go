package runner

import (
	"github.com/striderun/strider/internal/config"
	"github.com/striderun/strider/internal/core"
)

// Obstacle is one live obstacle. Dimensions and the vertical position are
// fixed at spawn from the catalog entry; only X moves, strictly leftward.
type Obstacle struct {
	X    float64
	Y    float64 // Top edge; ground obstacles rest on the ground line
	Kind config.ObstacleType
}

// Hitbox returns the obstacle's collision box.
func (o Obstacle) Hitbox() core.Box {
	return core.NewBox(o.X, o.Y, o.Kind.Width, o.Kind.Height)
}

// scrollObstacles moves every obstacle leftward by speed*dt.
func (w *World) scrollObstacles(dt float64) {
	for i := range w.Obstacles {
		w.Obstacles[i].X -= w.Speed * dt
	}
}

// despawnObstacles drops obstacles that are fully off the left edge.
// The filter is stable: spawn order is preserved.
func (w *World) despawnObstacles() {
	live := w.Obstacles[:0]
	for _, o := range w.Obstacles {
		if o.X+o.Kind.Width > 0 {
			live = append(live, o)
		}
	}
	w.Obstacles = live
}

// updateSpawnCountdown decrements the countdown by dt in milliseconds and
// reports whether it expired. Multiple crossings within one oversized tick
// are not batched; at most one spawn happens per tick.
func (w *World) updateSpawnCountdown(dt float64) bool {
	w.SpawnCountdown -= dt * 1000
	return w.SpawnCountdown <= 0
}

// spawnObstacle creates one obstacle of a uniformly-random catalog type at
// the right world edge and re-arms the countdown. A non-zero altitude in
// the catalog lifts the obstacle's bottom edge above the ground line.
func (w *World) spawnObstacle() {
	catalog := w.cfg.Obstacles
	if len(catalog) == 0 {
		w.SpawnCountdown = w.rollSpawnInterval()
		return
	}

	kind := catalog[w.rng.Intn(len(catalog))]
	w.Obstacles = append(w.Obstacles, Obstacle{
		X:    w.cfg.World.Width,
		Y:    w.cfg.World.GroundY - kind.Altitude - kind.Height,
		Kind: kind,
	})
	w.SpawnCountdown = w.rollSpawnInterval()
}

// rollSpawnInterval draws the next countdown uniformly from the configured
// window, divided by the current speed ratio: the faster the world
// scrolls, the sooner the next obstacle, keeping spatial density roughly
// constant.
func (w *World) rollSpawnInterval() float64 {
	lo := w.cfg.Spawn.IntervalMinMS
	hi := w.cfg.Spawn.IntervalMaxMS
	interval := lo
	if hi > lo {
		interval = lo + w.rng.Float64()*(hi-lo)
	}

	if w.cfg.Physics.InitialSpeed > 0 && w.Speed > 0 {
		interval /= w.Speed / w.cfg.Physics.InitialSpeed
	}
	return interval
}
