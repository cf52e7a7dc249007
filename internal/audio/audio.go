// Package audio plays short synthesized cues for game events using the
// beep library. Playback is strictly one-way: initialization or playback
// failures disable sound and are never surfaced to the simulation.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/striderun/strider/internal/core"
)

const sampleRate = beep.SampleRate(48000)

// Player mixes event cues into a single speaker stream.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewPlayer creates an uninitialized player. Call Init before use; a
// player that was never initialized silently ignores every cue.
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
	}
}

// Init sets up the audio device. Returns the speaker error for logging,
// but callers are free to ignore it: cues on an uninitialized player are
// no-ops.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops all playback.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Clear()
	p.initialized = false
}

// SetMuted enables or disables cue playback without tearing down the
// audio device.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Play queues the cue for the given event. Unknown events are ignored.
func (p *Player) Play(e core.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}

	var s beep.Streamer
	switch e {
	case core.EventJump:
		s = newSweep(sampleRate, 400, 800, 120*time.Millisecond)
	case core.EventDuck:
		s = newSweep(sampleRate, 300, 200, 80*time.Millisecond)
	case core.EventMilestone:
		s = beep.Seq(
			newSweep(sampleRate, 900, 900, 80*time.Millisecond),
			newSweep(sampleRate, 1200, 1200, 80*time.Millisecond),
		)
	case core.EventGameOver:
		s = newSweep(sampleRate, 600, 150, 400*time.Millisecond)
	default:
		return
	}

	p.mixer.Add(s)
}

// PlayAll queues cues for every event of a tick.
func (p *Player) PlayAll(events []core.Event) {
	for _, e := range events {
		p.Play(e)
	}
}
