package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const cueVolume = 0.4

// sweep is a finite sine tone whose frequency glides linearly from one
// value to another, with a fast attack and linear decay envelope so cues
// never click.
type sweep struct {
	sr      beep.SampleRate
	from    float64
	to      float64
	pos     int
	samples int
	phase   float64
}

// newSweep creates a sweep streamer. Equal from/to produce a plain tone.
func newSweep(sr beep.SampleRate, from, to float64, d time.Duration) beep.Streamer {
	return &sweep{
		sr:      sr,
		from:    from,
		to:      to,
		samples: sr.N(d),
	}
}

func (g *sweep) Stream(samples [][2]float64) (int, bool) {
	if g.pos >= g.samples {
		return 0, false
	}

	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}

		t := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*t
		g.phase += freq / float64(g.sr)

		v := math.Sin(2*math.Pi*g.phase) * envelope(t) * cueVolume
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}

	return len(samples), true
}

func (g *sweep) Err() error {
	return nil
}

// envelope shapes the cue amplitude: ~5ms ramp-in, linear fade-out.
func envelope(t float64) float64 {
	attack := t * 20
	if attack > 1 {
		attack = 1
	}
	return attack * (1 - t)
}
