package audio

import (
	"testing"

	"github.com/striderun/strider/internal/core"
)

func TestUninitializedPlayerIsSilentNoOp(t *testing.T) {
	// Never call Init here; test hosts rarely have an audio device.
	p := NewPlayer()

	// Must not panic or block
	p.Play(core.EventJump)
	p.PlayAll([]core.Event{core.EventDuck, core.EventMilestone, core.EventGameOver})
	p.Close()
}

func TestMutedPlayerDropsCues(t *testing.T) {
	p := NewPlayer()
	p.SetMuted(true)

	p.Play(core.EventJump)
	p.Play(core.Event(99)) // unknown cues are ignored too
}

func TestEnvelopeShape(t *testing.T) {
	if envelope(0) != 0 {
		t.Errorf("envelope(0) = %f, expected silence at onset", envelope(0))
	}
	if envelope(1) != 0 {
		t.Errorf("envelope(1) = %f, expected silence at the tail", envelope(1))
	}
	if envelope(0.5) <= 0 {
		t.Errorf("envelope(0.5) = %f, expected audible mid-cue", envelope(0.5))
	}
}
