package runner

import (
	"strings"
	"testing"

	"github.com/striderun/strider/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical results
	inputSequence := make([]core.InputFrame, 400)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i == 0 || i%45 == 0 {
			inputSequence[i].Set(core.ActionConfirm)
		}
	}

	run := func() (core.GameState, int) {
		g := New()
		g.Reset(testRuntime(12345))
		var state core.GameState
		for _, in := range inputSequence {
			result := g.Step(in)
			state = result.State
			if state.GameOver {
				break
			}
		}
		return state, g.tickCount
	}

	state1, ticks1 := run()
	state2, ticks2 := run()

	if state1.Score != state2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", state1.Score, state2.Score)
	}
	if ticks1 != ticks2 {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", ticks1, ticks2)
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))

	// Start and play a few ticks
	start := core.NewInputFrame()
	start.Set(core.ActionConfirm)
	g.Step(start)
	for i := 0; i < 50; i++ {
		g.Step(core.NewInputFrame())
	}

	g.Reset(testRuntime(42))

	state := g.State()
	if state.Score != 0 {
		t.Errorf("Reset should clear score, got %d", state.Score)
	}
	if state.GameOver {
		t.Error("Reset should clear gameOver flag")
	}
	if state.Paused {
		t.Error("Reset should clear paused flag")
	}
	if g.World().Phase != PhaseWaiting {
		t.Errorf("Reset should return to waiting, got %v", g.World().Phase)
	}
	if g.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.tickCount)
	}
}

func TestGameResetGuardsTickRate(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 0, Seed: 1})

	// A zero tick rate must not produce an infinite dt
	start := core.NewInputFrame()
	start.Set(core.ActionConfirm)
	g.Step(start)
	g.Step(core.NewInputFrame())

	if g.World().Score <= 0 {
		t.Error("Game should still advance with a guarded tick rate")
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	start := core.NewInputFrame()
	start.Set(core.ActionConfirm)
	g.Step(start)

	pauseInput := core.NewInputFrame()
	pauseInput.Set(core.ActionPause)
	g.Step(pauseInput)

	if !g.State().Paused {
		t.Error("Game should be paused")
	}

	scoreBefore := g.World().Score
	yBefore := g.World().Player.Y

	g.Step(core.NewInputFrame())

	if g.World().Score != scoreBefore {
		t.Error("Score should not accumulate while paused")
	}
	if g.World().Player.Y != yBefore {
		t.Error("Player should not move while paused")
	}

	g.Step(pauseInput)
	if g.State().Paused {
		t.Error("Game should be unpaused")
	}
}

func TestGamePauseOnlyWhileRunning(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	pauseInput := core.NewInputFrame()
	pauseInput.Set(core.ActionPause)
	g.Step(pauseInput)

	if g.State().Paused {
		t.Error("Pause should be ignored on the waiting screen")
	}
}

func TestGameRestartAction(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	start := core.NewInputFrame()
	start.Set(core.ActionConfirm)
	g.Step(start)

	// Force a collision
	w := g.World()
	kind := w.Config().Obstacles[1]
	w.Obstacles = append(w.Obstacles, Obstacle{
		X:    w.Config().Player.X,
		Y:    w.Config().World.GroundY - kind.Height,
		Kind: kind,
	})
	result := g.Step(core.NewInputFrame())
	if !result.State.GameOver {
		t.Fatal("Setup failed: expected game over")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	result = g.Step(restart)

	if result.State.GameOver {
		t.Error("Restart after game over should begin a new episode")
	}
	if g.World().Phase != PhaseRunning {
		t.Errorf("Phase after restart = %v, expected running", g.World().Phase)
	}
}

func TestGameHighScoreTracksSession(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.SetHighScore(50)

	if g.HighScore() != 50 {
		t.Errorf("HighScore() = %d, expected stored 50", g.HighScore())
	}

	// A better session score takes over
	start := core.NewInputFrame()
	start.Set(core.ActionConfirm)
	g.Step(start)
	g.World().Score = 120
	g.Step(core.NewInputFrame())

	if g.HighScore() < 120 {
		t.Errorf("HighScore() = %d, expected session score to win", g.HighScore())
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	str := screen.String()
	if !strings.Contains(str, "STRIDER") {
		t.Error("Waiting screen should show the title banner")
	}
	if !strings.ContainsRune(str, GroundChar) {
		t.Error("Render should draw the ground line")
	}

	// Start and render the running state
	start := core.NewInputFrame()
	start.Set(core.ActionConfirm)
	g.Step(start)
	g.Render(screen)

	if !strings.ContainsRune(screen.String(), PlayerBody) {
		t.Error("Running screen should draw the player")
	}

	// Game over banner
	w := g.World()
	kind := w.Config().Obstacles[1]
	w.Obstacles = append(w.Obstacles, Obstacle{
		X:    w.Config().Player.X,
		Y:    w.Config().World.GroundY - kind.Height,
		Kind: kind,
	})
	g.Step(core.NewInputFrame())
	g.Render(screen)

	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("Game over screen should show the banner")
	}
}

func TestGameEventsSurface(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	start := core.NewInputFrame()
	start.Set(core.ActionConfirm)
	g.Step(start)

	// Grounded confirm surfaces the jump cue through StepResult
	jump := core.NewInputFrame()
	jump.Set(core.ActionConfirm)
	result := g.Step(jump)

	if !hasEvent(result.Events, core.EventJump) {
		t.Error("StepResult should carry the jump cue")
	}
}
