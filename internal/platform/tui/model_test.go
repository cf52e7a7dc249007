package tui

import (
	"path/filepath"
	"testing"

	"github.com/striderun/strider/internal/core"
	"github.com/striderun/strider/internal/storage"
)

// scriptedGame replays a fixed sequence of states, one per Step call.
// The last state repeats once the script runs out.
type scriptedGame struct {
	states []core.GameState
	step   int
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) { g.step = 0 }

func (g *scriptedGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{State: g.State()}
}

func (g *scriptedGame) Render(*core.Screen) {}

func (g *scriptedGame) State() core.GameState {
	i := core.Min(g.step, len(g.states)-1)
	if g.step < len(g.states) {
		g.step++
	}
	return g.states[i]
}

func tickModel(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.handleTick()
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("handleTick returned %T, expected Model", next)
	}
	return model
}

func TestEveryEpisodeScoreIsSaved(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Two episodes separated by an in-game confirm restart: game over at
	// 10, a running tick, game over at 20.
	game := &scriptedGame{states: []core.GameState{
		{GameOver: true, Score: 10},
		{GameOver: false, Score: 0},
		{GameOver: true, Score: 20},
	}}

	m := NewModel(game, store, nil, core.RuntimeConfig{
		ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1,
	})

	for i := 0; i < 3; i++ {
		m = tickModel(t, m)
	}

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected both episodes saved, got %d scores", len(scores))
	}
	if scores[0].Score != 20 || scores[1].Score != 10 {
		t.Errorf("Saved scores = [%d %d], expected [20 10]", scores[0].Score, scores[1].Score)
	}
}

func TestScoreSavedOncePerGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// The game-over state persists across ticks until the player acts.
	game := &scriptedGame{states: []core.GameState{
		{GameOver: true, Score: 10},
	}}

	m := NewModel(game, store, nil, core.RuntimeConfig{
		ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1,
	})

	for i := 0; i < 5; i++ {
		m = tickModel(t, m)
	}

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Errorf("Lingering game over should save once, got %d scores", len(scores))
	}
}
