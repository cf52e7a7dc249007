package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/striderun/strider/internal/audio"
	"github.com/striderun/strider/internal/core"
	"github.com/striderun/strider/internal/registry"
	"github.com/striderun/strider/internal/storage"
)

// highScoreAware is implemented by games that display a persisted record.
type highScoreAware interface {
	SetHighScore(score int)
}

// Model is the Bubble Tea model for running a game.
//
// The terminal delivers key presses but no key releases, so the held duck
// input is synthesized: every duck press re-arms a short countdown, and
// when it expires without a repeat the release event is queued. Terminal
// key autorepeat keeps the countdown alive while the key is held.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	sound      *audio.Player
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	duckTicks  int // Ticks until the synthesized duck release
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// duckHoldFraction of a second that a duck press stays held without a
// key repeat.
const duckHoldFraction = 4

// NewModel creates a new Bubble Tea model for the given game.
// The sound player may be nil (e.g. SSH sessions), in which case cues are
// dropped.
func NewModel(game registry.Game, store *storage.Store, sound *audio.Player, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		sound:      sound,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}

	// Read the persisted record once at startup; a missing or damaged
	// store degrades to zero.
	if aware, ok := game.(highScoreAware); ok && store != nil {
		if best, err := store.HighScore(game.ID()); err == nil {
			aware.SetHighScore(best)
		}
	}

	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues input events; they are applied at the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := NewKeyMapper().MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionDuck:
		m.inputFrame.Set(core.ActionDuck)
		m.duckTicks = core.Max(1, m.config.TickRate/duckHoldFraction)
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	case core.ActionNone:
		// Ignore unrecognized input.
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	// Check for restart with a fresh seed
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Synthesized duck release
	if m.duckTicks > 0 {
		m.duckTicks--
		if m.duckTicks == 0 {
			m.inputFrame.Set(core.ActionDuckRelease)
		}
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// A confirm restart starts a new episode inside the game itself, so
	// re-arm the save as soon as the game is no longer over.
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	if m.sound != nil {
		m.sound.PlayAll(result.Events)
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), m.gameState.Score)
		}
		m.scoreSaved = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, sound *audio.Player, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, sound, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
