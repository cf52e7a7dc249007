package runner

import (
	"fmt"

	"github.com/striderun/strider/internal/config"
	"github.com/striderun/strider/internal/core"
	"github.com/striderun/strider/internal/registry"
)

// Visual characters for rendering
const (
	PlayerBody = '█'
	PlayerHead = '◆'
	PlayerLeg1 = '╱'
	PlayerLeg2 = '╲'
	CactusChar = '▓'
	BirdChar   = '▰'
	GroundChar = '═'
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 2

// Game adapts the World simulation to the platform's Game interface.
// It runs the world at a fixed dt of 1/TickRate and projects world pixels
// onto the character screen for rendering.
type Game struct {
	world     *World
	cfg       config.RunnerConfig
	runtime   core.RuntimeConfig
	paused    bool
	highScore int
	tickCount int
	legFrame  int
}

// configPath stores the custom config path set via CLI.
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a new runner game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Strider"
}

// SetHighScore supplies the persisted record for the HUD. The platform
// reads it from storage once at startup.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// HighScore returns the record shown in the HUD, including a record set
// during the current session.
func (g *Game) HighScore() int {
	if g.world != nil && g.world.DisplayScore() > g.highScore {
		return g.world.DisplayScore()
	}
	return g.highScore
}

// World exposes the underlying simulation, mainly for tests and headless
// drivers.
func (g *Game) World() *World {
	return g.world
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRunnerPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.world = NewWorld(cfg, runtime.Seed)
	g.paused = false
	g.tickCount = 0
	g.legFrame = 0
}

// Step advances the game by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.world.Phase == PhaseRunning {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Restart after game over behaves like confirm.
	if in.Has(core.ActionRestart) && g.world.Phase == PhaseGameOver {
		in.Set(core.ActionConfirm)
	}

	g.tickCount++
	g.legFrame = (g.legFrame + 1) % 10

	dt := 1.0 / float64(g.runtime.TickRate)
	events := g.world.Tick(dt, in)

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.DisplayScore(),
		GameOver: g.world.Phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// --- Rendering ---

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	groundRow := g.cellY(dst, g.cfg.World.GroundY)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar)

	for _, o := range g.world.Obstacles {
		g.drawObstacle(dst, o)
	}
	g.drawPlayer(dst)
	g.drawHUD(dst)

	switch {
	case g.world.Phase == PhaseWaiting:
		g.drawCenteredMessage(dst, "STRIDER", "Press Space to run")
	case g.world.Phase == PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Space to run again", g.world.DisplayScore()))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// cellX projects a world x-coordinate onto a screen column.
func (g *Game) cellX(dst *core.Screen, x float64) int {
	return int(x / g.cfg.World.Width * float64(dst.Width()))
}

// cellY projects a world y-coordinate onto a screen row below the HUD.
func (g *Game) cellY(dst *core.Screen, y float64) int {
	rows := dst.Height() - hudRows - 1
	if rows < 1 {
		rows = 1
	}
	return hudRows + int(y/g.cfg.World.Height*float64(rows))
}

// cellBox projects a world box onto a screen rect, at least 1x1 so small
// obstacles stay visible on narrow terminals.
func (g *Game) cellBox(dst *core.Screen, b core.Box) core.Rect {
	x0 := g.cellX(dst, b.X)
	y0 := g.cellY(dst, b.Y)
	x1 := g.cellX(dst, b.Right())
	y1 := g.cellY(dst, b.Bottom())
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

func (g *Game) drawObstacle(dst *core.Screen, o Obstacle) {
	r := g.cellBox(dst, o.Hitbox())
	ch, color := CactusChar, core.ColorGreen
	if o.Kind.Altitude > 0 {
		ch, color = BirdChar, core.ColorBrightYellow
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, y, ch, color)
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen) {
	r := g.cellBox(dst, g.world.Player.Hitbox(g.cfg))
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.Set(x, y, PlayerBody)
		}
	}
	dst.Set(r.Right()-1, r.Y, PlayerHead)

	// Running legs animation under the hitbox
	if g.world.Phase == PhaseRunning && g.world.Player.Grounded(g.cfg) {
		if g.legFrame < 5 {
			dst.Set(r.X, r.Bottom()-1, PlayerLeg1)
		} else {
			dst.Set(r.X+1, r.Bottom()-1, PlayerLeg2)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" HI %05d  %05d ", g.HighScore(), g.world.DisplayScore())
	dst.DrawTextColored(dst.Width()-len(hud)-1, 0, hud, core.ColorGray)
	dst.DrawText(2, 0, " Strider ")
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
