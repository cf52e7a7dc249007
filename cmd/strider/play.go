package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/striderun/strider/internal/audio"
	"github.com/striderun/strider/internal/core"
	"github.com/striderun/strider/internal/games/runner"
	"github.com/striderun/strider/internal/platform/tui"
	"github.com/striderun/strider/internal/registry"
	"github.com/striderun/strider/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the runner",
	Long: `Start a run.

Controls:
  Space/Up/W  - Jump (also starts a run and restarts after game over)
  Down/S      - Duck (hold to stay ducked)
  P/Esc       - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower start, gentler speed-up, sparser obstacles
  normal - Default tuning
  hard   - Faster start, steeper speed-up, denser obstacles
  fixed  - No speed-up, world stays at the starting speed

Examples:
  strider play
  strider play --difficulty easy
  strider play --seed 42 --difficulty fixed
  strider play --config ./my-runner.yaml
  strider play --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	runner.SetConfigPath(flagConfig)
	runner.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create("runner")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Set up sound
	var sound *audio.Player
	if !flagMute {
		sound = audio.NewPlayer()
		if audioErr := sound.Init(); audioErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound unavailable: %v\n", audioErr)
			sound = nil
		}
	}

	runErr := tui.Run(game, store, sound, cfg)

	if sound != nil {
		sound.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
