// strider is a terminal endless-runner in the spirit of the Chrome dino game.
//
// Usage:
//
//	strider play             - Play the runner
//	strider scores           - Show high scores
//	strider serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.strider/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "strider",
	Short: "Strider - an endless runner in your terminal",
	Long: `Strider is a terminal endless-runner. Jump over cacti, duck under
birds, and survive as long as you can while the world speeds up.

Available commands:
  play     - Play the runner
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  strider play
  strider play --difficulty hard
  strider scores
  strider serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.strider/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
