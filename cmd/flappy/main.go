// flappy is a Flappy Bird clone that plays in the terminal, in a window,
// in the browser, or over SSH.
//
// Usage:
//
//	flappy play      - Play in the terminal
//	flappy window    - Play in a desktop window
//	flappy serve     - Start SSH server for remote play
//	flappy assets    - Show which sprites load from disk
//	flappy config    - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate (default from config: 30)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - Preset: easy, normal, hard
//	--assets <dir>        - Sprite and sound directory
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagAssets     string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - a side-scrolling bird game",
	Long: `Flappy is a Flappy Bird clone. Tap to flap through the gaps between
pipes; every pair passed scores a point.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  assets   - Show the sprite manifest
  config   - Print the effective configuration

Examples:
  flappy play
  flappy play --difficulty hard --seed 42
  flappy window --scale 2
  flappy serve --ssh :2222
  flappy config --config ./my-flappy.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = value from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset directory (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(configCmd)
}
