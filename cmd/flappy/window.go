package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/flappy"
	"github.com/vovakirdan/flappy/internal/platform/desktop"
	"github.com/vovakirdan/flappy/internal/sound"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window at full resolution.

Controls:
  Space/Up/Click/Touch  - Flap (and start from the splash screen)
  Esc or close window   - Quit

Examples:
  flappy window
  flappy window --scale 1.5 --assets ./assets`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Initial window size as a multiple of the game size")
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "flappy")
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	fsys := assetFS(cfg.Assets.Dir, logger)

	var sounds sound.Set = sound.Nop{}
	if cfg.Audio.Enabled && !flagMute {
		sounds = desktop.NewAudio(fsys, cfg.Audio.SampleRate, logger)
	}

	s := seed()
	logger.Info("starting", "seed", s, "fps", cfg.Timing.FPS)
	game := flappy.New(cfg, newImages(cfg, fsys, logger), sounds, s, logger)
	return desktop.Run(game, cfg, desktop.Options{Scale: flagScale}, logger)
}
