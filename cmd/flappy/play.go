package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/flappy"
	"github.com/vovakirdan/flappy/internal/platform/tui"
	"github.com/vovakirdan/flappy/internal/sound"
	"github.com/vovakirdan/flappy/internal/sound/beepsound"
)

var (
	flagLogFile string
	flagMute    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal. Each character cell shows two pixels,
so a larger terminal gives a sharper picture.

Controls:
  Space/Up/Click  - Flap (and start from the splash screen)
  Esc/Q/Ctrl+C    - Quit

Examples:
  flappy play
  flappy play --difficulty easy
  flappy play --mute --log-file flappy.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) error {
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "flappy")
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
		b := beepsound.New(fsys, cfg.Audio.SampleRate, logger)
		if err := b.Init(); err != nil {
			logger.Warn("audio unavailable, continuing muted", "err", err)
		} else {
			defer b.Close()
			sounds = b
		}
	}

	// Get terminal size early so the first frame fits
	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = cfg.Timing.FPS
	rc.Seed = seed()

	game := flappy.New(cfg, newImages(cfg, fsys, logger), sounds, rc.Seed, logger)
	logger.Info("starting", "seed", rc.Seed, "fps", rc.TickRate, "size", fmt.Sprintf("%dx%d", rc.ScreenW, rc.ScreenH))

	if err := tui.Run(game, rc); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("bye", "rounds", game.Round(), "score", game.Score().Value())
	return nil
}
