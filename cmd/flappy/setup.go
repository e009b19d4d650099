package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/config"
)

// loadConfig applies the global flags on top of the loaded configuration.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagFPS > 0 {
		cfg.Timing.FPS = flagFPS
	}
	if flagAssets != "" {
		cfg.Assets.Dir = flagAssets
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("after applying %s preset: %w", preset, err)
	}
	return cfg, nil
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// assetFS opens the asset directory. A missing directory is not an error:
// the game runs on placeholders.
func assetFS(dir string, logger *log.Logger) fs.FS {
	if dir == "" {
		return nil
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		logger.Warn("asset directory not found, using placeholders", "dir", dir)
		return nil
	}
	return os.DirFS(dir)
}

// newImages creates the sprite loader for cfg.
func newImages(cfg config.Config, fsys fs.FS, logger *log.Logger) *assets.Loader {
	return assets.NewLoader(fsys, cfg.Assets.Bird, logger)
}

// seed returns --seed, or the current time when unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
