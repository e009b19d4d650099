// flappy-web is the browser build of the game. It uses the embedded
// default configuration and generated sprites and sounds, so the wasm
// binary needs no files next to it.
//
// Build:
//
//	GOOS=js GOARCH=wasm go build -o flappy.wasm ./cmd/flappy-web
package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/flappy"
	"github.com/vovakirdan/flappy/internal/platform/desktop"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy-web",
	})

	cfg := config.Default()
	images := assets.NewLoader(nil, cfg.Assets.Bird, logger)
	sounds := desktop.NewAudio(nil, cfg.Audio.SampleRate, logger)

	game := flappy.New(cfg, images, sounds, time.Now().UnixNano(), logger)
	if err := desktop.Run(game, cfg, desktop.Options{Title: "Flappy"}, logger); err != nil {
		logger.Fatal("game stopped", "err", err)
	}
}
