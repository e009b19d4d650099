// Package desktop is the windowed host for the game, built on Ebitengine.
// It also serves the browser build, since Ebitengine targets WebAssembly
// with the same API.
package desktop

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/flappy"
)

// Host adapts a flappy.Game to ebiten.Game. Ebitengine calls Update at the
// configured TPS, so every Update is exactly one game Step.
type Host struct {
	game    *flappy.Game
	events  *core.EventQueue
	width   int
	height  int
	touches []ebiten.TouchID
	last    flappy.StepResult
	logger  *log.Logger
}

// NewHost wraps game for a window of cfg's logical size.
func NewHost(game *flappy.Game, cfg config.Config, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Host{
		game:   game,
		events: core.NewEventQueue(),
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
		logger: logger,
	}
}

// Update polls input and runs one frame.
func (h *Host) Update() error {
	h.touches = pollInput(h.events, h.touches)
	if ebiten.IsWindowBeingClosed() {
		h.events.Push(core.Quit())
	}

	h.last = h.game.Step(h.events.Drain())
	if h.last.Quit {
		h.logger.Debug("window closing", "score", h.last.Score)
		return ebiten.Termination
	}
	return nil
}

// Draw copies the last frame to the screen.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.WritePixels(h.game.Frame().Pix)
}

// Layout keeps the logical screen at the game's size; Ebitengine scales it
// to the window.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.width, h.height
}

// Options tunes the window.
type Options struct {
	Title string
	Scale float64 // Initial window size as a multiple of the game size
}

// Run opens a window and blocks until the game quits or the window closes.
func Run(game *flappy.Game, cfg config.Config, opts Options, logger *log.Logger) error {
	if opts.Title == "" {
		opts.Title = "Flappy"
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(int(float64(cfg.Window.Width)*opts.Scale), int(float64(cfg.Window.Height)*opts.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.Timing.FPS)

	return ebiten.RunGame(NewHost(game, cfg, logger))
}
