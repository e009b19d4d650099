// Package flappy implements a Flappy Bird-style game.
// The player steers a bird through gaps between scrolling pipes. The game is
// a pure simulation: hosts feed it input events once per frame and present
// the canvas it draws into.
package flappy

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/sound"
	"github.com/vovakirdan/flappy/internal/sprite"
)

// Context is the state every entity shares: tuning, the frame sink, the
// collaborators and the random source. It is built once per Game; only the
// image set is replaced at round start.
type Context struct {
	Cfg    config.Config
	Window config.WindowConfig
	FPS    int
	Canvas *sprite.Canvas
	Images *assets.Images
	Sounds sound.Set
	Clock  *Clock
	Rng    *rand.Rand
	Log    *log.Logger
}

// NewContext builds a context for cfg with a canvas of the window size.
// A nil sounds or logger is replaced by a silent one.
func NewContext(cfg config.Config, images *assets.Images, sounds sound.Set, seed int64, logger *log.Logger) *Context {
	if sounds == nil {
		sounds = sound.Nop{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Context{
		Cfg:    cfg,
		Window: cfg.Window,
		FPS:    cfg.Timing.FPS,
		Canvas: sprite.NewCanvas(cfg.Window.Width, cfg.Window.Height),
		Images: images,
		Sounds: sounds,
		Clock:  &Clock{fps: cfg.Timing.FPS},
		Rng:    rand.New(rand.NewSource(seed)),
		Log:    logger,
	}
}

// FloorY returns the y coordinate of the floor's top edge.
func (c *Context) FloorY() int {
	return c.Window.FloorY()
}

// Clock counts simulated frames. It never reads wall time, so a run is
// reproducible from its seed and inputs.
type Clock struct {
	fps   int
	frame int
}

// Tick advances the clock by one frame.
func (c *Clock) Tick() { c.frame++ }

// Frame returns the number of frames simulated so far.
func (c *Clock) Frame() int { return c.frame }

// Seconds returns the simulated time in seconds.
func (c *Clock) Seconds() float64 {
	if c.fps <= 0 {
		return 0
	}
	return float64(c.frame) / float64(c.fps)
}
