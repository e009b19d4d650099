package flappy

import (
	"math"

	"github.com/vovakirdan/flappy/internal/sprite"
)

// WelcomeMessage is the splash overlay.
type WelcomeMessage struct {
	Entity
}

// NewWelcomeMessage centers the welcome sprite horizontally.
func NewWelcomeMessage(ctx *Context) *WelcomeMessage {
	img := ctx.Images.Welcome
	x := float64((ctx.Window.Width - img.W()) / 2)
	y := float64(int(float64(ctx.Window.Height) * ctx.Cfg.Overlays.WelcomeYRatio))
	return &WelcomeMessage{Entity: newEntity(ctx, img, x, y)}
}

// Tick draws the message.
func (w *WelcomeMessage) Tick() {
	w.draw()
}

// minPulseAlpha is the dimmest the game-over banner gets.
const minPulseAlpha = 96

// GameOver is the banner shown while the bird falls. Its opacity pulses.
type GameOver struct {
	Entity
	frames int
}

// NewGameOver centers the game-over sprite horizontally.
func NewGameOver(ctx *Context) *GameOver {
	img := ctx.Images.GameOver
	x := float64((ctx.Window.Width - img.W()) / 2)
	y := float64(int(float64(ctx.Window.Height) * ctx.Cfg.Overlays.GameOverYRatio))
	return &GameOver{Entity: newEntity(ctx, img, x, y)}
}

// Alpha returns the opacity for the current frame: fully opaque at the
// start of each pulse period, dimmest halfway through.
func (g *GameOver) Alpha() uint8 {
	period := g.ctx.Cfg.Overlays.PulseSeconds * float64(g.ctx.FPS)
	if period <= 0 {
		return 0xff
	}
	wave := 0.5 + 0.5*math.Cos(2*math.Pi*float64(g.frames)/period)
	return uint8(minPulseAlpha + (0xff-minPulseAlpha)*wave)
}

// Tick draws the banner and advances the pulse.
func (g *GameOver) Tick() {
	g.ctx.Canvas.DrawAlpha(g.Img, int(g.X), int(g.Y), g.Alpha())
	g.frames++
}

// Cutscene is the clip shown after a crash. Tick returns the image for the
// given frame since the cutscene started; Finished reports that the clip
// has nothing more to show.
type Cutscene interface {
	Tick(frame int) *sprite.Sprite
	Finished() bool
}

// CutsceneFunc builds the cutscene for a finished round.
type CutsceneFunc func(ctx *Context, score int) Cutscene
