package flappy

import (
	"strconv"

	"github.com/vovakirdan/flappy/internal/sound"
	"github.com/vovakirdan/flappy/internal/sprite"
)

// Score counts crossed pipe pairs and draws the count with digit sprites.
type Score struct {
	ctx   *Context
	value int
	y     int
}

// NewScore creates a zeroed score drawn near the top of the screen.
func NewScore(ctx *Context) *Score {
	return &Score{
		ctx: ctx,
		y:   int(float64(ctx.Window.Height) * ctx.Cfg.Overlays.ScoreYRatio),
	}
}

// Reset sets the count to zero.
func (s *Score) Reset() { s.value = 0 }

// Add increments the count and plays the point sound.
func (s *Score) Add() {
	s.value++
	s.ctx.Sounds.Play(sound.Point)
}

// Value returns the current count.
func (s *Score) Value() int { return s.value }

// digits returns the sprites for the current value, most significant first.
func (s *Score) digits() []*sprite.Sprite {
	text := strconv.Itoa(s.value)
	out := make([]*sprite.Sprite, len(text))
	for i, r := range text {
		out[i] = s.ctx.Images.Numbers[r-'0']
	}
	return out
}

// Width returns the pixel width of the drawn number.
func (s *Score) Width() int {
	w := 0
	for _, d := range s.digits() {
		w += d.W()
	}
	return w
}

// Tick draws the digits as one block centered horizontally.
func (s *Score) Tick() {
	x := (s.ctx.Window.Width - s.Width()) / 2
	for _, d := range s.digits() {
		s.ctx.Canvas.Draw(d, x, s.y)
		x += d.W()
	}
}
