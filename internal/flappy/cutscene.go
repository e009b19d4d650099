package flappy

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/vovakirdan/flappy/internal/sprite"
)

var (
	cardFill   = color.RGBA{R: 12, G: 12, B: 16, A: 255}
	cardBorder = color.RGBA{R: 252, G: 160, B: 72, A: 255}
	cardText   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	cardShade  = color.RGBA{R: 84, G: 56, B: 71, A: 255}
)

// Card is the default cutscene: a title card with the final score and a
// blinking prompt. It never finishes on its own; the game's timeout or a
// tap ends it.
type Card struct {
	base   *sprite.Sprite
	prompt *sprite.Sprite
	frame  *sprite.Sprite
	blink  int // Frames per prompt blink phase
}

// NewCard builds the card for score. It satisfies CutsceneFunc.
func NewCard(ctx *Context, score int) Cutscene {
	w, h := ctx.Window.Width*3/4, ctx.Window.Height/3
	base := sprite.Box(w, h, cardFill, cardBorder)

	title := sprite.Outlined("GAME OVER", cardBorder, cardShade, 2)
	result := sprite.Outlined(fmt.Sprintf("score %d", score), cardText, cardShade, 1)
	place(base, title, h/6)
	place(base, result, h/2)

	return &Card{
		base:   base,
		prompt: sprite.Outlined("press space", cardText, cardShade, 1),
		frame:  sprite.New(base.Img),
		blink:  ctx.FPS / 2,
	}
}

// place centers s horizontally on dst at row y.
func place(dst, s *sprite.Sprite, y int) {
	x := (dst.W() - s.W()) / 2
	draw.Draw(dst.Img, image.Rect(x, y, x+s.W(), y+s.H()), s.Img, image.Point{}, draw.Over)
}

// Tick returns the card, with the prompt shown on alternate blink phases.
func (c *Card) Tick(frame int) *sprite.Sprite {
	draw.Draw(c.frame.Img, c.frame.Img.Bounds(), c.base.Img, image.Point{}, draw.Src)
	if c.blink <= 0 || (frame/c.blink)%2 == 0 {
		place(c.frame, c.prompt, c.frame.H()*3/4)
	}
	return c.frame
}

// Finished always reports false.
func (c *Card) Finished() bool { return false }
