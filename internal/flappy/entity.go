package flappy

import (
	"math"

	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/sprite"
)

// Ticker is anything updated and drawn once per frame.
type Ticker interface {
	Tick()
}

// Entity is the position, size and image shared by everything on screen.
// Position is real-valued; drawing and collision floor it to pixels.
type Entity struct {
	ctx  *Context
	X, Y float64
	W, H int
	Img  *sprite.Sprite
}

func newEntity(ctx *Context, img *sprite.Sprite, x, y float64) Entity {
	e := Entity{ctx: ctx, X: x, Y: y}
	e.setImage(img)
	return e
}

// setImage swaps the image and adopts its size.
func (e *Entity) setImage(img *sprite.Sprite) {
	e.Img = img
	e.W, e.H = img.W(), img.H()
}

// Rect returns the entity's pixel rectangle.
func (e *Entity) Rect() core.Rect {
	return core.RectAt(e.X, e.Y, e.W, e.H)
}

// CenterX returns the horizontal center.
func (e *Entity) CenterX() float64 {
	return e.X + float64(e.W)/2
}

// Bottom returns the y coordinate of the lower edge.
func (e *Entity) Bottom() float64 {
	return e.Y + float64(e.H)
}

// collide reports mask-level overlap with other. Rectangles are tested first
// so the mask scan only runs for nearby pairs.
func (e *Entity) collide(other *Entity) bool {
	ra, rb := e.Rect(), other.Rect()
	if !ra.Intersects(rb) {
		return false
	}
	return sprite.Overlap(ra, e.Img.Mask, rb, other.Img.Mask)
}

func (e *Entity) draw() {
	e.ctx.Canvas.Draw(e.Img, int(math.Floor(e.X)), int(math.Floor(e.Y)))
}
