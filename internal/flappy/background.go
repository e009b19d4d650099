package flappy

import "math"

// Background is the static sky drawn first every frame.
type Background struct {
	Entity
}

// NewBackground creates the background at the origin.
func NewBackground(ctx *Context) *Background {
	return &Background{Entity: newEntity(ctx, ctx.Images.Background, 0, 0)}
}

// Tick draws the background.
func (b *Background) Tick() {
	b.draw()
}

// Floor is the scrolling base. Its top edge is the ground collision plane.
type Floor struct {
	Entity
	vel   float64
	extra float64 // How far the base can shift before the pattern repeats
}

// NewFloor creates the floor at the viewport's lower edge.
func NewFloor(ctx *Context) *Floor {
	f := &Floor{
		Entity: newEntity(ctx, ctx.Images.Base, 0, float64(ctx.FloorY())),
		vel:    ctx.Cfg.FloorStep(),
	}
	// A base wider than the window shifts by its overhang; a narrower one
	// is tiled and repeats every tile width.
	f.extra = float64(f.W - ctx.Window.Width)
	if f.extra <= 0 {
		f.extra = float64(f.W)
	}
	return f
}

// Top returns the y coordinate of the floor surface.
func (f *Floor) Top() float64 {
	return f.Y
}

// Stop freezes scrolling.
func (f *Floor) Stop() {
	f.vel = 0
}

// Period returns how far the floor scrolls before its pattern repeats.
func (f *Floor) Period() float64 {
	return f.extra
}

// Tick scrolls and draws the floor, tiling the base until the window's
// right edge is covered.
func (f *Floor) Tick() {
	if f.extra > 0 {
		f.X = -math.Mod(-f.X+f.vel, f.extra)
	}
	if f.W <= 0 {
		return
	}
	for x := int(math.Floor(f.X)); x < f.ctx.Window.Width; x += f.W {
		f.ctx.Canvas.Draw(f.Img, x, int(f.Y))
	}
}
