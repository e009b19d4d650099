package sprite

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Canvas is the frame sink entities draw into. It wraps a fixed-size RGBA
// image; hosts present Image() once per frame.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a canvas of the given size.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image returns the backing image. It is reused between frames.
func (c *Canvas) Image() *image.RGBA { return c.img }

// W returns the canvas width.
func (c *Canvas) W() int { return c.img.Rect.Dx() }

// H returns the canvas height.
func (c *Canvas) H() int { return c.img.Rect.Dy() }

// Clear fills the canvas with a solid color.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Draw composites s with its top-left corner at (x, y). Parts outside the
// canvas are clipped.
func (c *Canvas) Draw(s *Sprite, x, y int) {
	r := image.Rect(x, y, x+s.W(), y+s.H())
	draw.Draw(c.img, r, s.Img, image.Point{}, draw.Over)
}

// DrawAlpha composites s scaled by a uniform opacity in [0, 255].
func (c *Canvas) DrawAlpha(s *Sprite, x, y int, alpha uint8) {
	if alpha == 0 {
		return
	}
	if alpha == 0xff {
		c.Draw(s, x, y)
		return
	}
	r := image.Rect(x, y, x+s.W(), y+s.H())
	draw.DrawMask(c.img, r, s.Img, image.Point{}, image.NewUniform(color.Alpha{A: alpha}), image.Point{}, draw.Over)
}

// DrawRotated composites s rotated counter-clockwise by deg degrees around
// its center, with the center placed at (cx, cy).
func (c *Canvas) DrawRotated(s *Sprite, cx, cy, deg float64) {
	if deg == 0 {
		c.Draw(s, int(math.Floor(cx-float64(s.W())/2)), int(math.Floor(cy-float64(s.H())/2)))
		return
	}
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	scx, scy := float64(s.W())/2, float64(s.H())/2
	m := f64.Aff3{
		cos, sin, cx - cos*scx - sin*scy,
		-sin, cos, cy + sin*scx - cos*scy,
	}
	draw.BiLinear.Transform(c.img, m, s.Img, s.Img.Bounds(), draw.Over, nil)
}
