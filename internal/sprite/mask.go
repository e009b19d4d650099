package sprite

import (
	"image"

	"github.com/vovakirdan/flappy/internal/core"
)

// AlphaThreshold is the alpha value a pixel must exceed to count as solid.
const AlphaThreshold = 127

// Mask is an opacity bitmap: one bit per pixel, set where the sprite is solid.
type Mask struct {
	W, H int
	bits []bool
}

// MaskFromImage builds a mask from the alpha channel of img.
func MaskFromImage(img *image.RGBA) Mask {
	b := img.Bounds()
	m := Mask{W: b.Dx(), H: b.Dy(), bits: make([]bool, b.Dx()*b.Dy())}
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			m.bits[y*m.W+x] = img.RGBAAt(b.Min.X+x, b.Min.Y+y).A > AlphaThreshold
		}
	}
	return m
}

// NewMask builds a mask from rows of '#' (solid) and '.' (clear).
// Handy for crafting collision shapes in tests.
func NewMask(rows ...string) Mask {
	m := Mask{H: len(rows)}
	for _, r := range rows {
		m.W = core.Max(m.W, len(r))
	}
	m.bits = make([]bool, m.W*m.H)
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			m.bits[y*m.W+x] = r[x] == '#'
		}
	}
	return m
}

// At reports whether the pixel at (x, y) is solid.
// Out-of-range coordinates are clear.
func (m Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.bits[y*m.W+x]
}

// Count returns the number of solid pixels.
func (m Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Overlap reports whether two masks placed at ra and rb share a solid pixel.
// Only the intersection of the rectangles is scanned.
func Overlap(ra core.Rect, ma Mask, rb core.Rect, mb Mask) bool {
	clip := ra.Clip(rb)
	if clip.Empty() {
		return false
	}
	// Scan in a's mask coordinates; b's are offset by (dx, dy).
	local := clip.Translate(-ra.X, -ra.Y)
	dx, dy := ra.X-rb.X, ra.Y-rb.Y
	for y := local.Y; y < local.Bottom(); y++ {
		for x := local.X; x < local.Right(); x++ {
			if ma.At(x, y) && mb.At(x+dx, y+dy) {
				return true
			}
		}
	}
	return false
}
