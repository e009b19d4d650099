// Package sprite holds the pixel-level building blocks of the game: images
// paired with opacity masks, the canvas every entity draws into, and
// painters for placeholder artwork.
package sprite

import (
	"image"

	"golang.org/x/image/draw"
)

// Sprite is a ready-to-blit image with its precomputed collision mask.
// The image always starts at the origin.
type Sprite struct {
	Img  *image.RGBA
	Mask Mask
}

// New copies img into an origin-based RGBA image and builds its mask.
func New(img image.Image) *Sprite {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return &Sprite{Img: rgba, Mask: MaskFromImage(rgba)}
}

// W returns the sprite width in pixels.
func (s *Sprite) W() int { return s.Img.Rect.Dx() }

// H returns the sprite height in pixels.
func (s *Sprite) H() int { return s.Img.Rect.Dy() }

// FlipV returns a vertically mirrored copy.
func (s *Sprite) FlipV() *Sprite {
	w, h := s.W(), s.H()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		copy(out.Pix[y*out.Stride:y*out.Stride+w*4], s.Img.Pix[(h-1-y)*s.Img.Stride:(h-1-y)*s.Img.Stride+w*4])
	}
	return &Sprite{Img: out, Mask: MaskFromImage(out)}
}

// Scale returns a copy resized with nearest-neighbor sampling, which keeps
// pixel art crisp.
func (s *Sprite) Scale(w, h int) *Sprite {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(out, out.Bounds(), s.Img, s.Img.Bounds(), draw.Src, nil)
	return &Sprite{Img: out, Mask: MaskFromImage(out)}
}
