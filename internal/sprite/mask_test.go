package sprite

import (
	"image"
	"image/color"
	"testing"

	"github.com/vovakirdan/flappy/internal/core"
)

func TestMaskFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(0, 0, color.RGBA{A: 255})
	img.SetRGBA(1, 0, color.RGBA{A: 128})
	img.SetRGBA(2, 1, color.RGBA{A: 127}) // At the threshold: clear

	m := MaskFromImage(img)
	if m.W != 3 || m.H != 2 {
		t.Fatalf("mask size = %dx%d, want 3x2", m.W, m.H)
	}
	if !m.At(0, 0) || !m.At(1, 0) {
		t.Error("expected opaque pixels to be solid")
	}
	if m.At(2, 1) {
		t.Error("pixel at threshold should be clear")
	}
	if m.Count() != 2 {
		t.Errorf("Count() = %d, want 2", m.Count())
	}
	if m.At(-1, 0) || m.At(3, 0) {
		t.Error("out-of-range pixels should be clear")
	}
}

func TestOverlap(t *testing.T) {
	// Two diagonal shapes whose bounding boxes intersect but whose solid
	// pixels only touch when shifted together.
	diag := NewMask(
		"#..",
		".#.",
		"..#",
	)
	anti := NewMask(
		"..#",
		".#.",
		"#..",
	)
	corner := NewMask(
		"#..",
		"...",
		"...",
	)

	tests := []struct {
		name   string
		ra     core.Rect
		ma     Mask
		rb     core.Rect
		mb     Mask
		expect bool
	}{
		{"disjoint rects", rect(0, 0, 3, 3), diag, rect(10, 10, 3, 3), diag, false},
		{"same place", rect(0, 0, 3, 3), diag, rect(0, 0, 3, 3), anti, true},
		{"boxes overlap, pixels do not", rect(0, 0, 3, 3), diag, rect(1, 0, 3, 3), corner, false},
		{"single pixel hit", rect(0, 0, 3, 3), diag, rect(2, 2, 3, 3), corner, true},
		{"touching edges", rect(0, 0, 3, 3), diag, rect(3, 0, 3, 3), diag, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlap(tt.ra, tt.ma, tt.rb, tt.mb); got != tt.expect {
				t.Errorf("Overlap() = %v, want %v", got, tt.expect)
			}
			if got := Overlap(tt.rb, tt.mb, tt.ra, tt.ma); got != tt.expect {
				t.Errorf("Overlap() reversed = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestOverlapTranslationInvariant(t *testing.T) {
	a := NewMask(
		".##.",
		"####",
		".##.",
	)
	b := NewMask(
		"#",
		"#",
	)
	ra := rect(5, 5, 4, 3)

	for bx := 0; bx < 12; bx++ {
		rb := rect(bx, 4, 1, 2)
		want := Overlap(ra, a, rb, b)
		for _, d := range []int{-100, -7, 3, 250} {
			got := Overlap(ra.Translate(d, 0), a, rb.Translate(d, 0), b)
			if got != want {
				t.Errorf("bx=%d shift=%d: got %v, want %v", bx, d, got, want)
			}
		}
	}
}

func TestFlipV(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	s := New(img)

	f := s.FlipV()
	if f.W() != 2 || f.H() != 3 {
		t.Fatalf("flipped size = %dx%d, want 2x3", f.W(), f.H())
	}
	if f.Img.RGBAAt(0, 2).R != 255 {
		t.Error("expected top-left pixel to move to bottom-left")
	}
	if !f.Mask.At(0, 2) || f.Mask.At(0, 0) {
		t.Error("mask was not flipped with the image")
	}
}

func rect(x, y, w, h int) core.Rect {
	return core.Rect{X: x, Y: y, W: w, H: h}
}
