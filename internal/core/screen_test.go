package core

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

// row reads the runes of one screen row.
func row(s *Screen, y int) string {
	var sb strings.Builder
	for x := 0; x < s.Width(); x++ {
		sb.WriteRune(s.GetCell(x, y).Rune)
	}
	return sb.String()
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(80, 24)
	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("NewScreen(80, 24) is %dx%d", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetCellBounds(t *testing.T) {
	s := NewScreen(4, 3)
	cell := Cell{Rune: HalfBlock, FG: color.RGBA{R: 1, A: 255}, Colored: true}

	s.SetCell(3, 2, cell)
	if s.GetCell(3, 2) != cell {
		t.Errorf("GetCell(3, 2) = %+v, expected %+v", s.GetCell(3, 2), cell)
	}

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 3}} {
		s.SetCell(p[0], p[1], cell) // ignored
		if got := s.GetCell(p[0], p[1]); got != blank {
			t.Errorf("GetCell(%d, %d) out of bounds = %+v, expected blank", p[0], p[1], got)
		}
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(6, 2)
	s.SetCell(1, 1, Cell{Rune: 'x', Colored: true})
	s.Clear()
	if s.GetCell(1, 1) != blank {
		t.Error("Clear should reset every cell")
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name string
		x    int
		text string
		want string
	}{
		{"at origin", 0, "score", "score   "},
		{"clipped right", 5, "score", "     sco"},
		{"clipped left", -2, "score", "ore     "},
		{"multibyte", 1, "↑ flap", " ↑ flap "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(8, 1)
			s.DrawText(tt.x, 0, tt.text)
			if got := row(s, 0); got != tt.want {
				t.Errorf("row = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextCentered(1, "tap")
	if got := row(s, 1); got != "   tap    " {
		t.Errorf("row = %q, expected %q", got, "   tap    ")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after Resize screen is %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if got := row(s, 0); got != "        " {
		t.Errorf("Resize should clear the buffer, row 0 = %q", got)
	}

	// Same size is a no-op
	s.DrawText(0, 0, "Hi")
	s.Resize(8, 4)
	if !strings.HasPrefix(row(s, 0), "Hi") {
		t.Errorf("Resize to the same size should keep content, row 0 = %q", row(s, 0))
	}
}

func TestScreenBlitHalfBlocks(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	red := color.RGBA{R: 0xff, A: 0xff}
	blue := color.RGBA{B: 0xff, A: 0xff}
	green := color.RGBA{G: 0xff, A: 0xff}
	img.SetRGBA(0, 0, red)
	img.SetRGBA(0, 1, blue)
	img.SetRGBA(1, 2, green)

	s := NewScreen(5, 5)
	s.BlitHalfBlocks(img, 1, 1)

	c := s.GetCell(1, 1)
	if c.Rune != HalfBlock || !c.Colored {
		t.Fatalf("expected colored half block at (1, 1), got %+v", c)
	}
	if c.FG != red || c.BG != blue {
		t.Errorf("cell (1, 1) colors = %v/%v, expected red/blue", c.FG, c.BG)
	}

	// Odd last row pairs with black
	c = s.GetCell(2, 2)
	if c.FG != green || c.BG != (color.RGBA{A: 0xff}) {
		t.Errorf("cell (2, 2) colors = %v/%v, expected green/black", c.FG, c.BG)
	}

	if s.GetCell(1, 3).Colored {
		t.Error("a 3-row image should cover 2 cell rows")
	}
	if s.GetCell(0, 0).Colored {
		t.Error("BlitHalfBlocks should not touch cells outside the image")
	}
}
