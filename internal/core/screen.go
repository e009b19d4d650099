package core

import (
	"image"
	"image/color"
)

// HalfBlock is the glyph used to show two stacked pixels in one cell:
// the foreground paints the upper pixel, the background the lower one.
const HalfBlock = '▀'

// Cell is one character position on a Screen.
type Cell struct {
	Rune    rune
	FG      color.RGBA
	BG      color.RGBA
	Colored bool // False means "terminal default colors"
}

// blank is the cell a cleared screen is filled with.
var blank = Cell{Rune: ' '}

// Screen is a 2D character buffer for terminal output.
// It decouples the game frame from the terminal, letting the platform
// handle actual display and styling.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded; the next
// frame repaints everything anyway.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with uncolored spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// SetCell places a full cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y][x]
}

// DrawText writes text in default colors starting at (x, y), one rune per
// cell. Runes past the screen edge are dropped.
func (s *Screen) DrawText(x, y int, text string) {
	for i, r := range []rune(text) {
		s.SetCell(x+i, y, Cell{Rune: r})
	}
}

// DrawTextCentered draws text centered horizontally on row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText((s.width-len([]rune(text)))/2, y, text)
}

// BlitHalfBlocks paints img at cell offset (x, y), two image rows per cell row.
// An odd last image row is paired with black.
func (s *Screen) BlitHalfBlocks(img *image.RGBA, x, y int) {
	b := img.Bounds()
	for py := b.Min.Y; py < b.Max.Y; py += 2 {
		row := y + (py-b.Min.Y)/2
		for px := b.Min.X; px < b.Max.X; px++ {
			top := img.RGBAAt(px, py)
			bottom := color.RGBA{A: 0xff}
			if py+1 < b.Max.Y {
				bottom = img.RGBAAt(px, py+1)
			}
			s.SetCell(x+px-b.Min.X, row, Cell{Rune: HalfBlock, FG: top, BG: bottom, Colored: true})
		}
	}
}
