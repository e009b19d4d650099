package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"

	"github.com/vovakirdan/flappy/internal/core"
)

// maxStyles bounds the style cache; frames with many distinct colors just
// rebuild it.
const maxStyles = 4096

// Below this many cells the bird and the gaps are unreadable.
const (
	minCols = 18
	minRows = 16
)

// tooSmall is shown instead of the frame when the terminal is under the minimum.
const tooSmall = "terminal too small"

type cellColors struct {
	fg, bg color.RGBA
}

// Renderer turns game frames into terminal text. Each cell shows two
// vertically stacked pixels with the upper-half block glyph, so terminal
// pixels come out roughly square.
type Renderer struct {
	lg     *lipgloss.Renderer
	screen *core.Screen
	buf    *image.RGBA
	styles map[cellColors]lipgloss.Style
}

// NewRenderer creates a renderer for a cols×rows area. A nil lipgloss
// renderer means the process's default output.
func NewRenderer(lg *lipgloss.Renderer, cols, rows int) *Renderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return &Renderer{
		lg:     lg,
		screen: core.NewScreen(core.Max(cols, 1), core.Max(rows, 1)),
		styles: make(map[cellColors]lipgloss.Style),
	}
}

// Resize changes the drawing area.
func (r *Renderer) Resize(cols, rows int) {
	r.screen.Resize(core.Max(cols, 1), core.Max(rows, 1))
}

// Screen returns the cell buffer of the last render.
func (r *Renderer) Screen() *core.Screen { return r.screen }

// FitSize returns the largest pixel size with frame's aspect ratio that
// fits in cols×(rows*2) pixels.
func FitSize(frameW, frameH, cols, rows int) (int, int) {
	if frameW <= 0 || frameH <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0
	}
	maxH := rows * 2
	w, h := cols, cols*frameH/frameW
	if h > maxH {
		w, h = maxH*frameW/frameH, maxH
	}
	return core.Max(w, 1), core.Max(h, 1)
}

// Render scales frame to fit, centers it, and returns the styled text.
func (r *Renderer) Render(frame *image.RGBA) string {
	r.Draw(frame)
	return r.String()
}

// Draw scales frame into the cell buffer without producing text.
func (r *Renderer) Draw(frame *image.RGBA) {
	r.screen.Clear()
	if r.screen.Width() < minCols || r.screen.Height() < minRows {
		r.screen.DrawTextCentered(r.screen.Height()/2, tooSmall)
		return
	}
	b := frame.Bounds()
	w, h := FitSize(b.Dx(), b.Dy(), r.screen.Width(), r.screen.Height())
	if w == 0 {
		return
	}

	if r.buf == nil || r.buf.Rect.Dx() != w || r.buf.Rect.Dy() != h {
		r.buf = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(r.buf, r.buf.Bounds(), frame, b.Min, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(r.buf, r.buf.Bounds(), frame, b, draw.Src, nil)
	}

	x := (r.screen.Width() - w) / 2
	y := (r.screen.Height() - (h+1)/2) / 2
	r.screen.BlitHalfBlocks(r.buf, x, y)
}

// String converts the cell buffer to styled text. Adjacent cells with the
// same colors share one escape sequence.
func (r *Renderer) String() string {
	s := r.screen
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Colored != start.Colored || cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if !start.Colored {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.style(start.FG, start.BG).Render(run.String()))
		}
	}
	return sb.String()
}

func (r *Renderer) style(fg, bg color.RGBA) lipgloss.Style {
	k := cellColors{fg: fg, bg: bg}
	if st, ok := r.styles[k]; ok {
		return st
	}
	if len(r.styles) >= maxStyles {
		r.styles = make(map[cellColors]lipgloss.Style)
	}
	st := r.lg.NewStyle().
		Foreground(lipgloss.Color(hex(fg))).
		Background(lipgloss.Color(hex(bg)))
	r.styles[k] = st
	return st
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
