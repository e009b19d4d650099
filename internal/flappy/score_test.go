package flappy

import (
	"image/color"
	"testing"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/sound"
)

func TestScoreResetAddRoundTrip(t *testing.T) {
	ctx, rec := newTestContext(t, config.Default())
	s := NewScore(ctx)

	for _, n := range []int{0, 1, 7, 120} {
		s.Reset()
		rec.Reset()
		for i := 0; i < n; i++ {
			s.Add()
		}
		if s.Value() != n {
			t.Errorf("after %d adds: Value() = %d", n, s.Value())
		}
		if rec.Count(sound.Point) != n {
			t.Errorf("after %d adds: point played %d times", n, rec.Count(sound.Point))
		}
	}
}

func TestScoreWidth(t *testing.T) {
	ctx, _ := newTestContext(t, config.Default())
	s := NewScore(ctx)

	tests := []struct {
		adds   int
		digits int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{105, 3},
	}
	for _, tt := range tests {
		s.Reset()
		for i := 0; i < tt.adds; i++ {
			s.Add()
		}
		if got, want := s.Width(), tt.digits*assets.DigitW; got != want {
			t.Errorf("score %d: width %d, want %d", tt.adds, got, want)
		}
	}
}

func TestScoreDrawsCentered(t *testing.T) {
	ctx, _ := newTestContext(t, config.Default())
	ctx.Canvas.Clear(color.RGBA{})
	s := NewScore(ctx)
	s.Tick()

	img := ctx.Canvas.Image()
	y := s.y + assets.DigitH/2
	left, right := -1, -1
	for x := 0; x < ctx.Window.Width; x++ {
		if img.RGBAAt(x, y).A != 0 {
			if left < 0 {
				left = x
			}
			right = x
		}
	}
	if left < 0 {
		t.Fatal("score was not drawn")
	}
	mid := (left + right) / 2
	if mid < ctx.Window.Width/2-4 || mid > ctx.Window.Width/2+4 {
		t.Errorf("score centered at x=%d, want about %d", mid, ctx.Window.Width/2)
	}
}
