package flappy

import (
	"testing"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/sound"
)

var (
	tap      = []core.Event{core.KeyDown(core.KeySpace)}
	noEvents []core.Event
)

// newTestContext builds a context with placeholder images and a recording
// sound set.
func newTestContext(t *testing.T, cfg config.Config) (*Context, *sound.Recorder) {
	t.Helper()
	rec := &sound.Recorder{}
	ctx := NewContext(cfg, nil, rec, 1, nil)
	ctx.Images = assets.NewLoader(nil, 0, nil).Images(ctx.Rng)
	return ctx, rec
}

// newTestGame builds a game over placeholder images.
func newTestGame(t *testing.T, cfg config.Config, seed int64) (*Game, *sound.Recorder) {
	t.Helper()
	rec := &sound.Recorder{}
	return New(cfg, assets.NewLoader(nil, 0, nil), rec, seed, nil), rec
}

// stepUntil steps g until cond holds, failing after limit frames.
func stepUntil(t *testing.T, g *Game, limit int, events []core.Event, cond func(StepResult) bool) StepResult {
	t.Helper()
	for i := 0; i < limit; i++ {
		res := g.Step(events)
		if cond(res) {
			return res
		}
	}
	t.Fatalf("condition not reached within %d frames (phase %s)", limit, g.Phase())
	return StepResult{}
}

// testImages returns a loader with no files, so every sprite is a placeholder.
func testImages() *assets.Loader {
	return assets.NewLoader(nil, 0, nil)
}
