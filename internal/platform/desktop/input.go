package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappy/internal/core"
)

var keyBindings = []struct {
	key ebiten.Key
	to  core.Key
}{
	{ebiten.KeyEscape, core.KeyEscape},
	{ebiten.KeySpace, core.KeySpace},
	{ebiten.KeyArrowUp, core.KeyUp},
	{ebiten.KeyEnter, core.KeyEnter},
}

var mouseBindings = []struct {
	button ebiten.MouseButton
	to     core.MouseButton
}{
	{ebiten.MouseButtonLeft, core.MousePrimary},
	{ebiten.MouseButtonRight, core.MouseSecondary},
	{ebiten.MouseButtonMiddle, core.MouseMiddle},
}

// pollInput pushes the presses that happened since the previous tick.
// touches is scratch space reused between calls.
func pollInput(q *core.EventQueue, touches []ebiten.TouchID) []ebiten.TouchID {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			q.Push(core.KeyDown(b.to))
		}
	}
	for _, b := range mouseBindings {
		if inpututil.IsMouseButtonJustPressed(b.button) {
			q.Push(core.MouseDown(b.to))
		}
	}

	touches = inpututil.AppendJustPressedTouchIDs(touches[:0])
	for range touches {
		q.Push(core.TouchDown())
	}
	return touches
}
