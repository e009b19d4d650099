package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy/internal/core"
)

// KeyMap holds the terminal key bindings. It doubles as the help.KeyMap
// for the status line.
type KeyMap struct {
	Flap   key.Binding
	Up     key.Binding
	Enter  key.Binding
	Escape key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the fixed bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "flap"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "flap"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Up, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Flap, k.Up}, {k.Escape, k.Quit}}
}

// MapKey translates a key message to a game event.
// Returns false for keys the game ignores.
func (k KeyMap) MapKey(msg tea.KeyMsg) (core.Event, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Quit(), true
	case key.Matches(msg, k.Flap):
		return core.KeyDown(core.KeySpace), true
	case key.Matches(msg, k.Up):
		return core.KeyDown(core.KeyUp), true
	case key.Matches(msg, k.Enter):
		return core.KeyDown(core.KeyEnter), true
	case key.Matches(msg, k.Escape):
		return core.KeyDown(core.KeyEscape), true
	}
	return core.Event{}, false
}

// MapMouse translates a mouse press to a game event. Releases, motion and
// wheel events are ignored.
func MapMouse(msg tea.MouseMsg) (core.Event, bool) {
	if msg.Action != tea.MouseActionPress {
		return core.Event{}, false
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		return core.MouseDown(core.MousePrimary), true
	case tea.MouseButtonRight:
		return core.MouseDown(core.MouseSecondary), true
	case tea.MouseButtonMiddle:
		return core.MouseDown(core.MouseMiddle), true
	}
	return core.Event{}, false
}
