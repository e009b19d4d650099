package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/flappy"
)

// statusRows is the number of terminal rows reserved below the game.
const statusRows = 1

// Model is the Bubble Tea model running one game.
type Model struct {
	game     *flappy.Game
	events   *core.EventQueue
	keys     KeyMap
	help     help.Model
	renderer *Renderer
	status   lipgloss.Style
	tickRate int
	last     flappy.StepResult
	quitting bool
}

// NewModel creates a model for game sized and ticked by rc.
// lg styles the output; nil means the local terminal.
func NewModel(game *flappy.Game, rc core.RuntimeConfig, lg *lipgloss.Renderer) Model {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	h := help.New()
	h.Styles.ShortKey = lg.NewStyle().Bold(true)
	h.Styles.ShortDesc = lg.NewStyle().Faint(true)
	h.Styles.ShortSeparator = lg.NewStyle().Faint(true)

	return Model{
		game:     game,
		events:   core.NewEventQueue(),
		keys:     DefaultKeyMap(),
		help:     h,
		renderer: NewRenderer(lg, rc.ScreenW, rc.ScreenH-statusRows),
		status:   lg.NewStyle().Bold(true),
		tickRate: rc.TickRate,
		last:     flappy.StepResult{Phase: game.Phase()},
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if ev, ok := m.keys.MapKey(msg); ok {
			return m.handleEvent(ev)
		}

	case tea.MouseMsg:
		if ev, ok := MapMouse(msg); ok {
			return m.handleEvent(ev)
		}

	case tea.WindowSizeMsg:
		m.renderer.Resize(msg.Width, msg.Height-statusRows)
		m.help.Width = msg.Width

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleEvent queues ev for the next tick. Quit requests are stepped
// right away so the program exits without waiting for a tick.
func (m Model) handleEvent(ev core.Event) (tea.Model, tea.Cmd) {
	if core.IsQuit(ev) {
		m.last = m.game.Step([]core.Event{ev})
		m.quitting = true
		return m, tea.Quit
	}
	m.events.Push(ev)
	return m, nil
}

// handleTick runs one game frame with the queued events.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.last = m.game.Step(m.events.Drain())
	if m.last.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.tickRate)
}

// Last returns the result of the most recent frame.
func (m Model) Last() flappy.StepResult { return m.last }

// View renders the current frame and the status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	status := m.status.Render(fmt.Sprintf(" %s  score %d ", m.last.Phase, m.last.Score))
	return m.renderer.Render(m.game.Frame()) + "\n" + status + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for game in the local terminal.
func Run(game *flappy.Game, rc core.RuntimeConfig) error {
	model := NewModel(game, rc, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks flap
	)

	_, err := p.Run()
	return err
}
