package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy/internal/assets"
)

// ManifestTable renders the asset manifest as a static table.
func ManifestTable(entries []assets.Entry, lg *lipgloss.Renderer) string {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}

	pathW := len("Path")
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		pathW = max(pathW, len(e.Path))
		note := ""
		if e.Err != nil {
			note = e.Err.Error()
		}
		rows = append(rows, table.Row{
			e.Path,
			string(e.Source),
			fmt.Sprintf("%dx%d", e.W, e.H),
			note,
		})
	}

	columns := []table.Column{
		{Title: "Path", Width: pathW},
		{Title: "Source", Width: len(assets.SourcePlaceholder)},
		{Title: "Size", Width: 9},
		{Title: "Note", Width: 40},
	}

	styles := table.DefaultStyles()
	styles.Header = lg.NewStyle().Bold(true).Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Cell = lg.NewStyle().Padding(0, 1)
	styles.Selected = lg.NewStyle()

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+3), // Header and its border take two lines
		table.WithFocused(false),
		table.WithStyles(styles),
	)
	return t.View()
}
