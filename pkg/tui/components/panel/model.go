// Package panel renders framed overlay panels with an optional selection.
package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/lawe/pkg/tui/theme"
)

// Row is a single panel line.
type Row struct {
	Text  string
	Faint bool
}

// Model renders a titled panel with selectable body rows and a hint line.
type Model struct {
	title    string
	rows     []Row
	selected int
	hint     string
	empty    string

	frameStyle lipgloss.Style
	titleStyle lipgloss.Style
	bodyStyle  lipgloss.Style
	faintStyle lipgloss.Style
	cursor     lipgloss.Style
}

// New returns a panel styled from the shared theme.
func New(th theme.PanelTheme, cursor lipgloss.Style) Model {
	return Model{
		selected:   -1,
		frameStyle: th.Frame,
		titleStyle: th.Title,
		bodyStyle:  th.Body,
		faintStyle: th.Faint,
		cursor:     cursor,
	}
}

// SetContent updates the panel title and body rows.
func (m *Model) SetContent(title string, rows []Row) {
	m.title = title
	m.rows = rows
}

// SetSelected highlights the given row; pass -1 for no selection.
func (m *Model) SetSelected(i int) { m.selected = i }

// SetHint sets the faint hint line rendered under the rows.
func (m *Model) SetHint(hint string) { m.hint = hint }

// SetEmpty sets the placeholder rendered when there are no rows.
func (m *Model) SetEmpty(text string) { m.empty = text }

// Reset clears panel content and selection.
func (m *Model) Reset() {
	m.title = ""
	m.rows = nil
	m.selected = -1
}

// View returns the rendered panel.
func (m Model) View() string {
	var content []string
	if m.title != "" {
		content = append(content, m.titleStyle.Render(m.title))
	}
	if len(m.rows) == 0 && m.empty != "" {
		content = append(content, m.faintStyle.Render("  "+m.empty))
	}
	for i, row := range m.rows {
		style := m.bodyStyle
		if row.Faint {
			style = m.faintStyle
		}
		if i == m.selected {
			content = append(content, m.cursor.Render("➤ ")+style.Render(row.Text))
		} else {
			content = append(content, "  "+style.Render(row.Text))
		}
	}
	if m.hint != "" {
		content = append(content, "", m.faintStyle.Render(m.hint))
	}
	return m.frameStyle.Render(strings.Join(content, "\n"))
}
