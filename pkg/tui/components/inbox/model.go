// Package inbox renders the working queue: a searchable, tag-filtered,
// reorderable view of the canonical document list.
package inbox

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/lawe/pkg/entity"
	"tableflip.dev/lawe/pkg/notify"
	"tableflip.dev/lawe/pkg/store"
	"tableflip.dev/lawe/pkg/taxonomy"
	"tableflip.dev/lawe/pkg/tui/events"
	"tableflip.dev/lawe/pkg/tui/theme"
	"tableflip.dev/lawe/pkg/tui/uiutil"
	"tableflip.dev/lawe/pkg/views"
)

// Model drives the inbox tab. Tag selection is interaction state and
// lives here; the view engine stays pure.
type Model struct {
	store *store.Store
	id    events.ComponentID
	theme theme.Theme

	snap store.Snapshot

	search        textinput.Model
	searchFocused bool

	tags      []string
	tagCursor int
	selected  map[string]bool

	docCursor int
	width     int
}

// NewModel constructs the inbox bound to the store.
func NewModel(st *store.Store) *Model {
	search := textinput.New()
	search.Placeholder = "Search documents…"
	search.Prompt = "/ "

	return &Model{
		store:    st,
		id:       events.ComponentID("inbox"),
		theme:    theme.Default(),
		snap:     st.Snapshot(),
		search:   search,
		tags:     taxonomy.Tags(),
		selected: map[string]bool{},
	}
}

// Refresh replaces the snapshot backing the view.
func (m *Model) Refresh(snap store.Snapshot) {
	m.snap = snap
	m.clampCursor()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update processes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyPressMsg:
		if m.searchFocused {
			switch msg.String() {
			case "enter", "esc":
				m.searchFocused = false
				m.search.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.clampCursor()
			return m, cmd
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "/":
		m.searchFocused = true
		return m.search.Focus()
	case "left", "h":
		if m.tagCursor > 0 {
			m.tagCursor--
		}
	case "right", "l":
		if m.tagCursor < len(m.tags)-1 {
			m.tagCursor++
		}
	case "space":
		tag := m.tags[m.tagCursor]
		m.selected[tag] = !m.selected[tag]
		m.clampCursor()
	case "c":
		m.selected = map[string]bool{}
		m.search.SetValue("")
		m.clampCursor()
	case "up", "k":
		if m.docCursor > 0 {
			m.docCursor--
		}
	case "down", "j":
		if m.docCursor < len(m.visible())-1 {
			m.docCursor++
		}
	case "shift+up", "K":
		return m.move(-1)
	case "shift+down", "J":
		return m.move(1)
	}
	return nil
}

// move reorders the canonical sequence. Only permitted on the
// unfiltered list, where row positions equal canonical positions.
func (m *Model) move(delta int) tea.Cmd {
	if m.filtered() {
		return events.ToastCmd(m.id, notify.Warning, "Clear filters to reorder", "")
	}
	from := m.docCursor
	to := from + delta
	if err := m.store.ReorderDocuments(from, to); err != nil {
		return events.ToastCmd(m.id, notify.Error, "Reorder failed", err.Error())
	}
	m.docCursor = to
	return nil
}

func (m *Model) filtered() bool {
	if strings.TrimSpace(m.search.Value()) != "" {
		return true
	}
	for _, on := range m.selected {
		if on {
			return true
		}
	}
	return false
}

func (m *Model) selectedTags() []string {
	var out []string
	for _, tag := range m.tags {
		if m.selected[tag] {
			out = append(out, tag)
		}
	}
	return out
}

func (m *Model) visible() []entity.Document {
	docs := views.FilterDocuments(m.snap, m.search.Value(), false)
	return views.FilterByTags(docs, m.selectedTags())
}

func (m *Model) clampCursor() {
	m.docCursor = uiutil.ClampIndex(m.docCursor, len(m.visible()))
}

// Editing reports whether the search input is capturing keys.
func (m *Model) Editing() bool {
	return m.searchFocused
}

// View renders the inbox.
func (m *Model) View() string {
	var lines []string
	lines = append(lines, m.search.View(), "")
	lines = append(lines, m.renderTags(), "")

	docs := m.visible()
	if len(docs) == 0 {
		lines = append(lines, m.theme.Panel.Faint.Render("  no documents match"))
	}
	for i, d := range docs {
		row := fmt.Sprintf("%s  %s · %s · %s",
			d.Title,
			m.snap.ClientName(d.ClientID),
			d.SubCategory,
			d.CreatedAt.Format("2006-01-02"),
		)
		if i == m.docCursor {
			lines = append(lines, m.theme.List.Selected.Render("➤ "+row))
		} else {
			lines = append(lines, m.theme.List.Normal.Render("  "+row))
		}
	}

	lines = append(lines, "", m.theme.Form.Hint.Render(m.hint()))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderTags() string {
	cells := make([]string, 0, len(m.tags))
	for i, tag := range m.tags {
		label := " " + tag + " "
		style := m.theme.List.Tag
		if m.selected[tag] {
			style = m.theme.List.TagOn
		}
		cell := style.Render(label)
		if i == m.tagCursor && !m.searchFocused {
			cell = m.theme.List.Selected.Render("[") + cell + m.theme.List.Selected.Render("]")
		}
		cells = append(cells, cell)
	}
	return strings.Join(cells, " ")
}

func (m *Model) hint() string {
	if m.filtered() {
		return "/ search • ←/→ + space tags • c clear filters • ↑/↓ select"
	}
	return "/ search • ←/→ + space tags • ↑/↓ select • shift+↑/↓ reorder"
}
