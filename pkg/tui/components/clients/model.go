// Package clients renders the client roster: document counts, billable
// hours, add/delete, and hour logging.
package clients

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/lawe/pkg/notify"
	"tableflip.dev/lawe/pkg/store"
	"tableflip.dev/lawe/pkg/tui/events"
	"tableflip.dev/lawe/pkg/tui/theme"
	"tableflip.dev/lawe/pkg/tui/uiutil"
	"tableflip.dev/lawe/pkg/views"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeHours
)

type focusField int

const (
	fieldName focusField = iota
	fieldEmail
	fieldPhone
)

// Model drives the clients tab.
type Model struct {
	store *store.Store
	id    events.ComponentID
	theme theme.Theme

	snap   store.Snapshot
	mode   mode
	cursor int

	focus focusField
	name  textinput.Model
	email textinput.Model
	phone textinput.Model
	hours textinput.Model

	errorMsg string
	width    int
}

// NewModel constructs the clients tab bound to the store.
func NewModel(st *store.Store) *Model {
	name := textinput.New()
	name.Placeholder = "Client name"
	name.Prompt = ""

	email := textinput.New()
	email.Placeholder = "Email"
	email.Prompt = ""

	phone := textinput.New()
	phone.Placeholder = "Phone"
	phone.Prompt = ""

	hours := textinput.New()
	hours.Placeholder = "Hours, e.g. 1.5"
	hours.Prompt = ""

	return &Model{
		store: st,
		id:    events.ComponentID("clients"),
		theme: theme.Default(),
		snap:  st.Snapshot(),
		name:  name,
		email: email,
		phone: phone,
		hours: hours,
	}
}

// Refresh replaces the snapshot backing the view.
func (m *Model) Refresh(snap store.Snapshot) {
	m.snap = snap
	m.cursor = uiutil.ClampIndex(m.cursor, len(m.snap.Clients))
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
		switch m.mode {
		case modeAdd:
			return m, m.handleAddKey(msg)
		case modeHours:
			return m, m.handleHoursKey(msg)
		default:
			return m, m.handleListKey(msg)
		}
	}
	return m, nil
}

func (m *Model) handleListKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.snap.Clients)-1 {
			m.cursor++
		}
	case "a":
		m.mode = modeAdd
		m.focus = fieldName
		m.errorMsg = ""
		return m.updateInputFocus()
	case "b":
		if len(m.snap.Clients) == 0 {
			return nil
		}
		m.mode = modeHours
		m.errorMsg = ""
		m.hours.SetValue("")
		return m.hours.Focus()
	case "d":
		if len(m.snap.Clients) == 0 {
			return nil
		}
		client := m.snap.Clients[m.cursor]
		if err := m.store.DeleteClient(client.ID); err != nil {
			return events.ToastCmd(m.id, notify.Error, "Delete failed", err.Error())
		}
		return events.ToastCmd(m.id, notify.Success,
			"Client removed", fmt.Sprintf("%s and their documents were deleted", client.Name))
	}
	return nil
}

func (m *Model) handleAddKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.resetForm()
		return nil
	case "tab", "down":
		m.focus = (m.focus + 1) % 3
		return m.updateInputFocus()
	case "shift+tab", "up":
		m.focus = (m.focus + 2) % 3
		return m.updateInputFocus()
	case "enter":
		client, err := m.store.AddClient(m.name.Value(), m.email.Value(), m.phone.Value())
		if err != nil {
			m.errorMsg = err.Error()
			return nil
		}
		m.mode = modeList
		m.resetForm()
		return events.ToastCmd(m.id, notify.Success, "Client added", client.Name)
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldName:
		m.name, cmd = m.name.Update(msg)
	case fieldEmail:
		m.email, cmd = m.email.Update(msg)
	case fieldPhone:
		m.phone, cmd = m.phone.Update(msg)
	}
	return cmd
}

func (m *Model) handleHoursKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.hours.Blur()
		return nil
	case "enter":
		value, err := strconv.ParseFloat(strings.TrimSpace(m.hours.Value()), 64)
		if err != nil {
			m.errorMsg = "enter hours as a number"
			return nil
		}
		client := m.snap.Clients[m.cursor]
		if err := m.store.AddBillableHours(client.ID, value); err != nil {
			m.errorMsg = err.Error()
			return nil
		}
		m.mode = modeList
		m.hours.Blur()
		m.errorMsg = ""
		return events.ToastCmd(m.id, notify.Success,
			"Hours logged", fmt.Sprintf("%.2fh for %s", value, client.Name))
	}
	var cmd tea.Cmd
	m.hours, cmd = m.hours.Update(msg)
	return cmd
}

func (m *Model) updateInputFocus() tea.Cmd {
	m.name.Blur()
	m.email.Blur()
	m.phone.Blur()
	switch m.focus {
	case fieldName:
		return m.name.Focus()
	case fieldEmail:
		return m.email.Focus()
	default:
		return m.phone.Focus()
	}
}

func (m *Model) resetForm() {
	m.name.SetValue("")
	m.email.SetValue("")
	m.phone.SetValue("")
	m.errorMsg = ""
}

// Editing reports whether a form is capturing keys.
func (m *Model) Editing() bool {
	return m.mode != modeList
}

// View renders the clients tab.
func (m *Model) View() string {
	switch m.mode {
	case modeAdd:
		return m.viewAdd()
	case modeHours:
		return m.viewHours()
	default:
		return m.viewList()
	}
}

func (m *Model) viewList() string {
	var lines []string
	counts := views.CountPerClient(m.snap)
	if len(counts) == 0 {
		lines = append(lines, m.theme.Panel.Faint.Render("  no clients"))
	}
	for i, c := range counts {
		row := fmt.Sprintf("%-24s %s  %d documents  %.1fh",
			c.Client.Name,
			m.theme.Panel.Faint.Render(c.Client.Email),
			c.Documents,
			c.Hours,
		)
		if i == m.cursor {
			lines = append(lines, m.theme.List.Selected.Render("➤ "+row))
		} else {
			lines = append(lines, m.theme.List.Normal.Render("  "+row))
		}
	}
	lines = append(lines, "", m.theme.Form.Hint.Render("a add • d delete • b log hours • ↑/↓ select"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) viewAdd() string {
	lines := []string{
		m.theme.Panel.Title.Render("Add client"), "",
		m.renderRow("Name:", m.name.View(), m.focus == fieldName),
		m.renderRow("Email:", m.email.View(), m.focus == fieldEmail),
		m.renderRow("Phone:", m.phone.View(), m.focus == fieldPhone),
		"",
	}
	if m.errorMsg != "" {
		lines = append(lines, m.theme.Form.Error.Render(m.errorMsg))
	} else {
		lines = append(lines, m.theme.Form.Hint.Render("Enter to save • Esc to cancel"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) viewHours() string {
	client := ""
	if m.cursor < len(m.snap.Clients) {
		client = m.snap.Clients[m.cursor].Name
	}
	lines := []string{
		m.theme.Panel.Title.Render("Log hours for " + client), "",
		"  " + m.hours.View(),
		"",
	}
	if m.errorMsg != "" {
		lines = append(lines, m.theme.Form.Error.Render(m.errorMsg))
	} else {
		lines = append(lines, m.theme.Form.Hint.Render("Enter to log • Esc to cancel"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderRow(label, value string, focused bool) string {
	indicator := "  "
	style := m.theme.Form.Label
	if focused {
		indicator = m.theme.Form.Focused.Render("➤ ")
		style = m.theme.Form.Focused
	}
	return indicator + style.Render(fmt.Sprintf("%-8s", label)) + " " + value
}
