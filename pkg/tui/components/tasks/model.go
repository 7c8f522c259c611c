// Package tasks renders the task list with toggle, delete, and an
// add form.
package tasks

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/lawe/pkg/entity"
	"tableflip.dev/lawe/pkg/notify"
	"tableflip.dev/lawe/pkg/store"
	"tableflip.dev/lawe/pkg/timeutil"
	"tableflip.dev/lawe/pkg/tui/events"
	"tableflip.dev/lawe/pkg/tui/theme"
	"tableflip.dev/lawe/pkg/tui/uiutil"
)

const dueLayout = "2006-01-02"

type mode int

const (
	modeList mode = iota
	modeAdd
)

type focusField int

const (
	fieldTitle focusField = iota
	fieldDue
)

// Model drives the tasks tab.
type Model struct {
	store *store.Store
	id    events.ComponentID
	theme theme.Theme

	snap   store.Snapshot
	mode   mode
	cursor int

	focus focusField
	title textinput.Model
	due   textinput.Model

	errorMsg string
	width    int
}

// NewModel constructs the tasks tab bound to the store.
func NewModel(st *store.Store) *Model {
	title := textinput.New()
	title.Placeholder = "Task description"
	title.Prompt = ""

	due := textinput.New()
	due.Placeholder = "Due date, e.g. 2026-09-15"
	due.Prompt = ""

	return &Model{
		store: st,
		id:    events.ComponentID("tasks"),
		theme: theme.Default(),
		snap:  st.Snapshot(),
		title: title,
		due:   due,
	}
}

// Refresh replaces the snapshot backing the view.
func (m *Model) Refresh(snap store.Snapshot) {
	m.snap = snap
	m.cursor = uiutil.ClampIndex(m.cursor, len(m.snap.Tasks))
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
		if m.mode == modeAdd {
			return m, m.handleAddKey(msg)
		}
		return m, m.handleListKey(msg)
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
		if m.cursor < len(m.snap.Tasks)-1 {
			m.cursor++
		}
	case "a":
		m.mode = modeAdd
		m.focus = fieldTitle
		m.errorMsg = ""
		return m.updateInputFocus()
	case "space", "enter":
		if len(m.snap.Tasks) == 0 {
			return nil
		}
		if _, err := m.store.ToggleTask(m.snap.Tasks[m.cursor].ID); err != nil {
			return events.ToastCmd(m.id, notify.Error, "Toggle failed", err.Error())
		}
	case "d":
		if len(m.snap.Tasks) == 0 {
			return nil
		}
		task := m.snap.Tasks[m.cursor]
		if err := m.store.DeleteTask(task.ID); err != nil {
			return events.ToastCmd(m.id, notify.Error, "Delete failed", err.Error())
		}
		return events.ToastCmd(m.id, notify.Success, "Task removed", task.Title)
	}
	return nil
}

func (m *Model) handleAddKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.resetForm()
		return nil
	case "tab", "down", "shift+tab", "up":
		if m.focus == fieldTitle {
			m.focus = fieldDue
		} else {
			m.focus = fieldTitle
		}
		return m.updateInputFocus()
	case "enter":
		return m.submit()
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
	case fieldDue:
		m.due, cmd = m.due.Update(msg)
	}
	return cmd
}

func (m *Model) submit() tea.Cmd {
	var due entity.Timestamp
	if raw := strings.TrimSpace(m.due.Value()); raw != "" {
		t, err := time.Parse(dueLayout, raw)
		if err != nil {
			m.errorMsg = "due date must look like 2026-09-15"
			return nil
		}
		due = entity.At(t)
	}
	task, err := m.store.AddTask(m.title.Value(), due)
	if err != nil {
		m.errorMsg = err.Error()
		return nil
	}
	m.mode = modeList
	m.resetForm()
	return events.ToastCmd(m.id, notify.Success, "Task added", task.Title)
}

func (m *Model) resetForm() {
	m.title.SetValue("")
	m.due.SetValue("")
	m.errorMsg = ""
}

func (m *Model) updateInputFocus() tea.Cmd {
	m.title.Blur()
	m.due.Blur()
	if m.focus == fieldTitle {
		return m.title.Focus()
	}
	return m.due.Focus()
}

// Editing reports whether the add form is capturing keys.
func (m *Model) Editing() bool {
	return m.mode == modeAdd
}

// View renders the tasks tab.
func (m *Model) View() string {
	if m.mode == modeAdd {
		return m.viewAdd()
	}
	return m.viewList()
}

func (m *Model) viewList() string {
	now := time.Now()
	var lines []string
	if len(m.snap.Tasks) == 0 {
		lines = append(lines, m.theme.Panel.Faint.Render("  no tasks"))
	}
	for i, t := range m.snap.Tasks {
		check := "☐"
		style := m.theme.List.Normal
		if t.Completed {
			check = "☑"
			style = m.theme.List.Done
		}
		row := fmt.Sprintf("%s %s", check, t.Title)
		if !t.DueDate.IsZero() {
			label := t.DueDate.Format(dueLayout)
			if !t.Completed {
				label += " · " + timeutil.DueLabel(now, t.DueDate.Time)
			}
			row += m.theme.Panel.Faint.Render("  " + label)
		}
		if i == m.cursor {
			lines = append(lines, m.theme.List.Selected.Render("➤ ")+style.Render(row))
		} else {
			lines = append(lines, "  "+style.Render(row))
		}
	}
	lines = append(lines, "", m.theme.Form.Hint.Render("space toggle • a add • d delete • ↑/↓ select"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) viewAdd() string {
	lines := []string{
		m.theme.Panel.Title.Render("Add task"), "",
		m.renderRow("Task:", m.title.View(), m.focus == fieldTitle),
		m.renderRow("Due:", m.due.View(), m.focus == fieldDue),
		"",
	}
	if m.errorMsg != "" {
		lines = append(lines, m.theme.Form.Error.Render(m.errorMsg))
	} else {
		lines = append(lines, m.theme.Form.Hint.Render("Enter to add • Esc to cancel"))
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
	return indicator + style.Render(fmt.Sprintf("%-6s", label)) + " " + value
}
