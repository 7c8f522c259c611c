// Package calendarview renders the calendar tab: a month grid with the
// day's events beneath it and an add-event form.
package calendarview

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/lawe/pkg/entity"
	"tableflip.dev/lawe/pkg/notify"
	"tableflip.dev/lawe/pkg/store"
	"tableflip.dev/lawe/pkg/tui/components/calendar"
	"tableflip.dev/lawe/pkg/tui/events"
	"tableflip.dev/lawe/pkg/tui/theme"
	"tableflip.dev/lawe/pkg/views"
)

type mode int

const (
	modeGrid mode = iota
	modeAdd
)

type focusField int

const (
	fieldTitle focusField = iota
	fieldClient
	fieldDescription
	fieldLocation
)

// Model drives the calendar tab.
type Model struct {
	store *store.Store
	id    events.ComponentID
	theme theme.Theme

	snap  store.Snapshot
	mode  mode
	now   time.Time
	month time.Time
	day   int

	focus       focusField
	title       textinput.Model
	description textinput.Model
	location    textinput.Model
	clientIndex int

	errorMsg string
	width    int
}

// NewModel constructs the calendar tab bound to the store, anchored on
// now for the initial month and today marker.
func NewModel(st *store.Store, now time.Time) *Model {
	title := textinput.New()
	title.Placeholder = "Event title"
	title.Prompt = ""

	description := textinput.New()
	description.Placeholder = "Description (optional)"
	description.Prompt = ""

	location := textinput.New()
	location.Placeholder = "Location (optional)"
	location.Prompt = ""

	return &Model{
		store:       st,
		id:          events.ComponentID("calendar"),
		theme:       theme.Default(),
		snap:        st.Snapshot(),
		now:         now,
		month:       time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
		day:         now.Day(),
		title:       title,
		description: description,
		location:    location,
	}
}

// Refresh replaces the snapshot backing the view.
func (m *Model) Refresh(snap store.Snapshot) {
	m.snap = snap
	if m.clientIndex >= len(m.snap.Clients) {
		m.clientIndex = 0
	}
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
		return m, m.handleGridKey(msg)
	}
	return m, nil
}

func (m *Model) handleGridKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h":
		m.moveDay(-1)
	case "right", "l":
		m.moveDay(1)
	case "up", "k":
		m.moveDay(-7)
	case "down", "j":
		m.moveDay(7)
	case "p":
		m.month = m.month.AddDate(0, -1, 0)
		m.clampDay()
	case "n":
		m.month = m.month.AddDate(0, 1, 0)
		m.clampDay()
	case "t":
		m.month = time.Date(m.now.Year(), m.now.Month(), 1, 0, 0, 0, 0, m.now.Location())
		m.day = m.now.Day()
	case "a":
		if len(m.snap.Clients) == 0 {
			return events.ToastCmd(m.id, notify.Warning, "Add a client first", "")
		}
		m.mode = modeAdd
		m.focus = fieldTitle
		m.errorMsg = ""
		return m.updateInputFocus()
	}
	return nil
}

func (m *Model) moveDay(delta int) {
	m.day += delta
	last := calendar.DaysIn(m.month)
	if m.day < 1 {
		m.month = m.month.AddDate(0, -1, 0)
		m.day += calendar.DaysIn(m.month)
	} else if m.day > last {
		m.day -= last
		m.month = m.month.AddDate(0, 1, 0)
	}
}

func (m *Model) clampDay() {
	if last := calendar.DaysIn(m.month); m.day > last {
		m.day = last
	}
}

func (m *Model) handleAddKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.mode = modeGrid
		m.resetForm()
		return nil
	case "tab", "down":
		m.advanceFocus(1)
		return m.updateInputFocus()
	case "shift+tab", "up":
		m.advanceFocus(-1)
		return m.updateInputFocus()
	case "left":
		if m.focus == fieldClient {
			m.adjustClient(-1)
			return nil
		}
	case "right":
		if m.focus == fieldClient {
			m.adjustClient(1)
			return nil
		}
	case "enter":
		return m.submit()
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
	case fieldDescription:
		m.description, cmd = m.description.Update(msg)
	case fieldLocation:
		m.location, cmd = m.location.Update(msg)
	}
	return cmd
}

func (m *Model) advanceFocus(delta int) {
	const count = 4
	m.focus = focusField((int(m.focus) + count + delta) % count)
}

func (m *Model) adjustClient(delta int) {
	n := len(m.snap.Clients)
	if n == 0 {
		return
	}
	m.clientIndex = (m.clientIndex + n + delta) % n
}

func (m *Model) updateInputFocus() tea.Cmd {
	m.title.Blur()
	m.description.Blur()
	m.location.Blur()
	switch m.focus {
	case fieldTitle:
		return m.title.Focus()
	case fieldDescription:
		return m.description.Focus()
	case fieldLocation:
		return m.location.Focus()
	}
	return nil
}

func (m *Model) submit() tea.Cmd {
	date := time.Date(m.month.Year(), m.month.Month(), m.day, 0, 0, 0, 0, m.month.Location())
	ev, err := m.store.AddEvent(entity.Event{
		Title:       m.title.Value(),
		Date:        entity.At(date),
		ClientID:    m.snap.Clients[m.clientIndex].ID,
		Description: m.description.Value(),
		Location:    m.location.Value(),
	})
	if err != nil {
		m.errorMsg = err.Error()
		return nil
	}
	m.mode = modeGrid
	m.resetForm()
	return events.ToastCmd(m.id, notify.Success, "Event scheduled",
		fmt.Sprintf("%s on %s", ev.Title, date.Format("January 2, 2006")))
}

func (m *Model) resetForm() {
	m.title.SetValue("")
	m.description.SetValue("")
	m.location.SetValue("")
	m.clientIndex = 0
	m.errorMsg = ""
}

// Editing reports whether the add form is capturing keys.
func (m *Model) Editing() bool {
	return m.mode == modeAdd
}

// View renders the calendar tab.
func (m *Model) View() string {
	if m.mode == modeAdd {
		return m.viewAdd()
	}
	return m.viewGrid()
}

func (m *Model) viewGrid() string {
	days := make([]calendar.Day, 0, calendar.DaysIn(m.month))
	for d := 1; d <= calendar.DaysIn(m.month); d++ {
		date := time.Date(m.month.Year(), m.month.Month(), d, 0, 0, 0, 0, m.month.Location())
		days = append(days, calendar.Day{
			Day:        d,
			HasEvent:   len(views.EventsOn(m.snap, entity.At(date))) > 0,
			IsToday:    sameDay(date, m.now),
			IsSelected: d == m.day,
		})
	}

	lines := []string{
		m.theme.Panel.Title.Render(m.month.Format("January 2006")), "",
		calendar.Render(m.month, days, calendar.DefaultOptions()), "",
	}

	selected := time.Date(m.month.Year(), m.month.Month(), m.day, 0, 0, 0, 0, m.month.Location())
	lines = append(lines, m.theme.Panel.Title.Render(selected.Format("January 2, 2006")))
	dayEvents := views.EventsOn(m.snap, entity.At(selected))
	if len(dayEvents) == 0 {
		lines = append(lines, m.theme.Panel.Faint.Render("  no events"))
	}
	for _, ev := range dayEvents {
		row := fmt.Sprintf("  %s · %s", ev.Title, m.snap.ClientName(ev.ClientID))
		if ev.Location != "" {
			row += m.theme.Panel.Faint.Render(" @ " + ev.Location)
		}
		lines = append(lines, row)
	}

	lines = append(lines, "", m.theme.Form.Hint.Render("arrows move • n/p month • t today • a add event"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) viewAdd() string {
	date := time.Date(m.month.Year(), m.month.Month(), m.day, 0, 0, 0, 0, m.month.Location())
	client := "(none)"
	if len(m.snap.Clients) > 0 {
		client = m.snap.Clients[m.clientIndex].Name
	}

	lines := []string{
		m.theme.Panel.Title.Render("Add event on " + date.Format("January 2, 2006")), "",
		m.renderRow("Title:", m.title.View(), m.focus == fieldTitle),
		m.renderRow("Client:", "◀ "+client+" ▶", m.focus == fieldClient),
		m.renderRow("Details:", m.description.View(), m.focus == fieldDescription),
		m.renderRow("Where:", m.location.View(), m.focus == fieldLocation),
		"",
	}
	if m.errorMsg != "" {
		lines = append(lines, m.theme.Form.Error.Render(m.errorMsg))
	} else {
		lines = append(lines, m.theme.Form.Hint.Render("Enter to schedule • Esc to cancel"))
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
	return indicator + style.Render(fmt.Sprintf("%-9s", label)) + " " + value
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
