// Package app composes the root Bubble Tea model: the login gate, the
// tab layout, the notifications panel, and the toast line.
package app

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/lawe/pkg/notify"
	"tableflip.dev/lawe/pkg/session"
	"tableflip.dev/lawe/pkg/store"
	"tableflip.dev/lawe/pkg/tui/components/calendarview"
	"tableflip.dev/lawe/pkg/tui/components/clients"
	"tableflip.dev/lawe/pkg/timeutil"
	"tableflip.dev/lawe/pkg/tui/components/dashboard"
	"tableflip.dev/lawe/pkg/tui/components/documents"
	"tableflip.dev/lawe/pkg/tui/components/help"
	"tableflip.dev/lawe/pkg/tui/components/inbox"
	"tableflip.dev/lawe/pkg/tui/components/login"
	"tableflip.dev/lawe/pkg/tui/components/panel"
	"tableflip.dev/lawe/pkg/tui/components/tasks"
	"tableflip.dev/lawe/pkg/tui/events"
	"tableflip.dev/lawe/pkg/tui/theme"
)

// Tab identifies a top-level view.
type Tab int

const (
	TabDashboard Tab = iota
	TabInbox
	TabClients
	TabDocuments
	TabCalendar
	TabTasks
)

var tabNames = []string{"Dashboard", "Inbox", "Clients", "Documents", "Calendar", "Tasks"}

// tabModel is what every tab component provides to the root.
type tabModel interface {
	Init() tea.Cmd
	Update(tea.Msg) (tea.Model, tea.Cmd)
	View() string
	Refresh(store.Snapshot)
	Editing() bool
}

// Model is the root application model.
type Model struct {
	session  *session.Session
	store    *store.Store
	notifier notify.Notifier
	theme    theme.Theme

	login *login.Model
	tabs  []tabModel
	tab   Tab
	help  *help.Model

	helpOpen          bool
	notificationsOpen bool
	notificationIndex int

	toast *notify.Notice

	width  int
	height int
}

// New constructs the root model over an authenticated-or-not session
// and the backing store.
func New(sess *session.Session, st *store.Store, notifier notify.Notifier) *Model {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Model{
		session:  sess,
		store:    st,
		notifier: notifier,
		theme:    theme.Default(),
		login:    login.NewModel(sess),
		help:     help.New(72, 24),
		tabs: []tabModel{
			dashboard.NewModel(st.Snapshot()),
			inbox.NewModel(st),
			clients.NewModel(st),
			documents.NewModel(st),
			calendarview.NewModel(st, time.Now()),
			tasks.NewModel(st),
		},
	}
}

// Run launches the Bubble Tea program.
func Run(sess *session.Session, st *store.Store, notifier notify.Notifier) error {
	p := tea.NewProgram(New(sess, st, notifier), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.login.Init(), m.waitForStoreEvent()}
	for _, t := range m.tabs {
		if cmd := t.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) waitForStoreEvent() tea.Cmd {
	return func() tea.Msg {
		return <-m.store.Events()
	}
}

// Update routes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetSize(msg.Width-4, msg.Height-6)
		m.forwardToAll(msg, &cmds)
		return m, tea.Batch(cmds...)

	case events.LoginMsg:
		m.toastNotice(notify.Notice{
			Title:    "Welcome, " + msg.User.Name,
			Severity: notify.Success,
		})
		m.refreshAll()
		return m, nil

	case events.LogoutMsg:
		m.session.Logout()
		m.login = login.NewModel(m.session)
		m.tab = TabDashboard
		m.notificationsOpen = false
		m.helpOpen = false
		m.toastNotice(notify.Notice{Title: "Signed out", Severity: notify.Info})
		return m, m.login.Init()

	case events.EntityChangeMsg:
		m.refreshAll()
		return m, m.waitForStoreEvent()

	case events.ToastMsg:
		m.toastNotice(msg.Notice)
		return m, nil

	case tea.KeyPressMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	if !m.session.LoggedIn() {
		next, cmd := m.login.Update(msg)
		if lm, ok := next.(*login.Model); ok {
			m.login = lm
		}
		return m, cmd
	}

	next, cmd := m.tabs[m.tab].Update(msg)
	if tm, ok := next.(tabModel); ok {
		m.tabs[m.tab] = tm
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		return tea.Quit, true
	}
	if !m.session.LoggedIn() {
		return nil, false
	}

	if m.helpOpen {
		switch msg.String() {
		case "esc", "?", "q":
			m.helpOpen = false
			return nil, true
		}
		_, cmd := m.help.Update(msg)
		return cmd, true
	}

	if m.notificationsOpen {
		return m.handleNotificationsKey(msg), true
	}

	switch msg.String() {
	case "ctrl+n":
		m.notificationsOpen = true
		m.notificationIndex = 0
		return nil, true
	case "ctrl+l":
		return events.LogoutCmd(events.ComponentID("app")), true
	}

	if m.tabs[m.tab].Editing() {
		return nil, false
	}

	switch msg.String() {
	case "?":
		m.helpOpen = true
		return nil, true
	case "q":
		return tea.Quit, true
	case "tab":
		m.tab = Tab((int(m.tab) + 1) % len(m.tabs))
		return nil, true
	case "shift+tab":
		m.tab = Tab((int(m.tab) + len(m.tabs) - 1) % len(m.tabs))
		return nil, true
	case "1", "2", "3", "4", "5", "6":
		m.tab = Tab(int(msg.String()[0] - '1'))
		return nil, true
	}
	return nil, false
}

func (m *Model) handleNotificationsKey(msg tea.KeyPressMsg) tea.Cmd {
	snap := m.store.Snapshot()
	switch msg.String() {
	case "esc", "ctrl+n":
		m.notificationsOpen = false
	case "up", "k":
		if m.notificationIndex > 0 {
			m.notificationIndex--
		}
	case "down", "j":
		if m.notificationIndex < len(snap.Notifications)-1 {
			m.notificationIndex++
		}
	case "enter":
		if m.notificationIndex < len(snap.Notifications) {
			note := snap.Notifications[m.notificationIndex]
			if err := m.store.MarkNotificationRead(note.ID); err != nil {
				m.toastNotice(notify.Notice{Title: err.Error(), Severity: notify.Error})
			}
		}
	case "x":
		m.store.ClearNotifications()
		m.notificationIndex = 0
	}
	return nil
}

func (m *Model) forwardToAll(msg tea.Msg, cmds *[]tea.Cmd) {
	next, cmd := m.login.Update(msg)
	if lm, ok := next.(*login.Model); ok {
		m.login = lm
	}
	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	for i := range m.tabs {
		next, cmd := m.tabs[i].Update(msg)
		if tm, ok := next.(tabModel); ok {
			m.tabs[i] = tm
		}
		if cmd != nil {
			*cmds = append(*cmds, cmd)
		}
	}
}

func (m *Model) refreshAll() {
	snap := m.store.Snapshot()
	for _, t := range m.tabs {
		t.Refresh(snap)
	}
	if n := len(snap.Notifications); m.notificationIndex >= n {
		m.notificationIndex = 0
	}
}

func (m *Model) toastNotice(n notify.Notice) {
	m.toast = &n
	m.notifier.Notify(n)
}

// View renders the whole screen.
func (m *Model) View() string {
	if !m.session.LoggedIn() {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.theme.Header.Title.Render("Law-E"),
			"",
			m.login.View(),
			m.toastLine(),
		)
	}

	body := m.tabs[m.tab].View()
	if m.notificationsOpen {
		body = m.viewNotifications()
	}
	if m.helpOpen {
		body = m.help.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		m.viewTabs(),
		"",
		body,
		"",
		m.toastLine(),
	)
}

func (m *Model) viewHeader() string {
	user := ""
	if u, ok := m.session.User(); ok {
		user = m.theme.Header.User.Render("  " + u.Name + " · ctrl+n notifications · ? help")
	}
	badge := ""
	if unread := m.store.Snapshot().UnreadNotifications(); unread > 0 {
		badge = "  " + m.theme.Header.Badge.Render(fmt.Sprintf("%d", unread))
	}
	return m.theme.Header.Title.Render("Law-E") + badge + user
}

func (m *Model) viewTabs() string {
	cells := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if Tab(i) == m.tab {
			cells = append(cells, m.theme.Tabs.Active.Render(label))
		} else {
			cells = append(cells, m.theme.Tabs.Inactive.Render(label))
		}
	}
	return strings.Join(cells, "  ")
}

func (m *Model) viewNotifications() string {
	snap := m.store.Snapshot()
	now := time.Now()

	rows := make([]panel.Row, 0, len(snap.Notifications))
	for _, note := range snap.Notifications {
		marker := "●"
		if note.Read {
			marker = "○"
		}
		rows = append(rows, panel.Row{
			Text:  fmt.Sprintf("%s %s  %s", marker, note.Title, timeutil.Relative(now, note.Timestamp.Time)),
			Faint: note.Read,
		})
	}

	p := panel.New(m.theme.Panel, m.theme.List.Selected)
	p.SetContent("Notifications", rows)
	p.SetSelected(m.notificationIndex)
	p.SetEmpty("none")
	p.SetHint("enter mark read • x clear all • esc close")
	return p.View()
}

func (m *Model) toastLine() string {
	if m.toast == nil {
		return ""
	}
	style := m.theme.Toast.Info
	switch m.toast.Severity {
	case notify.Success:
		style = m.theme.Toast.Success
	case notify.Warning:
		style = m.theme.Toast.Warning
	case notify.Error:
		style = m.theme.Toast.Error
	}
	line := m.toast.Title
	if m.toast.Description != "" {
		line += ": " + m.toast.Description
	}
	return style.Render(line)
}
