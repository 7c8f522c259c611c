// Package login renders the sign-in / register form shown before the
// session opens.
package login

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/lawe/pkg/session"
	"tableflip.dev/lawe/pkg/tui/events"
	"tableflip.dev/lawe/pkg/tui/theme"
)

type mode int

const (
	modeLogin mode = iota
	modeRegister
)

type focusField int

const (
	fieldName focusField = iota
	fieldEmail
	fieldPassword
)

// Model collects credentials and opens the session on submit.
type Model struct {
	session *session.Session
	id      events.ComponentID
	theme   theme.Theme

	mode  mode
	focus focusField

	name     textinput.Model
	email    textinput.Model
	password textinput.Model

	errorMsg string
	width    int
}

// NewModel constructs the login form bound to the provided session.
func NewModel(sess *session.Session) *Model {
	name := textinput.New()
	name.Placeholder = "Full name"
	name.Prompt = ""

	email := textinput.New()
	email.Placeholder = "Email"
	email.Prompt = ""
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.Prompt = ""
	password.EchoMode = textinput.EchoPassword

	return &Model{
		session:  sess,
		id:       events.ComponentID("login"),
		theme:    theme.Default(),
		focus:    fieldEmail,
		name:     name,
		email:    email,
		password: password,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.email.Focus()
}

// Update processes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab", "down":
			m.advanceFocus(1)
			return m, m.updateInputFocus()
		case "shift+tab", "up":
			m.advanceFocus(-1)
			return m, m.updateInputFocus()
		case "ctrl+r":
			m.toggleMode()
			return m, m.updateInputFocus()
		case "enter":
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldName:
		m.name, cmd = m.name.Update(msg)
	case fieldEmail:
		m.email, cmd = m.email.Update(msg)
	case fieldPassword:
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

// View renders the form.
func (m *Model) View() string {
	title := "Sign in"
	hint := "Enter to sign in • Tab between fields • Ctrl+R to register"
	if m.mode == modeRegister {
		title = "Create account"
		hint = "Enter to register • Tab between fields • Ctrl+R to sign in"
	}

	lines := []string{m.theme.Panel.Title.Render(title), ""}
	if m.mode == modeRegister {
		lines = append(lines, m.renderRow("Name:", m.name.View(), m.focus == fieldName))
	}
	lines = append(lines,
		m.renderRow("Email:", m.email.View(), m.focus == fieldEmail),
		m.renderRow("Password:", m.password.View(), m.focus == fieldPassword),
		"",
	)
	if m.errorMsg != "" {
		lines = append(lines, m.theme.Form.Error.Render(m.errorMsg))
	} else {
		lines = append(lines, m.theme.Form.Hint.Render(hint))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return m.theme.Panel.Frame.Render(body)
}

func (m *Model) renderRow(label, value string, focused bool) string {
	indicator := "  "
	style := m.theme.Form.Label
	if focused {
		indicator = m.theme.Form.Focused.Render("➤ ")
		style = m.theme.Form.Focused
	}
	return indicator + style.Render(padLabel(label)) + " " + value
}

func padLabel(label string) string {
	const width = 10
	if len(label) >= width {
		return label
	}
	return label + strings.Repeat(" ", width-len(label))
}

func (m *Model) toggleMode() {
	if m.mode == modeLogin {
		m.mode = modeRegister
		m.focus = fieldName
	} else {
		m.mode = modeLogin
		m.focus = fieldEmail
	}
	m.errorMsg = ""
}

func (m *Model) fields() []focusField {
	if m.mode == modeRegister {
		return []focusField{fieldName, fieldEmail, fieldPassword}
	}
	return []focusField{fieldEmail, fieldPassword}
}

func (m *Model) advanceFocus(delta int) {
	seq := m.fields()
	current := 0
	for i, f := range seq {
		if f == m.focus {
			current = i
			break
		}
	}
	current = (current + len(seq) + delta) % len(seq)
	m.focus = seq[current]
}

func (m *Model) updateInputFocus() tea.Cmd {
	m.name.Blur()
	m.email.Blur()
	m.password.Blur()
	switch m.focus {
	case fieldName:
		return m.name.Focus()
	case fieldEmail:
		return m.email.Focus()
	default:
		return m.password.Focus()
	}
}

func (m *Model) submit() tea.Cmd {
	var err error
	var cmd tea.Cmd
	if m.mode == modeRegister {
		user, rerr := m.session.Register(m.name.Value(), m.email.Value(), m.password.Value())
		err = rerr
		if err == nil {
			cmd = events.LoginCmd(m.id, user)
		}
	} else {
		user, lerr := m.session.Login(m.email.Value(), m.password.Value())
		err = lerr
		if err == nil {
			cmd = events.LoginCmd(m.id, user)
		}
	}
	if err != nil {
		m.errorMsg = err.Error()
		return nil
	}
	m.errorMsg = ""
	m.password.SetValue("")
	return cmd
}
