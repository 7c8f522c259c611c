// Package documents renders the documents tab: a sorted, searchable
// listing plus the intake form with its simulated upload.
package documents

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
	"tableflip.dev/lawe/pkg/upload"
	"tableflip.dev/lawe/pkg/views"
)

type mode int

const (
	modeView mode = iota
	modeAdd
)

type focusField int

const (
	fieldTitle focusField = iota
	fieldClient
	fieldCategory
	fieldSubCategory
	fieldFile
)

// Model drives the documents tab.
type Model struct {
	store *store.Store
	id    events.ComponentID
	theme theme.Theme

	snap store.Snapshot
	mode mode

	// view mode
	search        textinput.Model
	searchFocused bool
	sortKey       views.SortKey
	cursor        int

	// add mode
	focus            focusField
	title            textinput.Model
	file             textinput.Model
	clientIndex      int
	categoryIndex    int
	subCategoryIndex int

	sim      upload.Sim
	errorMsg string
	width    int
}

// NewModel constructs the documents tab bound to the store.
func NewModel(st *store.Store) *Model {
	search := textinput.New()
	search.Placeholder = "Search title, client, category…"
	search.Prompt = "/ "

	title := textinput.New()
	title.Placeholder = "Document title"
	title.Prompt = ""

	file := textinput.New()
	file.Placeholder = "File name, e.g. brief.pdf"
	file.Prompt = ""

	return &Model{
		store:   st,
		id:      events.ComponentID("documents"),
		theme:   theme.Default(),
		snap:    st.Snapshot(),
		search:  search,
		sortKey: views.SortTitle,
		title:   title,
		file:    file,
	}
}

// Refresh replaces the snapshot backing the view.
func (m *Model) Refresh(snap store.Snapshot) {
	m.snap = snap
	if m.clientIndex >= len(m.snap.Clients) {
		m.clientIndex = 0
	}
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
	case upload.TickMsg:
		cmd := m.sim.Update(msg)
		if m.sim.Done() {
			return m, m.fileDocument()
		}
		return m, cmd
	case tea.KeyPressMsg:
		if m.mode == modeAdd {
			return m, m.handleAddKey(msg)
		}
		return m, m.handleViewKey(msg)
	}
	return m, nil
}

func (m *Model) handleViewKey(msg tea.KeyPressMsg) tea.Cmd {
	if m.searchFocused {
		switch msg.String() {
		case "enter", "esc":
			m.searchFocused = false
			m.search.Blur()
			return nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.clampCursor()
		return cmd
	}

	switch msg.String() {
	case "/":
		m.searchFocused = true
		return m.search.Focus()
	case "s":
		m.cycleSort()
	case "a":
		m.mode = modeAdd
		m.focus = fieldTitle
		m.errorMsg = ""
		return m.updateInputFocus()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
	}
	return nil
}

func (m *Model) handleAddKey(msg tea.KeyPressMsg) tea.Cmd {
	if m.sim.Active() {
		if msg.String() == "esc" {
			m.sim.Cancel()
			m.errorMsg = ""
		}
		return nil
	}

	switch msg.String() {
	case "esc":
		m.mode = modeView
		m.resetForm()
		return nil
	case "tab", "down":
		m.advanceFocus(1)
		return m.updateInputFocus()
	case "shift+tab", "up":
		m.advanceFocus(-1)
		return m.updateInputFocus()
	case "left":
		m.adjustSelection(-1)
		return nil
	case "right":
		m.adjustSelection(1)
		return nil
	case "enter":
		return m.submit()
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
	case fieldFile:
		m.file, cmd = m.file.Update(msg)
	}
	return cmd
}

func (m *Model) cycleSort() {
	keys := views.SortKeys()
	for i, k := range keys {
		if k == m.sortKey {
			m.sortKey = keys[(i+1)%len(keys)]
			return
		}
	}
	m.sortKey = keys[0]
}

func (m *Model) advanceFocus(delta int) {
	const count = 5
	m.focus = focusField((int(m.focus) + count + delta) % count)
}

func (m *Model) adjustSelection(delta int) {
	switch m.focus {
	case fieldClient:
		if n := len(m.snap.Clients); n > 0 {
			m.clientIndex = uiutil.ClampIndex(m.clientIndex+delta, n)
		}
	case fieldCategory:
		if n := len(taxonomy.Categories()); n > 0 {
			m.categoryIndex = uiutil.ClampIndex(m.categoryIndex+delta, n)
			m.subCategoryIndex = 0
		}
	case fieldSubCategory:
		if n := len(m.subCategories()); n > 0 {
			m.subCategoryIndex = uiutil.ClampIndex(m.subCategoryIndex+delta, n)
		}
	}
}

func (m *Model) subCategories() []string {
	cats := taxonomy.Categories()
	if m.categoryIndex >= len(cats) {
		return nil
	}
	return taxonomy.SubCategories(cats[m.categoryIndex])
}

// submit validates the draft and starts the simulated upload. The
// document is filed once the progress run completes.
func (m *Model) submit() tea.Cmd {
	if strings.TrimSpace(m.title.Value()) == "" {
		m.errorMsg = "document title is required"
		return nil
	}
	if len(m.snap.Clients) == 0 {
		m.errorMsg = "add a client first"
		return nil
	}
	if strings.TrimSpace(m.file.Value()) == "" {
		m.errorMsg = "pick a file"
		return nil
	}
	m.errorMsg = ""
	return m.sim.Start()
}

func (m *Model) fileDocument() tea.Cmd {
	cats := taxonomy.Categories()
	subs := m.subCategories()
	doc := entity.Document{
		Title:       m.title.Value(),
		ClientID:    m.snap.Clients[m.clientIndex].ID,
		Category:    string(cats[m.categoryIndex]),
		SubCategory: subs[m.subCategoryIndex],
		FileName:    strings.TrimSpace(m.file.Value()),
	}
	doc.FileType = upload.FileType(doc.FileName)
	doc.FileURL = upload.Reference(doc.FileName)

	filed, err := m.store.AddDocument(doc)
	if err != nil {
		m.sim.Cancel()
		m.errorMsg = err.Error()
		return nil
	}
	m.mode = modeView
	m.resetForm()
	return events.ToastCmd(m.id, notify.Success, "Document filed", filed.Title)
}

func (m *Model) resetForm() {
	m.title.SetValue("")
	m.file.SetValue("")
	m.clientIndex = 0
	m.categoryIndex = 0
	m.subCategoryIndex = 0
	m.errorMsg = ""
	m.sim.Cancel()
}

func (m *Model) updateInputFocus() tea.Cmd {
	m.title.Blur()
	m.file.Blur()
	switch m.focus {
	case fieldTitle:
		return m.title.Focus()
	case fieldFile:
		return m.file.Focus()
	}
	return nil
}

func (m *Model) visible() []entity.Document {
	docs := views.FilterDocuments(m.snap, m.search.Value(), true)
	return views.SortDocuments(m.snap, docs, m.sortKey)
}

func (m *Model) clampCursor() {
	m.cursor = uiutil.ClampIndex(m.cursor, len(m.visible()))
}

// Editing reports whether a form or the search input is capturing keys.
func (m *Model) Editing() bool {
	return m.mode == modeAdd || m.searchFocused
}

// View renders the documents tab.
func (m *Model) View() string {
	if m.mode == modeAdd {
		return m.viewAdd()
	}
	return m.viewList()
}

func (m *Model) viewList() string {
	var lines []string
	lines = append(lines,
		m.search.View()+"   "+m.theme.Panel.Faint.Render("sort: "+string(m.sortKey)),
		"",
	)
	docs := m.visible()
	if len(docs) == 0 {
		lines = append(lines, m.theme.Panel.Faint.Render("  no documents match"))
	}
	for i, d := range docs {
		row := fmt.Sprintf("%-28s %-14s %s › %s  %s",
			uiutil.Truncate(d.Title, 28),
			uiutil.Truncate(m.snap.ClientName(d.ClientID), 14),
			d.Category,
			d.SubCategory,
			m.theme.Panel.Faint.Render(d.CreatedAt.Format("2006-01-02")),
		)
		if i == m.cursor {
			lines = append(lines, m.theme.List.Selected.Render("➤ "+row))
		} else {
			lines = append(lines, m.theme.List.Normal.Render("  "+row))
		}
	}
	lines = append(lines, "", m.theme.Form.Hint.Render("/ search • s sort • a add • ↑/↓ select"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) viewAdd() string {
	cats := taxonomy.Categories()
	category := string(cats[m.categoryIndex])
	sub := "(none)"
	if subs := m.subCategories(); len(subs) > 0 {
		sub = subs[m.subCategoryIndex]
	}
	client := "(none)"
	if len(m.snap.Clients) > 0 {
		client = m.snap.Clients[m.clientIndex].Name
	}

	lines := []string{
		m.theme.Panel.Title.Render("Add document"), "",
		m.renderRow("Title:", m.title.View(), m.focus == fieldTitle),
		m.renderRow("Client:", "◀ "+client+" ▶", m.focus == fieldClient),
		m.renderRow("Category:", "◀ "+category+" ▶", m.focus == fieldCategory),
		m.renderRow("Folder:", "◀ "+sub+" ▶", m.focus == fieldSubCategory),
		m.renderRow("File:", m.file.View(), m.focus == fieldFile),
		"",
	}

	switch {
	case m.sim.Active():
		lines = append(lines, "  "+m.renderProgress(), "",
			m.theme.Form.Hint.Render("Uploading… Esc to cancel"))
	case m.errorMsg != "":
		lines = append(lines, m.theme.Form.Error.Render(m.errorMsg))
	default:
		lines = append(lines, m.theme.Form.Hint.Render("Enter to upload • ←/→ pickers • Tab between fields • Esc to cancel"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderProgress() string {
	filled := m.sim.Percent() / upload.Step
	total := upload.Terminal / upload.Step
	bar := strings.Repeat("█", filled) + strings.Repeat("░", total-filled)
	return fmt.Sprintf("%s %3d%%", m.theme.Chart.Bar.Render(bar), m.sim.Percent())
}

func (m *Model) renderRow(label, value string, focused bool) string {
	indicator := "  "
	style := m.theme.Form.Label
	if focused {
		indicator = m.theme.Form.Focused.Render("➤ ")
		style = m.theme.Form.Focused
	}
	return indicator + style.Render(fmt.Sprintf("%-10s", label)) + " " + value
}
