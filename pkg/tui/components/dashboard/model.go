// Package dashboard renders the at-a-glance tab: totals, recent
// activity, and the document distribution charts.
package dashboard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/lawe/pkg/store"
	"tableflip.dev/lawe/pkg/tui/theme"
	"tableflip.dev/lawe/pkg/views"
)

const recentLimit = 5

// Model is a read-only projection of the store snapshot.
type Model struct {
	theme theme.Theme
	snap  store.Snapshot
	width int
}

// NewModel constructs the dashboard over an initial snapshot.
func NewModel(snap store.Snapshot) *Model {
	return &Model{
		theme: theme.Default(),
		snap:  snap,
	}
}

// Refresh replaces the snapshot backing the view.
func (m *Model) Refresh(snap store.Snapshot) {
	m.snap = snap
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. The dashboard has no interactions; it
// only tracks the window size.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
	}
	return m, nil
}

// Editing reports whether the component is capturing text input. The
// dashboard never does.
func (m *Model) Editing() bool {
	return false
}

// View renders the dashboard.
func (m *Model) View() string {
	var sections []string
	sections = append(sections, m.renderTotals())
	sections = append(sections, m.renderRecent())
	sections = append(sections, m.renderCategories())
	sections = append(sections, m.renderClients())
	sections = append(sections, m.renderTimeline())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderTotals() string {
	totals := fmt.Sprintf("%s clients   %s documents   %s billable hours",
		m.theme.Chart.Value.Render(fmt.Sprintf("%d", len(m.snap.Clients))),
		m.theme.Chart.Value.Render(fmt.Sprintf("%d", len(m.snap.Documents))),
		m.theme.Chart.Value.Render(fmt.Sprintf("%.1f", views.TotalBillableHours(m.snap))),
	)
	return m.theme.Panel.Title.Render("Overview") + "\n" + totals + "\n"
}

func (m *Model) renderRecent() string {
	lines := []string{m.theme.Panel.Title.Render("Recent activity")}
	recent := views.RecentDocuments(m.snap, recentLimit)
	if len(recent) == 0 {
		lines = append(lines, m.theme.Panel.Faint.Render("  none"))
	}
	for _, d := range recent {
		lines = append(lines, fmt.Sprintf("  %s  %s  %s",
			m.theme.Chart.Label.Render(d.CreatedAt.Format("2006-01-02")),
			d.Title,
			m.theme.Panel.Faint.Render(m.snap.ClientName(d.ClientID)),
		))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m *Model) renderCategories() string {
	groups := views.GroupByCategory(m.snap.Documents)
	ramp := theme.Ramp(len(groups))
	lines := []string{m.theme.Panel.Title.Render("Documents by category")}
	for i, g := range groups {
		lines = append(lines, fmt.Sprintf("  %-30s %s %d",
			m.theme.Chart.Label.Render(g.Category),
			m.theme.Chart.Bar.Foreground(ramp[i]).Render(bar(g.Count)),
			g.Count,
		))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m *Model) renderClients() string {
	counts := views.CountPerClient(m.snap)
	ramp := theme.Ramp(len(counts))
	lines := []string{m.theme.Panel.Title.Render("Documents per client")}
	for i, c := range counts {
		label := c.Client.Name
		if c.Hours > 0 {
			label = fmt.Sprintf("%s (%.1fh)", c.Client.Name, c.Hours)
		}
		lines = append(lines, fmt.Sprintf("  %-30s %s %d",
			m.theme.Chart.Label.Render(label),
			m.theme.Chart.Bar.Foreground(ramp[i]).Render(bar(c.Documents)),
			c.Documents,
		))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// renderTimeline accumulates the per-event series into a running total
// so each row's bar grows with the library.
func (m *Model) renderTimeline() string {
	lines := []string{m.theme.Panel.Title.Render("Activity timeline")}
	series := views.ActivitySeries(m.snap.Documents)
	if len(series) == 0 {
		lines = append(lines, m.theme.Panel.Faint.Render("  none"))
	}
	running := 0
	for _, p := range series {
		running += p.Count
		lines = append(lines, fmt.Sprintf("  %s %s %s",
			m.theme.Chart.Label.Render(p.Date.Format("2006-01-02")),
			m.theme.Chart.Bar.Render(bar(running)),
			m.theme.Panel.Faint.Render(p.Title),
		))
	}
	return strings.Join(lines, "\n")
}

func bar(n int) string {
	if n < 0 {
		n = 0
	}
	return strings.Repeat("█", n)
}
