// Package upload fakes the file side of document intake: it mints
// ephemeral local URLs for picked files and drives a cosmetic progress
// bar. No bytes move anywhere.
package upload

import (
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

const (
	// Step is the percent gained per tick.
	Step = 10
	// Terminal is the percent at which an upload completes.
	Terminal = 100
	// Interval is the simulated transfer tick period.
	Interval = 500 * time.Millisecond
)

// Reference returns the ephemeral local URL a picked file is filed
// under for the rest of the session.
func Reference(fileName string) string {
	name := strings.TrimSpace(filepath.Base(fileName))
	if name == "" || name == "." {
		return ""
	}
	return "/documents/" + name
}

// FileType guesses a MIME type from the file extension. Unknown
// extensions yield "application/octet-stream".
func FileType(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return "application/pdf"
	case ".doc", ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".xls", ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ".ppt", ".pptx":
		return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}

// TickMsg advances a running simulation. The ID ties the tick to the
// run that scheduled it, so cancelled runs ignore stale ticks.
type TickMsg struct {
	ID int
}

// Sim is a single-slot upload progress simulation. Zero value is idle.
type Sim struct {
	id      int
	percent int
	active  bool
}

// Start begins a fresh run at zero percent and schedules the first
// tick. Any run already in flight is superseded.
func (s *Sim) Start() tea.Cmd {
	s.id++
	s.percent = 0
	s.active = true
	return tick(s.id)
}

// Update consumes a tick and schedules the next one until the run
// reaches the terminal percent. Stale ticks are ignored.
func (s *Sim) Update(msg TickMsg) tea.Cmd {
	if !s.Advance(msg.ID) {
		return nil
	}
	return tick(s.id)
}

// Advance applies one step for the given run and reports whether more
// ticks are needed.
func (s *Sim) Advance(id int) bool {
	if !s.active || id != s.id {
		return false
	}
	s.percent += Step
	if s.percent >= Terminal {
		s.percent = Terminal
		s.active = false
		return false
	}
	return true
}

// Cancel abandons the current run, resetting progress.
func (s *Sim) Cancel() {
	s.active = false
	s.percent = 0
}

// Active reports whether a run is in flight.
func (s *Sim) Active() bool {
	return s.active
}

// Done reports whether the last run reached the terminal percent.
func (s *Sim) Done() bool {
	return !s.active && s.percent == Terminal
}

// Percent returns the current progress value.
func (s *Sim) Percent() int {
	return s.percent
}

func tick(id int) tea.Cmd {
	return tea.Tick(Interval, func(time.Time) tea.Msg {
		return TickMsg{ID: id}
	})
}
