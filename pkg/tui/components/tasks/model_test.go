package tasks

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/lawe/pkg/store"
	"tableflip.dev/lawe/pkg/tui/events"
)

func seededModel() (*Model, *store.Store) {
	st := store.New("store")
	st.Seed(time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC))
	return NewModel(st), st
}

func press(m *Model, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func typeText(m *Model, text string) {
	for _, r := range text {
		press(m, tea.KeyPressMsg{Text: string(r), Code: r})
	}
}

func TestSpaceTogglesSelectedTask(t *testing.T) {
	m, st := seededModel()

	press(m, tea.KeyPressMsg{Code: tea.KeySpace})
	if !st.Snapshot().Tasks[0].Completed {
		t.Fatalf("expected first task completed after toggle")
	}

	press(m, tea.KeyPressMsg{Code: tea.KeySpace})
	if st.Snapshot().Tasks[0].Completed {
		t.Fatalf("expected toggle to be an involution")
	}
}

func TestAddTaskWithoutDueDate(t *testing.T) {
	m, st := seededModel()

	press(m, tea.KeyPressMsg{Text: "a", Code: 'a'})
	if !m.Editing() {
		t.Fatalf("expected add form to capture keys")
	}
	typeText(m, "Call the clerk")
	cmd := press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a toast after adding")
	}
	if _, ok := cmd().(events.ToastMsg); !ok {
		t.Fatalf("expected ToastMsg, got %T", cmd())
	}

	tasks := st.Snapshot().Tasks
	if len(tasks) != 4 {
		t.Fatalf("expected 4 tasks, got %d", len(tasks))
	}
	added := tasks[len(tasks)-1]
	if added.Title != "Call the clerk" || added.ID != 4 {
		t.Fatalf("unexpected task: %+v", added)
	}
	if m.Editing() {
		t.Fatalf("expected form closed after submit")
	}
}

func TestAddTaskRejectsBadDueDate(t *testing.T) {
	m, st := seededModel()

	press(m, tea.KeyPressMsg{Text: "a", Code: 'a'})
	typeText(m, "File the brief")
	press(m, tea.KeyPressMsg{Code: tea.KeyTab})
	typeText(m, "tomorrow")
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if !strings.Contains(m.errorMsg, "due date must look like") {
		t.Fatalf("expected due date error, got %q", m.errorMsg)
	}
	if n := len(st.Snapshot().Tasks); n != 3 {
		t.Fatalf("expected no task added, got %d", n)
	}
}

func TestDeleteSelectedTask(t *testing.T) {
	m, st := seededModel()

	cmd := press(m, tea.KeyPressMsg{Text: "d", Code: 'd'})
	if cmd == nil {
		t.Fatalf("expected a toast after delete")
	}

	tasks := st.Snapshot().Tasks
	if len(tasks) != 2 || tasks[0].ID != 2 {
		t.Fatalf("expected first task removed, got %+v", tasks)
	}
}
