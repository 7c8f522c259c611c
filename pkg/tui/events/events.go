package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/lawe/pkg/entity"
	"tableflip.dev/lawe/pkg/notify"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// ChangeType enumerates supported change actions across components.
type ChangeType string

const (
	// ChangeCreate indicates a new resource was created.
	ChangeCreate ChangeType = "create"
	// ChangeUpdate indicates an existing resource changed.
	ChangeUpdate ChangeType = "update"
	// ChangeDelete indicates a resource was removed.
	ChangeDelete ChangeType = "delete"
	// ChangeReorder indicates a resource sequence was rearranged.
	ChangeReorder ChangeType = "reorder"
)

// EntityKind names the collection an entity change applies to.
type EntityKind string

const (
	KindClient       EntityKind = "client"
	KindDocument     EntityKind = "document"
	KindEvent        EntityKind = "event"
	KindTask         EntityKind = "task"
	KindNotification EntityKind = "notification"
	KindHours        EntityKind = "hours"
)

// EntityChangeMsg announces a store mutation so components can refresh
// their local state from a fresh snapshot.
type EntityChangeMsg struct {
	Component ComponentID
	Action    ChangeType
	Kind      EntityKind
	ID        int64
	Label     string
	Meta      map[string]string
}

// Describe renders the change in a human-friendly format for logs.
func (m EntityChangeMsg) Describe() string {
	return fmt.Sprintf(`action:%q kind:%q id:%d label:%q`, m.Action, m.Kind, m.ID, m.Label)
}

// ToastMsg asks the root model to flash a transient notice.
type ToastMsg struct {
	Component ComponentID
	Notice    notify.Notice
}

// Describe implements the logging helper.
func (m ToastMsg) Describe() string {
	return fmt.Sprintf(`severity:%q title:%q`, m.Notice.Severity, m.Notice.Title)
}

// ToastCmd wraps ToastMsg in a tea.Cmd.
func ToastCmd(component ComponentID, severity notify.Severity, title, description string) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{
			Component: component,
			Notice: notify.Notice{
				Title:       title,
				Description: description,
				Severity:    severity,
			},
		}
	}
}

// LoginMsg announces a successful authentication.
type LoginMsg struct {
	Component ComponentID
	User      entity.User
}

// Describe implements the logging helper.
func (m LoginMsg) Describe() string {
	return fmt.Sprintf(`user:%q email:%q`, m.User.Name, m.User.Email)
}

// LoginCmd wraps LoginMsg in a tea.Cmd.
func LoginCmd(component ComponentID, user entity.User) tea.Cmd {
	return func() tea.Msg {
		return LoginMsg{Component: component, User: user}
	}
}

// LogoutMsg announces the session ended.
type LogoutMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m LogoutMsg) Describe() string {
	return fmt.Sprintf(`component:%q`, m.Component)
}

// LogoutCmd wraps LogoutMsg in a tea.Cmd.
func LogoutCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return LogoutMsg{Component: component}
	}
}
