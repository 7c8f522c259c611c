// Package notify defines the toast contract the app uses to surface
// transient feedback, plus a console implementation for CLI runs.
package notify

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Severity classifies a notice for presentation.
type Severity string

const (
	Info    Severity = "info"
	Success Severity = "success"
	Warning Severity = "warning"
	Error   Severity = "error"
)

// Notice is a single transient message.
type Notice struct {
	Title       string
	Description string
	Severity    Severity
}

// Notifier receives notices. Implementations decide how (and whether) to
// show them.
type Notifier interface {
	Notify(n Notice)
}

// Discard drops every notice.
type Discard struct{}

func (Discard) Notify(Notice) {}

// Console writes colored notices to an io.Writer.
type Console struct {
	Out io.Writer
}

func (c Console) Notify(n Notice) {
	if c.Out == nil {
		return
	}
	label := color.New(color.FgCyan)
	switch n.Severity {
	case Success:
		label = color.New(color.FgGreen)
	case Warning:
		label = color.New(color.FgYellow)
	case Error:
		label = color.New(color.FgRed)
	}
	if n.Description != "" {
		fmt.Fprintf(c.Out, "%s %s\n", label.Sprint(n.Title), n.Description)
		return
	}
	fmt.Fprintf(c.Out, "%s\n", label.Sprint(n.Title))
}
