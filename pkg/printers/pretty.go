package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/lawe/pkg/entity"
	"tableflip.dev/lawe/pkg/store"
	"tableflip.dev/lawe/pkg/views"
)

// PrettyPrint writes colored tables for the CLI surface.
type PrettyPrint struct {
	Out io.Writer
}

func (pp *PrettyPrint) writer() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = fmt.Fprintln(pp.writer(), t.Sprint(title))
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = fmt.Fprintf(pp.writer(), "%s\n\n", f.Sprint(" none"))
}

// Clients prints the roster with document counts and billable hours.
func (pp *PrettyPrint) Clients(counts []views.ClientCount) {
	if len(counts) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	bold := color.New(color.Bold)
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Name"), bold.Sprint("Email"), bold.Sprint("Phone"), bold.Sprint("Docs"), bold.Sprint("Hours"))
	for _, c := range counts {
		tbl.AddRow(c.Client.ID, c.Client.Name, c.Client.Email, c.Client.Phone, c.Documents, fmt.Sprintf("%.1f", c.Hours))
	}
	_, _ = fmt.Fprintln(pp.writer(), tbl)
	_, _ = fmt.Fprintln(pp.writer(), "")
}

// Documents prints a document listing with owner names resolved.
func (pp *PrettyPrint) Documents(snap store.Snapshot, docs []entity.Document) {
	if len(docs) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	bold := color.New(color.Bold)
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Title"), bold.Sprint("Client"), bold.Sprint("Folder"), bold.Sprint("Created"))
	for _, d := range docs {
		tbl.AddRow(d.ID, d.Title, snap.ClientName(d.ClientID),
			d.Category+" › "+d.SubCategory, d.CreatedAt.Format("2006-01-02"))
	}
	_, _ = fmt.Fprintln(pp.writer(), tbl)
	_, _ = fmt.Fprintln(pp.writer(), "")
}

// Events prints calendar events, marking references to removed clients.
func (pp *PrettyPrint) Events(snap store.Snapshot) {
	if len(snap.Events) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	bold := color.New(color.Bold)
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Date"), bold.Sprint("Title"), bold.Sprint("Client"))
	for _, ev := range snap.Events {
		tbl.AddRow(ev.ID, ev.Date.Format("2006-01-02"), ev.Title, snap.ClientName(ev.ClientID))
	}
	_, _ = fmt.Fprintln(pp.writer(), tbl)
	_, _ = fmt.Fprintln(pp.writer(), "")
}

// Tasks prints the task list with completion glyphs.
func (pp *PrettyPrint) Tasks(tasks []entity.Task) {
	if len(tasks) == 0 {
		pp.none()
		return
	}
	done := color.New(color.Faint, color.CrossedOut)
	for _, t := range tasks {
		check := "☐"
		line := fmt.Sprintf("%s %s", check, t.Title)
		if t.Completed {
			check = "☑"
			line = fmt.Sprintf("%s %s", check, done.Sprint(t.Title))
		}
		if !t.DueDate.IsZero() {
			line += color.New(color.Faint).Sprintf("  due %s", t.DueDate.Format("2006-01-02"))
		}
		_, _ = fmt.Fprintln(pp.writer(), line)
	}
	_, _ = fmt.Fprintln(pp.writer(), "")
}
