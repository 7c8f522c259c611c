package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header HeaderTheme
	Tabs   TabTheme
	Panel  PanelTheme
	List   ListTheme
	Form   FormTheme
	Toast  ToastTheme
	Chart  ChartTheme
}

// HeaderTheme styles the top bar: app title, user, notification badge.
type HeaderTheme struct {
	Title lipgloss.Style
	User  lipgloss.Style
	Badge lipgloss.Style
}

// TabTheme styles the tab strip.
type TabTheme struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Faint lipgloss.Style
}

// ListTheme styles selectable rows.
type ListTheme struct {
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Done     lipgloss.Style
	Tag      lipgloss.Style
	TagOn    lipgloss.Style
}

// FormTheme styles form rows and validation output.
type FormTheme struct {
	Label   lipgloss.Style
	Focused lipgloss.Style
	Error   lipgloss.Style
	Hint    lipgloss.Style
}

// ToastTheme styles the transient notice line per severity.
type ToastTheme struct {
	Info    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// ChartTheme styles the dashboard bars and timeline.
type ChartTheme struct {
	Bar   lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
}

// Ramp blends n colors between the chart endpoints, one per bar row.
// n below 1 yields nil.
func Ramp(n int) []color.Color {
	if n < 1 {
		return nil
	}
	start, _ := colorful.Hex("#5A56E0")
	end, _ := colorful.Hex("#EE6FF8")
	out := make([]color.Color, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = start.BlendLuv(end, t).Clamped()
	}
	return out
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	focus := lipgloss.Color("212")
	faint := lipgloss.Color("244")

	return Theme{
		Header: HeaderTheme{
			Title: lipgloss.NewStyle().Bold(true).Foreground(focus),
			User:  lipgloss.NewStyle().Foreground(faint),
			Badge: lipgloss.NewStyle().
				Background(lipgloss.Color("204")).
				Foreground(lipgloss.Color("0")).
				Padding(0, 1),
		},
		Tabs: TabTheme{
			Active:   lipgloss.NewStyle().Bold(true).Underline(true).Foreground(focus),
			Inactive: lipgloss.NewStyle().Foreground(faint),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
			Faint: lipgloss.NewStyle().Foreground(faint),
		},
		List: ListTheme{
			Selected: lipgloss.NewStyle().Foreground(focus).Bold(true),
			Normal:   lipgloss.NewStyle(),
			Done:     lipgloss.NewStyle().Foreground(faint).Strikethrough(true),
			Tag:      lipgloss.NewStyle().Foreground(faint),
			TagOn: lipgloss.NewStyle().
				Background(lipgloss.Color("63")).
				Foreground(lipgloss.Color("0")),
		},
		Form: FormTheme{
			Label:   lipgloss.NewStyle(),
			Focused: lipgloss.NewStyle().Foreground(focus),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
			Hint:    lipgloss.NewStyle().Foreground(faint),
		},
		Toast: ToastTheme{
			Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
		},
		Chart: ChartTheme{
			Bar:   lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
			Label: lipgloss.NewStyle().Foreground(faint),
			Value: lipgloss.NewStyle().Bold(true),
		},
	}
}
