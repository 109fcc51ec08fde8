package views

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles shared by the views. Constructors take
// an explicit Styles value so themes can be swapped without touching the
// view code.
type Styles struct {
	Title    lipgloss.Style
	Info     lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Disabled lipgloss.Style
	Detail   lipgloss.Style
	Help     lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// DefaultStyles returns the standard color scheme.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("69")).
			MarginBottom(1),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Item: lipgloss.NewStyle().
			PaddingLeft(2),
		Selected: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(lipgloss.Color("205")).
			Bold(true),
		Disabled: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(lipgloss.Color("241")),
		Detail: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			PaddingLeft(4),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
	}
}
