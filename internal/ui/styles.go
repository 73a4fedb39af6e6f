package ui

import "github.com/charmbracelet/lipgloss"

// Styles contains the style definitions for the launcher row
type Styles struct {
	Prompt  lipgloss.Style
	Item    lipgloss.Style
	Focused lipgloss.Style
	Hint    lipgloss.Style
}

// NewStyles creates a Styles instance around the configured accent
// color. Item and Focused must keep identical horizontal padding so
// click hit-spans stay valid when focus moves.
func NewStyles(accent string) *Styles {
	ac := lipgloss.Color(accent)
	return &Styles{
		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(ac),
		Item: lipgloss.NewStyle().
			Padding(0, 1).
			Faint(true),
		Focused: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(ac).
			Reverse(true),
		Hint: lipgloss.NewStyle().Faint(true),
	}
}
