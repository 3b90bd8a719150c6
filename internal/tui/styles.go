package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors defines the color palette for the browser.
var Colors = struct {
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Open          lipgloss.Color
	Closed        lipgloss.Color
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	Label         lipgloss.Color
}{
	Primary:       lipgloss.Color("#6C5CE7"), // Purple
	Muted:         lipgloss.Color("#636E72"), // Gray
	Open:          lipgloss.Color("#00B894"), // Green
	Closed:        lipgloss.Color("#D63031"), // Red
	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow
	Label:         lipgloss.Color("#A29BFE"), // Lavender
}

// Styles holds the lipgloss styles for the browser.
type Styles struct {
	Header        lipgloss.Style
	Number        lipgloss.Style
	Open          lipgloss.Style
	Closed        lipgloss.Style
	Title         lipgloss.Style
	TitleSelected lipgloss.Style
	Label         lipgloss.Style
	Muted         lipgloss.Style
	DetailBox     lipgloss.Style
}

// DefaultStyles returns the default browser styles.
func DefaultStyles() Styles {
	return Styles{
		Header:        lipgloss.NewStyle().Foreground(Colors.Primary).Bold(true),
		Number:        lipgloss.NewStyle().Foreground(Colors.Muted),
		Open:          lipgloss.NewStyle().Foreground(Colors.Open),
		Closed:        lipgloss.NewStyle().Foreground(Colors.Closed),
		Title:         lipgloss.NewStyle().Foreground(Colors.TitleNormal),
		TitleSelected: lipgloss.NewStyle().Foreground(Colors.TitleSelected).Bold(true),
		Label:         lipgloss.NewStyle().Foreground(Colors.Label),
		Muted:         lipgloss.NewStyle().Foreground(Colors.Muted),
		DetailBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(1, 2),
	}
}

// StateStyle returns the style for an issue state.
func (s Styles) StateStyle(state string) lipgloss.Style {
	if state == "closed" {
		return s.Closed
	}
	return s.Open
}
