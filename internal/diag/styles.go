package diag

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorError  = lipgloss.Color("#EF4444")
	colorWarn   = lipgloss.Color("#F59E0B")
	colorNote   = lipgloss.Color("#3B82F6")
	colorGutter = lipgloss.Color("#6B7280")
)

// Styles
var (
	errorHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorError)

	warnHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWarn)

	noteHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorNote)

	gutterStyle = lipgloss.NewStyle().
			Foreground(colorGutter)

	underlineStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)
)

func headerStyle(s Severity) lipgloss.Style {
	switch s {
	case SeverityWarning:
		return warnHeaderStyle
	case SeverityNote:
		return noteHeaderStyle
	default:
		return errorHeaderStyle
	}
}
