package cmd

import "github.com/charmbracelet/lipgloss"

var (
	colorBanner = lipgloss.Color("#7C3AED")
	colorError  = lipgloss.Color("#EF4444")
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBanner)

	errorLineStyle = lipgloss.NewStyle().
			Foreground(colorError)
)

// paint renders s through style when color output is on and returns it
// untouched otherwise.
func paint(style lipgloss.Style, s string, on bool) string {
	if !on {
		return s
	}
	return style.Render(s)
}
