package view

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

const timeLayout = "2006-01-02 15:04"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	indentStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)

// colored returns a style in the element's own color.
func colored(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// formatRange renders start and end in UTC, collapsing an instant to one time.
func formatRange(start, end time.Time) string {
	if end.Equal(start) {
		return start.UTC().Format(timeLayout)
	}
	return start.UTC().Format(timeLayout) + " - " + end.UTC().Format(timeLayout)
}
