package stepper

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// renderMarkdown renders step content with glamour, wrapped to width.
// Rendering failures fall back to plain wrapped text.
func renderMarkdown(content string, width int, dark bool) string {
	if width < 1 {
		width = 1
	}

	style := "light"
	switch {
	case lipgloss.ColorProfile() == termenv.Ascii:
		style = "notty"
	case dark:
		style = "dark"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return wrapPlain(content, width)
	}

	rendered, err := r.Render(content)
	if err != nil {
		return wrapPlain(content, width)
	}

	return strings.Trim(rendered, "\n")
}

func wrapPlain(content string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(content)
}
