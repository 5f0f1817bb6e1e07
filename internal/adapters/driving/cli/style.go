package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Palette shared by every command.
var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// styled renders text with style only when w is a terminal, so piped
// output stays free of escape codes.
func styled(w io.Writer, style lipgloss.Style, text string) string {
	if !isTerminal(w) {
		return text
	}
	return style.Render(text)
}

func heading(w io.Writer, text string) string {
	return styled(w, headingStyle, text)
}

func label(w io.Writer, text string) string {
	return styled(w, labelStyle, text)
}

// statusText colours a run status.
func statusText(w io.Writer, status string) string {
	switch status {
	case "succeeded":
		return styled(w, successStyle, status)
	case "failed":
		return styled(w, errorStyle, status)
	default:
		return status
	}
}
