package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorWarning = lipgloss.Color("3") // Yellow
	colorError   = lipgloss.Color("1") // Red
)

// Warning prints a "WARNING:" prefixed message. Styling follows w: plain
// text when w is not a terminal.
func Warning(w io.Writer, msg string) {
	style := lipgloss.NewRenderer(w).NewStyle().Foreground(colorWarning).Bold(true)
	fmt.Fprintln(w, style.Render("WARNING:")+" "+msg)
}

// Error prints an "ERROR:" prefixed message.
func Error(w io.Writer, msg string) {
	style := lipgloss.NewRenderer(w).NewStyle().Foreground(colorError).Bold(true)
	fmt.Fprintln(w, style.Render("ERROR:")+" "+msg)
}

// Usage prints the one-line synopsis.
func Usage(w io.Writer, name string) {
	fmt.Fprintf(w, "Usage: %s [flags] {[a command]|player|commands|usage|help}\n", name)
}
