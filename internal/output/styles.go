package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	// ColorCyan marks file names and versions.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen marks successful completion.
	ColorGreen = lipgloss.Color("82")
)

var (
	// StyleNoun styles identifiable nouns (file names, versions).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleSummary styles completion lines.
	StyleSummary = lipgloss.NewStyle().Bold(true).Foreground(ColorGreen)
)

// Generated prints the "<file> generated" line for a written artifact.
func Generated(w io.Writer, file string) {
	fmt.Fprintf(w, "%s generated\n", StyleNoun.Render(file))
}

// Done prints the closing summary line.
func Done(w io.Writer) {
	fmt.Fprintln(w, StyleSummary.Render("Done!"))
}
