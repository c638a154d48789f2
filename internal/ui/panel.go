package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PanelString frames inner with the current theme's border.
func PanelString(inner string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(inner)
}

// Panel prints lines inside a framed box.
func Panel(w io.Writer, lines []string) {
	fmt.Fprintln(w, PanelString(strings.Join(lines, "\n")))
}

func OK(msg string) {
	t := Current()
	fmt.Println(t.Success.Render(t.SymOK + " " + msg))
}

func Fail(msg string) {
	t := Current()
	fmt.Fprintln(os.Stderr, t.Error.Render(t.SymFail+" "+msg))
}
