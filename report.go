package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	checkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	confirmStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// confirm prints the one-line success message of a generator. Plain text
// when redirected so scripts can match on it.
func confirm(w io.Writer, msg string) {
	if !isTerminal(w) {
		fmt.Fprintln(w, msg)
		return
	}
	fmt.Fprintln(w, checkStyle.Render("✓")+" "+confirmStyle.Render(msg))
}
