package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("208")).
			Padding(0, 1)
)

// styled reports whether w is a terminal that should get colors and borders.
func styled(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

type field struct {
	label string
	value string
}

// printSummary writes a titled block of label/value rows, boxed on a
// terminal and plain otherwise.
func printSummary(w io.Writer, title string, fields []field) {
	if !styled(w) {
		fmt.Fprintln(w, title)
		for _, f := range fields {
			fmt.Fprintf(w, "  %-10s%s\n", f.label, f.value)
		}
		return
	}

	rows := []string{titleStyle.Render(title)}
	for _, f := range fields {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(f.label), valueStyle.Render(f.value)))
	}
	fmt.Fprintln(w, boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
}

func newCommandError(operation string, cause error, suggestion string) error {
	return &commandError{operation: operation, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	if e.suggestion == "" {
		return fmt.Sprintf("Failed to %s\n\nError: %v", e.operation, e.cause)
	}
	return fmt.Sprintf("Failed to %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error { return e.cause }
