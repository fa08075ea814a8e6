package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/encoding/charmap"

	"github.com/forsslund/sie/parser"
)

var (
	errCaretStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	errContextStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
)

// ErrorRenderer renders errors with terminal styling and source context.
type ErrorRenderer struct {
	lines []string
}

// NewErrorRenderer creates a renderer with raw file content for context.
// The raw bytes are decoded according to the given encoding so that the
// rendered excerpt matches what the parser saw.
func NewErrorRenderer(raw []byte, encoding string) *ErrorRenderer {
	source := string(raw)
	if encoding == "cp437" {
		if decoded, err := charmap.CodePage437.NewDecoder().Bytes(raw); err == nil {
			source = string(decoded)
		}
	}
	return &ErrorRenderer{lines: strings.Split(source, "\n")}
}

// Render formats a single error with styling and context.
func (r *ErrorRenderer) Render(err error) string {
	if e, ok := err.(*parser.ParseError); ok && e.Line > 0 {
		return r.renderWithSourceContext(e.Line, e.Error())
	}

	return errorStyle.Render(err.Error())
}

// RenderAll formats multiple errors, separating them with blank lines.
func (r *ErrorRenderer) RenderAll(errs []error) string {
	if len(errs) == 0 {
		return ""
	}

	var buf strings.Builder
	for i, err := range errs {
		buf.WriteString(r.Render(err))

		if i < len(errs)-1 {
			buf.WriteString("\n\n")
		}
	}

	return buf.String()
}

func (r *ErrorRenderer) renderWithSourceContext(line int, message string) string {
	var buf strings.Builder

	buf.WriteString(errorStyle.Render(message))
	buf.WriteString("\n\n")

	startLine := line - 3
	endLine := line + 1

	if startLine < 0 {
		startLine = 0
	}
	if endLine >= len(r.lines) {
		endLine = len(r.lines) - 1
	}

	for i := startLine; i <= endLine; i++ {
		if i >= len(r.lines) {
			break
		}
		buf.WriteString("   ")
		buf.WriteString(errContextStyle.Render(strings.TrimRight(r.lines[i], "\r")))
		buf.WriteByte('\n')

		if i == line-1 {
			buf.WriteString("   ")
			buf.WriteString(errCaretStyle.Render("^"))
			buf.WriteByte('\n')
		}
	}

	return buf.String()
}

// CommandError signals a command failure with a specific exit code.
// Commands return this after handling all output so that main can
// centralize exit handling instead of calling os.Exit directly.
type CommandError struct {
	exitCode int
}

// NewCommandError creates a new CommandError with the given exit code.
func NewCommandError(exitCode int) *CommandError {
	return &CommandError{exitCode: exitCode}
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return "command failed"
}

// ExitCode returns the exit code associated with this error.
func (e *CommandError) ExitCode() int {
	return e.exitCode
}
