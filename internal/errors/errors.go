// Package errors formats diagnostics for the CLI: a message anchored to a
// source line, optionally rendered with the offending source line for
// context.
package errors

import (
	"fmt"
	"strings"
)

// SourceError is a single diagnostic tied to a file and line.
type SourceError struct {
	File    string
	Line    int
	Message string
	Source  string // full source text, for context rendering
}

// NewSourceError creates a SourceError.
func NewSourceError(file string, line int, message, source string) *SourceError {
	return &SourceError{File: file, Line: line, Message: message, Source: source}
}

// Error implements the error interface.
func (e *SourceError) Error() string { return e.Format() }

// Format renders the diagnostic in `<file>:<line>: <message>` form,
// followed by the offending source line when source text is available.
func (e *SourceError) Format() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message))

	if line := e.sourceLine(); line != "" {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("  %4d | %s", e.Line, line))
	}
	return sb.String()
}

func (e *SourceError) sourceLine() string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if e.Line < 1 || e.Line > len(lines) {
		return ""
	}
	return lines[e.Line-1]
}

// FormatForProgram renders the diagnostic in the form the CLI writes to
// stderr: "<prog>: <filename>:<line>: <message>".
func (e *SourceError) FormatForProgram(prog string) string {
	return fmt.Sprintf("%s: %s:%d: %s", prog, e.File, e.Line, e.Message)
}

// FromMessages converts a list of bare "line N: message" strings (as
// produced by the lexer/parser's Errors()) into SourceErrors.
func FromMessages(messages []string, file, source string) []*SourceError {
	var out []*SourceError
	for _, m := range messages {
		line, msg := splitLinePrefix(m)
		out = append(out, NewSourceError(file, line, msg, source))
	}
	return out
}

// splitLinePrefix parses a "line N: rest" string into (N, rest). If the
// prefix is absent or malformed, line is 0 and rest is the original string.
func splitLinePrefix(s string) (int, string) {
	const prefix = "line "
	if !strings.HasPrefix(s, prefix) {
		return 0, s
	}
	rest := s[len(prefix):]
	idx := strings.Index(rest, ":")
	if idx < 0 {
		return 0, s
	}
	var line int
	if _, err := fmt.Sscanf(rest[:idx], "%d", &line); err != nil {
		return 0, s
	}
	return line, strings.TrimSpace(rest[idx+1:])
}
