package ui

import (
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/docdesk/internal/theme"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// ErrorManager holds the error shown in the footer and clears it after a delay
type ErrorManager struct {
	clearDelay time.Duration
	err        error
	seq        int
}

// NewErrorManager creates an ErrorManager. A zero delay keeps errors until replaced.
func NewErrorManager(clearDelay time.Duration) *ErrorManager {
	return &ErrorManager{clearDelay: clearDelay}
}

// SetError shows err and returns the command that clears it later
func (e *ErrorManager) SetError(err error) tea.Cmd {
	e.err = err
	e.seq++
	if err == nil || e.clearDelay <= 0 {
		return nil
	}
	id := e.seq
	return tea.Tick(e.clearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{id: id}
	})
}

// Clear removes the error if it is still the one identified by id
func (e *ErrorManager) Clear(id int) {
	if id == e.seq {
		e.err = nil
	}
}

// Err returns the current error
func (e *ErrorManager) Err() error {
	return e.err
}

// View renders the current error for the given width
func (e *ErrorManager) View(width int) string {
	if e.err == nil {
		return ""
	}
	return theme.ErrorStyle.Render(formatErrorForDisplay(e.err, width))
}

// formatErrorForDisplay word-wraps an error to at most maxErrorLines lines of
// maxWidth runes, prefixed with "Error: " and truncated with "..."
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}
	words := strings.Fields(err.Error())
	if len(words) == 0 {
		return errorPrefix + "unknown error"
	}
	if maxWidth < 10 {
		maxWidth = 10
	}

	var lines []string
	var line strings.Builder
	limit := maxWidth - utf8.RuneCountInString(errorPrefix)
	truncated := false

	for _, word := range words {
		n := utf8.RuneCountInString(line.String())
		if n > 0 && n+1+utf8.RuneCountInString(word) > limit {
			lines = append(lines, line.String())
			line.Reset()
			limit = maxWidth
			if len(lines) == maxErrorLines {
				truncated = true
				break
			}
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if !truncated && line.Len() > 0 {
		lines = append(lines, line.String())
	}

	if truncated {
		last := []rune(lines[len(lines)-1])
		keep := maxWidth - utf8.RuneCountInString(truncationMark)
		if len(last) > keep {
			last = last[:keep]
		}
		lines[len(lines)-1] = string(last) + truncationMark
	}

	return errorPrefix + strings.Join(lines, "\n")
}
