package logging

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	slogmulti "github.com/samber/slog-multi"
)

// NewConsoleLogger creates a human readable logger for terminal output
func NewConsoleLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(discardIfNil(w), log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// EnableConsole mirrors every record of Logger to w (usually stderr).
// It is used by --verbose and must run after Initialize.
func EnableConsole(w io.Writer, level log.Level) {
	console := NewConsoleLogger(w, level)
	Logger = slog.New(slogmulti.Fanout(Logger.Handler(), console))
}
