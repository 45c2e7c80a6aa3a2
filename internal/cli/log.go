package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates the CLI logger. Diagnostics go to w (stderr in practice)
// so the rendered graph on stdout stays clean for piping.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		Level:           level,
	})
}
