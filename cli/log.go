package cli

import (
	"os"

	"github.com/charmbracelet/log"
)

// newLogger creates the stderr logger used by every command.
func newLogger(level log.Level) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
