// ABOUTME: Diagnostic logger construction
// ABOUTME: Wraps charmbracelet/log with a level parsed from config
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at the named level (debug, info, warn,
// error). Unknown levels fall back to warn.
func New(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "studylog",
		ReportTimestamp: true,
	})
}
