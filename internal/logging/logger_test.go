// ABOUTME: Tests for diagnostic logger construction
// ABOUTME: Validates level parsing and fallback
package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNew(t *testing.T) {
	t.Run("respects level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "info")

		logger.Debug("hidden")
		logger.Info("shown", "key", "value")

		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Errorf("debug message should be filtered: %s", out)
		}
		if !strings.Contains(out, "shown") || !strings.Contains(out, "key=value") {
			t.Errorf("expected info message with key, got: %s", out)
		}
	})

	t.Run("unknown level falls back to warn", func(t *testing.T) {
		logger := New(&bytes.Buffer{}, "chatty")
		if logger.GetLevel() != log.WarnLevel {
			t.Errorf("got level %v, want warn", logger.GetLevel())
		}
	})

	t.Run("level is case insensitive", func(t *testing.T) {
		logger := New(&bytes.Buffer{}, " DEBUG ")
		if logger.GetLevel() != log.DebugLevel {
			t.Errorf("got level %v, want debug", logger.GetLevel())
		}
	})
}
