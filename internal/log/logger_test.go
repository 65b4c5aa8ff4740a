package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("quiet by default", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := New(&buf, false)

		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warn message")

		out := buf.String()
		if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
			t.Errorf("expected debug and info to be suppressed, got %q", out)
		}
		if !strings.Contains(out, "warn message") {
			t.Errorf("expected warnings to pass, got %q", out)
		}
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := New(&buf, true)

		logger.Debug("debug message", "step", "simulate")

		out := buf.String()
		if !strings.Contains(out, "debug message") {
			t.Errorf("expected debug output in verbose mode, got %q", out)
		}
		if !strings.Contains(out, "step=simulate") {
			t.Errorf("expected structured attributes, got %q", out)
		}
	})
}
