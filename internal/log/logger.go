package log

import (
	"io"
	"log/slog"
)

// New creates a structured logger writing text records to w.
// When verbose is false only warnings and errors are emitted, keeping the
// default terminal output to the report itself; verbose enables debug-level
// detail (per-step timing, draw parameters).
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
