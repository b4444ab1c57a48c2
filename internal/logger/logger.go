// Package logger sets up the structured logger used by the solver.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a text logger writing to w. Debug records are kept only if verbose is set.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Default returns a logger writing to stderr.
func Default(verbose bool) *slog.Logger { return New(os.Stderr, verbose) }

// Discard returns a logger dropping all records.
func Discard() *slog.Logger { return New(io.Discard, false) }
