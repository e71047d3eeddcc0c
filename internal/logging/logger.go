// Package logging builds the process logger. Diagnostics go to stderr;
// everything the user is meant to see goes through the transport
// instead.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates the shell's diagnostic logger. It writes to stderr so it
// never interleaves with command output, and standardizes the "error"
// key to "err".
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
