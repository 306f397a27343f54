// Package logging builds the process-wide slog logger. Log records can
// fan out to stderr and a file at the same time; the TUI uses the
// file-only form because it owns the terminal while a debug session is
// on screen.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// Options select the sinks and level of the logger.
type Options struct {
	// Verbose lowers the level to debug.
	Verbose bool

	// Quiet drops the stderr sink.
	Quiet bool

	// FilePath, when non-empty, adds (or, with Quiet, substitutes) a
	// file sink. The file is appended to.
	FilePath string
}

// New builds a logger from the options. The returned close function
// releases the file sink, if any, and is always safe to call.
func New(opts Options) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handlers []slog.Handler
	closeFn := func() {}

	if !opts.Quiet {
		handlers = append(handlers, slog.NewTextHandler(os.Stderr, handlerOpts))
	}

	if opts.FilePath != "" {
		f, err := os.OpenFile(opts.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("opening log file: %w", err)
		}
		handlers = append(handlers, slog.NewTextHandler(f, handlerOpts))
		closeFn = func() { f.Close() }
	}

	switch len(handlers) {
	case 0:
		return slog.New(slog.NewTextHandler(io.Discard, handlerOpts)), closeFn, nil
	case 1:
		return slog.New(handlers[0]), closeFn, nil
	default:
		return slog.New(slogmulti.Fanout(handlers...)), closeFn, nil
	}
}
