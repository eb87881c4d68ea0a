package logger

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects where log records go and how much is kept
type Options struct {
	Debug bool

	// File enables a rotating log file; records go there instead of stderr
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool

	// Stderr defaults to os.Stderr
	Stderr io.Writer
}

// New creates a structured logger.
//
// Without Debug or File every record is discarded. Debug lowers the level to
// debug; File routes records to a lumberjack writer at info level (debug with
// Debug). The returned closer releases the log file and is never nil.
func New(opts Options) (*slog.Logger, io.Closer) {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	switch {
	case opts.File != "":
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		}
		handler := slog.NewTextHandler(rotator, &slog.HandlerOptions{Level: level})
		return slog.New(handler), rotator

	case opts.Debug:
		w := opts.Stderr
		if w == nil {
			w = os.Stderr
		}
		handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
		return slog.New(handler), nopCloser{}

	default:
		// create a handler that discards all log messages
		handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.LevelError,
		})
		return slog.New(handler), nopCloser{}
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
