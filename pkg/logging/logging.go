// Package logging builds the service's slog.Logger from the [logging] configuration section.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates a logger writing to w, or to stdout when w is nil.
func New(cfg *Config, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}

	opts := &slog.HandlerOptions{
		Level:     cfg.Level.ToSlogLevel(),
		AddSource: cfg.Source,
	}

	var handler slog.Handler
	switch cfg.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Level represents a logging severity level.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// ParseLevel normalizes s and returns the matching Level.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	if err := l.Validate(); err != nil {
		return "", err
	}
	return l, nil
}

func (l Level) Validate() error {
	switch l {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return nil
	default:
		return fmt.Errorf("invalid log level: %q (must be debug, info, warn, or error)", string(l))
	}
}

// ToSlogLevel converts the Level to its slog.Level equivalent.
// Unknown levels map to slog.LevelInfo.
func (l Level) ToSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Format represents the log output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func (f Format) Validate() error {
	switch f {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid log format: %q (must be text or json)", string(f))
	}
}
