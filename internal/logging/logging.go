// Package logging configures the zerolog logger used across planquery.
// Interactive terminals get human-readable console output; everything
// else gets structured JSON.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Config holds logger options.
type Config struct {
	// Level is the minimum level to emit (trace, debug, info, warn, error).
	Level string

	// NoColor disables color in console output.
	NoColor bool

	// Output overrides the destination. Defaults to stderr.
	Output io.Writer
}

// New builds a logger from cfg. Unknown levels fall back to info.
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	level := parseLevel(cfg.Level)

	writer := out
	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		writer = zerolog.ConsoleWriter{
			Out:        f,
			TimeFormat: time.Kitchen,
			NoColor:    cfg.NoColor,
		}
	}

	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}

	return logger
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "", "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		if l, err := zerolog.ParseLevel(level); err == nil {
			return l
		}
		return zerolog.InfoLevel
	}
}
