// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Level zerolog.Level
	// Output defaults to os.Stderr.
	Output io.Writer
	// Pretty switches to the human-readable console writer.
	Pretty bool
}

// Init installs the logger as zerolog's global logger and returns it.
func Init(cfg Config) zerolog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	zerolog.TimeFieldFormat = time.RFC3339

	out := cfg.Output
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.Kitchen}
	}

	logger := zerolog.New(out).Level(cfg.Level).With().Timestamp().Logger()
	log.Logger = logger
	return logger
}

// ParseLevel maps DEBUG/INFO/WARN/ERROR (any case) to a zerolog level,
// falling back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
