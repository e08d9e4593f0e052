package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"holoholo/internal/config"
)

// DefaultFile is used when no log file is configured
const DefaultFile = "holoholo.log"

// New creates a zerolog.Logger writing to w.
func New(cfg config.LogSettings, w io.Writer) zerolog.Logger {
	level := parseLevel(cfg.Level)

	var out io.Writer = w
	if !strings.EqualFold(cfg.Format, "json") {
		out = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    true,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(out).
		With().
		Timestamp().
		Str("app", "holoholo").
		Logger().
		Level(level)
}

// Open opens the configured log file in append mode and builds a logger on it.
// The terminal belongs to the UI, so logs never go to stdout.
func Open(cfg config.LogSettings) (zerolog.Logger, io.Closer, error) {
	path := cfg.File
	if path == "" {
		path = DefaultFile
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return New(cfg, f), f, nil
}

func parseLevel(raw string) zerolog.Level {
	if raw == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
