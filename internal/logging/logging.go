// Package logging configures the zerolog loggers used across swatch.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config controls logger output.
type Config struct {
	// Level is a zerolog level name ("debug", "info", ...). Default: info.
	Level string
	// Format is "console" or "json". Default: console.
	Format string
	// File receives log output when set. The terminal UI owns the screen,
	// so it only logs when a file is configured.
	File string
}

var (
	mu   sync.RWMutex
	base = zerolog.Nop()
)

// Init builds the process logger from cfg and writes to out unless cfg.File
// is set. The returned closer releases the log file, if any.
func Init(cfg Config, out io.Writer) (io.Closer, error) {
	level := zerolog.InfoLevel
	if name := strings.TrimSpace(cfg.Level); name != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(name))
		if err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", name, err)
		}
		level = parsed
	}

	var closer io.Closer = nopCloser{}
	if path := strings.TrimSpace(cfg.File); path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = file
		closer = file
	}
	if out == nil {
		out = io.Discard
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "console":
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: cfg.File != ""}
	case "json":
	default:
		_ = closer.Close()
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	Set(zerolog.New(out).Level(level).With().Timestamp().Logger())
	return closer, nil
}

// Set replaces the process logger.
func Set(logger zerolog.Logger) {
	mu.Lock()
	base = logger
	mu.Unlock()
}

// Logger returns the process logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// Component returns a child logger tagged with the component name.
func Component(name string) zerolog.Logger {
	return Logger().With().Str("component", name).Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
