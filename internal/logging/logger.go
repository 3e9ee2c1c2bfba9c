// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package logging builds the zerolog loggers of the panes command.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrConfig is wrapped by errors of invalid logging configurations.
var ErrConfig = errors.New("logging: invalid configuration")

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string

	// File is the path log lines are appended to.  A terminal host owns
	// stderr, i.e. without a file nothing is logged while the host is
	// listening.
	File string
}

// DefaultConfig returns the logging defaults of the panes command.
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// ParseLevel parses given zerolog level name case-insensitively; the
// empty string is the info level.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	l, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: level: %v", ErrConfig, err)
	}
	return l, nil
}

// ParseFormat validates given format name; the empty string is the
// console format.
func ParseFormat(s string) (string, error) {
	switch strings.ToLower(s) {
	case "", "console":
		return "console", nil
	case "json":
		return "json", nil
	}
	return "", fmt.Errorf("%w: format: %q", ErrConfig, s)
}

// New creates a new zerolog logger writing to given writer with the
// given configuration.
func New(cfg Config, w io.Writer) zerolog.Logger {
	output := w
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: cfg.TimeFormat,
			NoColor:    true,
		}
	}
	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// Open creates a logger for given configuration appending to its file.
// Without a file the returned logger is disabled.  The returned closer
// must be closed once the logger isn't used anymore.
func Open(cfg Config) (zerolog.Logger, io.Closer, error) {
	if cfg.File == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(
		cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("logging: open: %w", err)
	}
	return New(cfg, f), f, nil
}
