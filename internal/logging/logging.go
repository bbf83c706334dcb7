// Package logging builds the zerolog logger used by the CLI: plain console
// lines on stderr, plus an optional rotated JSON file.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// RunField carries the per-invocation id. It is written to the log file
// only; console lines omit it.
const RunField = "run"

// ErrInvalidLevel is returned by ParseLevel for unknown names.
var ErrInvalidLevel = errors.New("invalid log level")

// Options configures New.
type Options struct {
	Level   zerolog.Level
	Console io.Writer // human-readable sink, usually stderr; nil discards

	// Rotated JSON file sink, disabled when File is empty.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// New returns a logger writing to the configured sinks. Close the returned
// io.Closer to flush and release the log file.
func New(opts Options) (zerolog.Logger, io.Closer) {
	console := opts.Console
	if console == nil {
		console = io.Discard
	}
	writers := []io.Writer{NewConsoleWriter(console)}
	var closer io.Closer = nopCloser{}

	if opts.File != "" {
		file := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		}
		writers = append(writers, file)
		closer = file
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(opts.Level).
		With().
		Timestamp().
		Logger()
	return logger, closer
}

// NewConsoleWriter formats events as single plain lines such as
// "warning: message key=value". Info events carry no level prefix.
func NewConsoleWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:           w,
		NoColor:       true,
		PartsExclude:  []string{zerolog.TimestampFieldName},
		FieldsExclude: []string{RunField},
		FormatLevel:   formatLevel,
	}
}

func formatLevel(i any) string {
	level, _ := i.(string)
	switch level {
	case zerolog.LevelInfoValue, "":
		return ""
	case zerolog.LevelWarnValue:
		return "warning:"
	default:
		return level + ":"
	}
}

// ParseLevel maps a config or env level name to a zerolog level.
// The empty string means info.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
