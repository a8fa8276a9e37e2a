package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// sessionsKept bounds how many past session logs stay on disk.
const sessionsKept = 10

// FileConfig enables per-session log files.
type FileConfig struct {
	Enabled   bool
	LogDir    string
	SessionID string
	// WriteToStderr keeps console output alongside the file.
	WriteToStderr bool

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// NewWithFile creates a logger that also writes JSON lines to
// LogDir/session_<id>.log. The returned cleanup closes the file.
func NewWithFile(cfg Config, fc FileConfig) (zerolog.Logger, func(), error) {
	if !fc.Enabled {
		return New(cfg), func() {}, nil
	}
	if fc.SessionID == "" {
		fc.SessionID = GenerateSessionID()
	}

	if _, err := PruneSessionLogs(fc.LogDir, sessionsKept-1); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to prune session logs: %v\n", err)
	}

	rotator, err := NewLogRotator(fc.LogDir, SessionFilename(fc.SessionID),
		fc.MaxSizeMB, fc.MaxBackups, fc.MaxAgeDays, fc.Compress)
	if err != nil {
		return New(cfg), func() {}, fmt.Errorf("open session log: %w", err)
	}

	writers := []io.Writer{rotator}
	if fc.WriteToStderr {
		console := cfg.Output
		if console == nil {
			console = os.Stderr
		}
		if cfg.Format == "console" {
			console = zerolog.ConsoleWriter{Out: console, TimeFormat: cfg.TimeFormat}
		}
		writers = append(writers, console)
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(cfg.Level).
		With().
		Timestamp().
		Str("session", ShortSessionID(fc.SessionID)).
		Logger()

	cleanup := func() {
		if err := rotator.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to close session log: %v\n", err)
		}
	}
	return logger, cleanup, nil
}
