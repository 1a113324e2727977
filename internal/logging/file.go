package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

const (
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
	defaultMaxAgeDays = 7
	logDirPerm        = 0o755
)

// FileConfig controls the optional file output.
type FileConfig struct {
	Enabled       bool
	Dir           string
	WriteToStderr bool
	// Zero values fall back to 10 MB, 3 backups and 7 days.
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func (fc FileConfig) limits() (sizeMB, backups, ageDays int) {
	sizeMB, backups, ageDays = fc.MaxSizeMB, fc.MaxBackups, fc.MaxAgeDays
	if sizeMB <= 0 {
		sizeMB = defaultMaxSizeMB
	}
	if backups <= 0 {
		backups = defaultMaxBackups
	}
	if ageDays <= 0 {
		ageDays = defaultMaxAgeDays
	}
	return sizeMB, backups, ageDays
}

// NewWithFile creates a logger that writes to a rotated file in fc.Dir and,
// optionally, to stderr. The returned cleanup closes the file.
func NewWithFile(cfg Config, fc FileConfig) (zerolog.Logger, func(), error) {
	noop := func() {}

	if !fc.Enabled || fc.Dir == "" {
		return fc.fallback(cfg), noop, nil
	}

	if err := os.MkdirAll(fc.Dir, logDirPerm); err != nil {
		return fc.fallback(cfg), noop, fmt.Errorf("create log dir: %w", err)
	}

	sizeMB, backups, ageDays := fc.limits()
	rotator, err := NewLogRotator(fc.Dir, sizeMB, backups, ageDays)
	if err != nil {
		return fc.fallback(cfg), noop, err
	}

	// The file always receives raw JSON; only stderr honours the console format.
	var w io.Writer = rotator
	if fc.WriteToStderr {
		w = zerolog.MultiLevelWriter(rotator, consoleWriter(cfg))
	}

	logger := zerolog.New(w).Level(cfg.Level).With().Timestamp().Logger()
	cleanup := func() {
		if err := rotator.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
		}
	}
	return logger, cleanup, nil
}

// fallback is the logger used without a log file. Stderr stays untouched
// unless WriteToStderr is set, since it may belong to a TUI.
func (fc FileConfig) fallback(cfg Config) zerolog.Logger {
	if !fc.WriteToStderr {
		return zerolog.Nop()
	}
	return New(cfg)
}

func consoleWriter(cfg Config) io.Writer {
	if cfg.Format == "json" {
		return os.Stderr
	}
	return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: cfg.TimeFormat}
}
