// Package logging configures the process-wide structured logger with file
// rotation. Before Init runs, everything is discarded so library code can
// log unconditionally.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Component names for structured logging.
const (
	CompEngine = "engine"
	CompScan   = "scan"
	CompInput  = "input"
	CompIcons  = "icons"
	CompMCP    = "mcp"
	CompCLI    = "cli"
)

// Config holds logging configuration.
type Config struct {
	// Dir is the directory for log files (e.g. ~/.stowbar). Empty means
	// stderr.
	Dir string `yaml:"dir"`

	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `yaml:"level"`

	// MaxSizeMB is the max size in MB before rotation.
	MaxSizeMB int `yaml:"max_size_mb"`

	// MaxBackups is the number of rotated files to keep.
	MaxBackups int `yaml:"max_backups"`

	// MaxAgeDays is days to keep rotated files.
	MaxAgeDays int `yaml:"max_age_days"`
}

var (
	mu     sync.RWMutex
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Init initializes the global logger. Safe to call once at startup.
func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()

	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 5
	}
	if cfg.MaxAgeDays <= 0 {
		cfg.MaxAgeDays = 10
	}

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var w io.Writer = os.Stderr
	if cfg.Dir != "" {
		w = &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Dir, "stowbar.log"),
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		}
	}

	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// Component returns a logger tagged with the component name.
func Component(name string) *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger.With("component", name)
}
