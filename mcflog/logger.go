// Package mcflog builds a slog logger with lumberjack rotation, injectable
// rather than process-global: the kernel never forces a logger on its
// importers, it accepts one (or falls back to slog.Default()).
package mcflog

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config has no request-id/service-name context propagation fields: there
// is no request boundary inside a single solver instance.
type Config struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, stderr, file
	FilePath   string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// New builds a *slog.Logger from cfg. Passing the zero Config yields an
// info-level JSON logger on stdout.
func New(cfg Config) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var w io.Writer
	switch cfg.Output {
	case "stderr":
		w = os.Stderr
	case "file":
		path := cfg.FilePath
		if path == "" {
			path = "logs/mcf.log"
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			w = os.Stdout
		} else {
			w = &lumberjack.Logger{
				Filename:   path,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   cfg.Compress,
			}
		}
	default:
		w = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: level == slog.LevelDebug}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

// OrDefault returns l, or slog.Default() if l is nil — the pattern every
// kernel component uses to accept an optional injected logger. mcf.Solver
// resolves its logger through this at construction time.
func OrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
