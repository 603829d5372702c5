package main

import (
	"fmt"
	"io"
	"log/slog"
)

// newLogger builds an isolated logger; the global default is left alone.
func newLogger(levelStr, formatStr string, outW io.Writer) (*slog.Logger, error) {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("%w: unknown log level %q", errUsage, levelStr)
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch formatStr {
	case "json":
		handler = slog.NewJSONHandler(outW, handlerOpts)
	case "text":
		handler = slog.NewTextHandler(outW, handlerOpts)
	default:
		return nil, fmt.Errorf("%w: unknown log format %q", errUsage, formatStr)
	}

	return slog.New(handler), nil
}
