package cmd

import (
	"io"
	"log/slog"

	"github.com/labstack/gommon/log"
)

// NewLogger builds the root logger. Debug level adds source locations.
func NewLogger(config Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     config.LogLevel,
		AddSource: config.LogLevel <= slog.LevelDebug,
	}

	var handler slog.Handler
	if config.LogJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// EchoLogLevel maps the configured level onto echo's gommon logger.
func EchoLogLevel(level slog.Level) log.Lvl {
	switch {
	case level <= slog.LevelDebug:
		return log.DEBUG
	case level <= slog.LevelInfo:
		return log.INFO
	case level <= slog.LevelWarn:
		return log.WARN
	default:
		return log.ERROR
	}
}
