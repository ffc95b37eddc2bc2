package logger

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type implLogger struct {
	logger zerolog.Logger
}

// New creates a new Logger instance backed by zerolog. Format "console"
// (or "pretty") writes human-readable output; anything else writes JSON.
func New(level, format string) Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	switch strings.ToLower(format) {
	case "console", "pretty":
		zl = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	default:
		zl = zerolog.New(os.Stdout)
	}

	zl = zl.Level(lvl).With().Timestamp().Logger()

	return &implLogger{logger: zl}
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Debug().Msgf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Info().Msgf(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Warn().Msgf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Error().Msgf(msg, args...)
}
