package logger

import (
	"context"
	"log/slog"
	"os"
)

type SlogEnvironment string

const (
	EnvLocal SlogEnvironment = "local"
	EnvDev   SlogEnvironment = "dev"
)

// SetupLogger returns a text logger for local runs and a JSON logger
// everywhere else.
func SetupLogger(env string) *slog.Logger {
	switch SlogEnvironment(env) {
	case EnvLocal:
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}
}

type SlogLogger struct {
	logger *slog.Logger
}

func NewSlogLogger(env SlogEnvironment) *SlogLogger {
	return &SlogLogger{
		logger: SetupLogger(string(env)),
	}
}

func (s *SlogLogger) Debug(msg string, fields ...any) {
	s.logger.Debug(msg, fields...)
}

func (s *SlogLogger) Info(msg string, fields ...any) {
	s.logger.Info(msg, fields...)
}

func (s *SlogLogger) Warn(msg string, fields ...any) {
	s.logger.Warn(msg, fields...)
}

func (s *SlogLogger) Error(msg string, fields ...any) {
	s.logger.Error(msg, fields...)
}

func (s *SlogLogger) DebugContext(ctx context.Context, msg string, fields ...any) {
	s.logger.DebugContext(ctx, msg, fields...)
}

func (s *SlogLogger) InfoContext(ctx context.Context, msg string, fields ...any) {
	s.logger.InfoContext(ctx, msg, fields...)
}

func (s *SlogLogger) WarnContext(ctx context.Context, msg string, fields ...any) {
	s.logger.WarnContext(ctx, msg, fields...)
}

func (s *SlogLogger) ErrorContext(ctx context.Context, msg string, fields ...any) {
	s.logger.ErrorContext(ctx, msg, fields...)
}
