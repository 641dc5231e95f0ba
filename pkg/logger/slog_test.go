package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

// Both the adapter and a bare *slog.Logger must be usable wherever the
// Logger interface is consumed.
var (
	_ Logger = (*SlogLogger)(nil)
	_ Logger = (*slog.Logger)(nil)
)

func TestNewSlogLoggerWrites(t *testing.T) {
	log := NewSlogLogger(EnvLocal)
	require.NotNil(t, log)

	log.Info("database status", String("status", "up"))
	log.InfoContext(context.Background(), "database status", Int("attempt", 1))
}

func TestSetupLoggerPerEnv(t *testing.T) {
	require.True(t, SetupLogger("local").Enabled(context.Background(), slog.LevelDebug))
	require.False(t, SetupLogger("dev").Enabled(context.Background(), slog.LevelDebug))
	require.True(t, SetupLogger("dev").Enabled(context.Background(), slog.LevelInfo))
}
