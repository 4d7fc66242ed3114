// Package logger builds the structured logger shared by the server binaries.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON production logger at the given level
// ("debug", "info", "warn", "error").
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Sampling = nil
	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l, nil
}

// Event logs a game event so every session can be traced by its ID.
func Event(l *zap.Logger, kind, gameID string, fields ...zap.Field) {
	l.Info("game event", append([]zap.Field{
		zap.String("event", kind),
		zap.String("game_id", gameID),
	}, fields...)...)
}
