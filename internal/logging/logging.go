// Package logging builds the application logger and writes simulation events to it.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/loop"
)

// New creates a logger writing to w at the given level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "arena",
	})
}

// FromEnv builds the logger from ARENA_LOG_LEVEL (default info) and
// ARENA_LOG_FILE. Without a log file the logger writes to fallback.
// The returned close function releases the file, if any.
func FromEnv(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(config.GetEnv("ARENA_LOG_LEVEL", "info"))
	if err != nil {
		return nil, nil, fmt.Errorf("ARENA_LOG_LEVEL: %w", err)
	}

	path := config.GetEnv("ARENA_LOG_FILE", "")
	if path == "" {
		return New(fallback, level), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level), f.Close, nil
}

// LogEvent writes one simulation event. Spawns and shots are debug noise;
// hits, kills and the end of the game are info.
func LogEvent(logger *log.Logger, e loop.Event) {
	keyvals := []any{"frame", e.Frame, "t", fmt.Sprintf("%.3f", e.Time)}

	switch e.Kind {
	case loop.EventEnemySpawned:
		logger.Debug("enemy spawned", append(keyvals, "enemy", e.ID, "x", e.X, "y", e.Y)...)
	case loop.EventProjectileFired:
		logger.Debug("projectile fired", append(keyvals, "projectile", e.ID)...)
	case loop.EventPlayerHit:
		logger.Info("player hit", append(keyvals, "hp", e.HP, "enemy", e.ID)...)
	case loop.EventEnemyHit:
		logger.Info("enemy hit", append(keyvals, "enemy", e.ID, "hp", e.HP)...)
	case loop.EventEnemyKilled:
		logger.Info("enemy killed", append(keyvals, "enemy", e.ID)...)
	case loop.EventGameOver:
		logger.Warn("game over", append(keyvals, "hp", e.HP)...)
	default:
		logger.Debug(e.Kind.String(), keyvals...)
	}
}
