package config

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error, disabled
	Level string
}

// NewLogConfig creates a LogConfig logging at info level.
func NewLogConfig() *LogConfig {
	return &LogConfig{Level: zerolog.InfoLevel.String()}
}

// ZerologLevel returns the configured level.
func (l *LogConfig) ZerologLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	return level, nil
}

// Validate checks that the level name is known.
func (l *LogConfig) Validate() error {
	_, err := l.ZerologLevel()
	return err
}
