// Package config provides configuration for the rules engine tools.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Mode selects what the command line tool does with a position.
type Mode string

const (
	ModeMoves  Mode = "moves"  // List the legal moves
	ModePlay   Mode = "play"   // Play moves and print the resulting position
	ModePerft  Mode = "perft"  // Count leaf positions
	ModeDivide Mode = "divide" // Count leaf positions per root move
	ModeBest   Mode = "best"   // Search for the best move
	ModeVerify Mode = "verify" // Cross-check against the reference generators
)

// Modes lists every supported mode.
var Modes = []Mode{ModeMoves, ModePlay, ModePerft, ModeDivide, ModeBest, ModeVerify}

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	Mode Mode

	// Starting position and the moves to play from it.
	FEN   string
	Moves []string

	Engine *EngineConfig
	Perft  *PerftConfig
	Log    *LogConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Mode:       ModeMoves,
		Engine:     NewEngineConfig(),
		Perft:      NewPerftConfig(),
		Log:        NewLogConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream results are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return err
	}
	if err := c.Engine.Validate(); err != nil {
		return errors.Wrap(err, "engine")
	}
	if err := c.Perft.Validate(); err != nil {
		return errors.Wrap(err, "perft")
	}
	if err := c.Log.Validate(); err != nil {
		return errors.Wrap(err, "log")
	}
	return nil
}
