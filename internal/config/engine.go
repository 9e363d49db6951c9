package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// EngineConfig holds the rule switches an engine is created with.
type EngineConfig struct {
	// PushLimit is the furthest an unmoved pawn may advance (0 = standard 2)
	PushLimit int

	// Castle960 sends king and rook to the Chess960 castling files
	Castle960 bool
}

// NewEngineConfig creates an EngineConfig for standard chess.
func NewEngineConfig() *EngineConfig {
	return &EngineConfig{}
}

// Validate checks that the push limit fits on the largest board.
func (e *EngineConfig) Validate() error {
	if e.PushLimit < 0 || e.PushLimit > chess.MaxRanks {
		return fmt.Errorf("push limit %d outside 0..%d: %w", e.PushLimit, chess.MaxRanks, errors.ErrInvalidConfig)
	}
	return nil
}
