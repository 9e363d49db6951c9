package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MaxDepth bounds perft and search depth.
const MaxDepth = 12

// PerftConfig holds settings for leaf counting and search.
type PerftConfig struct {
	// Depth in plies
	Depth int

	// Workers is the number of root moves counted in parallel
	Workers int

	// CacheDir is the badger directory for cached counts (empty = no cache)
	CacheDir string
}

// NewPerftConfig creates a PerftConfig with one worker per CPU.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:   3,
		Workers: runtime.NumCPU(),
	}
}

// Validate checks depth and worker count.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxDepth {
		return fmt.Errorf("depth %d outside 0..%d: %w", p.Depth, MaxDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers (%d) < 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
