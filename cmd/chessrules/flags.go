// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Position options
	fenFlag       = flag.String("fen", "", "Starting position (default: the standard start position)")
	movesFlag     = flag.String("moves", "", "Space separated moves to play before running the mode")
	positionsFile = flag.String("f", "", "File with one position per line (# for comments)")

	// Mode options
	modeFlag  = flag.String("mode", "moves", "Mode: moves, play, perft, divide, best, verify")
	depthFlag = flag.Int("depth", 3, "Perft and search depth")

	// Rule options
	pushLimit = flag.Int("push", 0, "Furthest an unmoved pawn may advance (0 = standard 2)")
	chess960  = flag.Bool("960", false, "Use Chess960 castling destinations")

	// Performance options
	workers  = flag.Int("workers", 0, "Number of perft workers (0 = auto-detect based on CPU cores)")
	cacheDir = flag.String("cache", "", "Directory of the persistent perft cache (default: none)")

	// Output and logging
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logLevel   = flag.String("log-level", "info", "Log level: trace, debug, info, warn, error, disabled")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyModeFlags(cfg); err != nil {
		return err
	}
	applyPositionFlags(cfg)
	applyRuleFlags(cfg)
	applyPerftFlags(cfg)
	cfg.Log.Level = *logLevel
	return nil
}

// applyModeFlags sets the mode and depth.
func applyModeFlags(cfg *config.Config) error {
	mode, err := config.ParseMode(*modeFlag)
	if err != nil {
		return err
	}
	cfg.Mode = mode
	cfg.Perft.Depth = *depthFlag
	return nil
}

// applyPositionFlags sets the starting position and the moves to play.
func applyPositionFlags(cfg *config.Config) {
	cfg.FEN = *fenFlag
	cfg.Moves = strings.Fields(*movesFlag)
}

// applyRuleFlags configures the rule dialect.
func applyRuleFlags(cfg *config.Config) {
	cfg.Engine.PushLimit = *pushLimit
	cfg.Engine.Castle960 = *chess960
}

// applyPerftFlags configures the perft runner.
func applyPerftFlags(cfg *config.Config) {
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
	cfg.Perft.CacheDir = *cacheDir
}
