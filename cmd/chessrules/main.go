// chessrules plays, enumerates and searches positions of generalized chess
// on rectangular boards of up to 23x12 squares.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/perft"
	"github.com/lgbarn/chessrules-go/internal/storage"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupOutputFile(cfg)
	log, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	positions := []string{cfg.FEN}
	if *positionsFile != "" {
		positions, err = loadPositions(*positionsFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", *positionsFile).Msg("cannot read positions")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, log, positions); err != nil {
		log.Error().Err(err).Msg("run failed")
		stop()
		os.Exit(1)
	}
}

// run opens the perft cache if one is configured and runs the mode over
// every position in turn.
func run(ctx context.Context, cfg *config.Config, log zerolog.Logger, positions []string) error {
	var cache perft.Cache
	if cfg.Perft.CacheDir != "" {
		c, err := storage.Open(cfg.Perft.CacheDir)
		if err != nil {
			return err
		}
		defer c.Close()
		cache = c
		log.Debug().Str("dir", cfg.Perft.CacheDir).Msg("perft cache opened")
	}

	app := NewApp(cfg, log, cache)
	for _, fen := range positions {
		if err := app.Run(ctx, fen); err != nil {
			return fmt.Errorf("position %q: %w", fen, err)
		}
	}
	return nil
}

// newLogger builds a console logger writing to the configured log stream.
func newLogger(cfg *config.Config) (zerolog.Logger, error) {
	level, err := cfg.Log.ZerologLevel()
	if err != nil {
		return zerolog.Nop(), err
	}
	return newConsoleLogger(cfg.LogFile, level), nil
}

func newConsoleLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays, enumerates and searches chess positions on boards up to 23x12.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes (-mode):\n")
	fmt.Fprintf(os.Stderr, "  moves   List the legal moves\n")
	fmt.Fprintf(os.Stderr, "  play    Play -moves and print the resulting position\n")
	fmt.Fprintf(os.Stderr, "  perft   Count leaf positions at -depth\n")
	fmt.Fprintf(os.Stderr, "  divide  Count leaf positions below each legal move\n")
	fmt.Fprintf(os.Stderr, "  best    Search for the best move at -depth\n")
	fmt.Fprintf(os.Stderr, "  verify  Cross-check against reference generators (8x8 only)\n")
}
