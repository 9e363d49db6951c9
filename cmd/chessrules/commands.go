package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/oracle"
	"github.com/lgbarn/chessrules-go/internal/perft"
)

// App runs one mode over one or more positions.
type App struct {
	cfg    *config.Config
	log    zerolog.Logger
	runner *perft.Runner
}

// NewApp creates an App. cache may be nil.
func NewApp(cfg *config.Config, log zerolog.Logger, cache perft.Cache) *App {
	opts := []perft.Option{
		perft.WithWorkers(cfg.Perft.Workers),
		perft.WithLogger(log),
	}
	if cache != nil {
		opts = append(opts, perft.WithCache(cache))
	}
	return &App{
		cfg:    cfg,
		log:    log,
		runner: perft.NewRunner(engine.Rules{PushLimit: cfg.Engine.PushLimit, Castle960: cfg.Engine.Castle960}, opts...),
	}
}

// Run sets up fen, plays the configured moves and runs the configured mode.
// An empty fen selects the standard start position.
func (a *App) Run(ctx context.Context, fen string) error {
	if fen == "" {
		fen = engine.InitialFEN
	}
	e, err := engine.New(fen, a.cfg.Engine.PushLimit, a.cfg.Engine.Castle960)
	if err != nil {
		return err
	}
	for _, m := range a.cfg.Moves {
		if err := e.PlayMove(m); err != nil {
			return err
		}
	}
	a.log.Debug().Str("fen", fen).Int("moves", len(a.cfg.Moves)).Str("mode", string(a.cfg.Mode)).Msg("position ready")

	out := a.cfg.OutputFile
	switch a.cfg.Mode {
	case config.ModeMoves:
		return writeMoves(out, e)
	case config.ModePlay:
		return writePosition(out, e)
	case config.ModePerft:
		return a.perft(ctx, out, e)
	case config.ModeDivide:
		return a.divide(ctx, out, e)
	case config.ModeBest:
		return a.best(out, e)
	case config.ModeVerify:
		return a.verify(out, e)
	default:
		return fmt.Errorf("mode %q: %w", a.cfg.Mode, errors.ErrInvalidConfig)
	}
}

// writeMoves writes the legal moves on one line followed by the status.
func writeMoves(w io.Writer, e *engine.Engine) error {
	_, err := fmt.Fprintf(w, "%s\nstatus %s\n", strings.Join(e.LegalMoves(), " "), status(e))
	return err
}

// writePosition writes the position string, the last move and the status.
func writePosition(w io.Writer, e *engine.Engine) error {
	fen, err := e.FEN()
	if err != nil {
		return err
	}
	last := e.LastMoveCoordinates()
	if last == "" {
		last = "-"
	}
	_, err = fmt.Fprintf(w, "fen %s\nlast %s\nstatus %s\n", fen, last, status(e))
	return err
}

func status(e *engine.Engine) string {
	s := e.Status().String()
	if e.Status() == engine.Ongoing && e.InCheck() {
		return s + " check"
	}
	return s
}

func (a *App) perft(ctx context.Context, w io.Writer, e *engine.Engine) error {
	fen, err := e.FEN()
	if err != nil {
		return err
	}
	nodes, err := a.runner.Run(ctx, fen, a.cfg.Perft.Depth)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "perft %d %d\n", a.cfg.Perft.Depth, nodes)
	return err
}

func (a *App) divide(ctx context.Context, w io.Writer, e *engine.Engine) error {
	fen, err := e.FEN()
	if err != nil {
		return err
	}
	counts, err := a.runner.Divide(ctx, fen, a.cfg.Perft.Depth)
	if err != nil {
		return err
	}

	moves := maps.Keys(counts)
	slices.Sort(moves)
	var total uint64
	for _, m := range moves {
		total += counts[m]
		if _, err := fmt.Fprintf(w, "%s: %d\n", m, counts[m]); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "total: %d\n", total)
	return err
}

func (a *App) best(w io.Writer, e *engine.Engine) error {
	move, score := e.EvaluateBestMove(a.cfg.Perft.Depth)
	if move == "" {
		move = "(none)"
	}
	_, err := fmt.Fprintf(w, "bestmove %s score %d\n", move, score)
	return err
}

func (a *App) verify(w io.Writer, e *engine.Engine) error {
	report, err := oracle.Verify(e, a.cfg.Perft.Depth)
	if err != nil {
		return err
	}
	if !report.OK() {
		a.log.Warn().Str("fen", report.FEN).Strs("missing", report.Missing).Strs("extra", report.Extra).Msg("reference mismatch")
	}
	_, err = fmt.Fprintln(w, report.String())
	return err
}
