// Package perft counts move-tree leaves in parallel by splitting the work
// at the root: every legal move of the root position becomes one job on a
// worker pool. Counts are looked up in a shared in-memory table and an
// optional persistent cache before any enumeration runs.
package perft

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/storage"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Cache is a persistent store of perft counts.
type Cache interface {
	Get(k storage.Key) (uint64, bool, error)
	Put(k storage.Key, nodes uint64) error
}

// DefaultMemoSize bounds the in-memory table of subtree counts.
const DefaultMemoSize = 1 << 20

// Runner runs root-split perft for one set of rules.
type Runner struct {
	rules   engine.Rules
	workers int
	cache   Cache
	memo    *hashing.ThreadSafeTable
	log     zerolog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n >= 1 {
			r.workers = n
		}
	}
}

// WithCache consults c before counting and stores new counts in it.
func WithCache(c Cache) Option {
	return func(r *Runner) {
		r.cache = c
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Runner) {
		r.log = log
	}
}

// WithMemoSize bounds the in-memory table; 0 leaves it unbounded.
func WithMemoSize(n int) Option {
	return func(r *Runner) {
		r.memo = hashing.NewThreadSafeTable(n)
	}
}

// NewRunner creates a runner. Default: 1 worker, no persistent cache.
func NewRunner(rules engine.Rules, opts ...Option) *Runner {
	r := &Runner{
		rules:   rules,
		workers: 1,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.memo == nil {
		r.memo = hashing.NewThreadSafeTable(DefaultMemoSize)
	}
	return r
}

// MemoHits returns how many subtree counts came from the in-memory table.
func (r *Runner) MemoHits() int {
	return r.memo.Hits()
}

func (r *Runner) newEngine(fen string) (*engine.Engine, error) {
	return engine.New(fen, r.rules.PushLimit, r.rules.Castle960)
}

func (r *Runner) key(fen string, depth int) storage.Key {
	return storage.Key{FEN: fen, Depth: depth, PushLimit: r.rules.PushLimit, Castle960: r.rules.Castle960}
}

// Run returns the perft count of fen at depth.
func (r *Runner) Run(ctx context.Context, fen string, depth int) (uint64, error) {
	e, err := r.newEngine(fen)
	if err != nil {
		return 0, err
	}
	if depth <= 0 {
		return 1, nil
	}
	root, err := e.FEN()
	if err != nil {
		return 0, err
	}

	if nodes, ok := r.lookupCache(root, depth); ok {
		r.log.Info().Str("fen", root).Int("depth", depth).Uint64("nodes", nodes).Msg("perft served from cache")
		return nodes, nil
	}

	divide, err := r.divide(ctx, e, root, depth)
	if err != nil {
		return 0, err
	}
	var nodes uint64
	for _, n := range divide {
		nodes += n
	}
	r.storeCache(root, depth, nodes)
	return nodes, nil
}

// Divide returns the perft count below each legal move of fen, keyed by
// notation. The counts sum to the perft count of fen at depth.
func (r *Runner) Divide(ctx context.Context, fen string, depth int) (map[string]uint64, error) {
	e, err := r.newEngine(fen)
	if err != nil {
		return nil, err
	}
	root, err := e.FEN()
	if err != nil {
		return nil, err
	}
	if depth < 1 {
		return map[string]uint64{}, nil
	}
	return r.divide(ctx, e, root, depth)
}

func (r *Runner) divide(ctx context.Context, e *engine.Engine, root string, depth int) (map[string]uint64, error) {
	moves := e.LegalMoves()
	start := time.Now()
	r.log.Info().
		Str("fen", root).
		Int("depth", depth).
		Int("moves", len(moves)).
		Int("workers", r.workers).
		Msg("perft started")

	pool := worker.NewPoolWithOptions(r.processFunc(root),
		worker.WithWorkers(r.workers),
		worker.WithBufferSize(len(moves)+1))
	pool.Start(ctx)

	go func() {
		for i, m := range moves {
			pool.Submit(worker.Job{Notation: m, Index: i, Depth: depth - 1})
		}
		pool.Close()
	}()

	out := make(map[string]uint64, len(moves))
	var firstErr error
	cached := 0
	for res := range pool.Results() {
		if res.Err != nil {
			if firstErr == nil {
				firstErr = errors.Wrapf(res.Err, "perft %s", res.Notation)
				pool.Stop()
			}
			continue
		}
		if res.Cached {
			cached++
		}
		r.log.Debug().
			Str("move", res.Notation).
			Uint64("nodes", res.Nodes).
			Bool("cached", res.Cached).
			Msg("root move counted")
		out[res.Notation] = res.Nodes
	}
	if firstErr != nil {
		return nil, firstErr
	}

	r.log.Info().
		Str("fen", root).
		Int("depth", depth).
		Int("cached", cached).
		Dur("elapsed", time.Since(start)).
		Msg("perft finished")
	return out, nil
}

// processFunc counts one root move on an engine of its own, rebuilt from
// the root position, so workers never share board state.
func (r *Runner) processFunc(root string) worker.ProcessFunc {
	return func(ctx context.Context, job worker.Job) worker.Result {
		res := worker.Result{Notation: job.Notation, Index: job.Index}

		e, err := r.newEngine(root)
		if err != nil {
			res.Err = err
			return res
		}
		if err := e.PlayMove(job.Notation); err != nil {
			res.Err = err
			return res
		}

		hash := e.PositionKey()
		if nodes, ok := r.memo.Lookup(hash, job.Depth); ok {
			res.Nodes, res.Cached = nodes, true
			return res
		}

		child, err := e.FEN()
		if err != nil {
			res.Err = err
			return res
		}
		if nodes, ok := r.lookupCache(child, job.Depth); ok {
			r.memo.Store(hash, job.Depth, nodes)
			res.Nodes, res.Cached = nodes, true
			return res
		}

		if err := ctx.Err(); err != nil {
			res.Err = err
			return res
		}
		res.Nodes = e.Perft(job.Depth)
		r.memo.Store(hash, job.Depth, res.Nodes)
		r.storeCache(child, job.Depth, res.Nodes)
		return res
	}
}

// lookupCache reads the persistent cache. Read failures are logged and
// treated as misses.
func (r *Runner) lookupCache(fen string, depth int) (uint64, bool) {
	if r.cache == nil {
		return 0, false
	}
	nodes, ok, err := r.cache.Get(r.key(fen, depth))
	if err != nil {
		r.log.Warn().Err(err).Str("fen", fen).Msg("perft cache read failed")
		return 0, false
	}
	return nodes, ok
}

func (r *Runner) storeCache(fen string, depth int, nodes uint64) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Put(r.key(fen, depth), nodes); err != nil {
		r.log.Warn().Err(err).Str("fen", fen).Msg("perft cache write failed")
	}
}
