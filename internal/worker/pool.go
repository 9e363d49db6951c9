// Package worker provides a worker pool that counts perft subtrees in parallel.
package worker

import (
	"context"
	"sync"
	"sync/atomic"
)

// Job is one root move whose subtree is counted by a worker.
type Job struct {
	Notation string
	Index    int // Position in the root move list
	Depth    int // Remaining depth below the root move
}

// Result is the outcome of a Job.
type Result struct {
	Notation string
	Index    int
	Nodes    uint64
	Cached   bool // Served from the perft cache
	Err      error
}

// ProcessFunc counts the subtree of one job.
type ProcessFunc func(ctx context.Context, job Job) Result

// Pool runs jobs on a fixed number of goroutines. Each worker handles one
// job at a time, so a ProcessFunc may keep per-goroutine state such as its
// own engine.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan Job
	resultChan  chan Result
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPoolWithOptions creates a worker pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan Job, p.bufferSize)
	p.resultChan = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines. Once ctx is done, workers finish their
// current job and report the remaining ones with ctx's error.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()

	for job := range p.workChan {
		if p.IsStopped() {
			continue // Drain without processing
		}
		if err := ctx.Err(); err != nil {
			p.resultChan <- Result{Notation: job.Notation, Index: job.Index, Err: err}
			continue
		}
		p.resultChan <- p.processFunc(ctx, job)
	}
}

// Submit submits a job, blocking while the work buffer is full.
func (p *Pool) Submit(job Job) {
	p.workChan <- job
}

// Stop signals workers to drop queued jobs without reporting them.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel, waits for the workers and then closes
// the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan Result {
	return p.resultChan
}
