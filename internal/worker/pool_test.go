package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// noopProcessFunc returns a process function that counts nothing.
func noopProcessFunc() ProcessFunc {
	return func(_ context.Context, job Job) Result {
		return Result{Notation: job.Notation, Index: job.Index}
	}
}

// countingProcessFunc returns a process function that increments a counter
// and reports the job depth as its node count.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(_ context.Context, job Job) Result {
		atomic.AddInt32(counter, 1)
		return Result{Notation: job.Notation, Index: job.Index, Nodes: uint64(job.Depth)}
	}
}

// collectResults drains the result channel and returns the results.
func collectResults(pool *Pool) []Result {
	var results []Result
	for r := range pool.Results() {
		results = append(results, r)
	}
	return results
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPoolWithOptions(countingProcessFunc(&processed), WithWorkers(4), WithBufferSize(10))
	pool.Start(context.Background())

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(Job{Notation: "e4", Index: i, Depth: 3})
	}

	go pool.Close()

	results := collectResults(pool)
	if len(results) != numItems {
		t.Errorf("results = %d; want %d", len(results), numItems)
	}
	var nodes uint64
	for _, r := range results {
		nodes += r.Nodes
	}
	if nodes != 3*numItems {
		t.Errorf("nodes = %d; want %d", nodes, 3*numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestPoolSingleWorker tests pool with single worker.
func TestPoolSingleWorker(t *testing.T) {
	pool := NewPoolWithOptions(noopProcessFunc(), WithWorkers(1), WithBufferSize(5))
	pool.Start(context.Background())

	const numItems = 5
	for i := 0; i < numItems; i++ {
		pool.Submit(Job{Index: i})
	}

	go pool.Close()

	if got := len(collectResults(pool)); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
}

// TestPoolStopDropsQueuedJobs tests that jobs still queued after Stop are
// neither processed nor reported.
func TestPoolStopDropsQueuedJobs(t *testing.T) {
	var processed int32
	started := make(chan struct{})
	release := make(chan struct{})
	blockingFunc := func(_ context.Context, job Job) Result {
		if atomic.AddInt32(&processed, 1) == 1 {
			close(started)
			<-release
		}
		return Result{Index: job.Index}
	}

	pool := NewPoolWithOptions(blockingFunc, WithWorkers(1), WithBufferSize(20))
	pool.Start(context.Background())

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(Job{Index: i})
	}

	<-started
	pool.Stop()
	close(release)

	go pool.Close()
	results := collectResults(pool)

	if len(results) != 1 {
		t.Errorf("results = %d; want 1", len(results))
	}
	if got := atomic.LoadInt32(&processed); got != 1 {
		t.Errorf("processed = %d; want 1", got)
	}
}

// TestPoolStopAfterCancel tests that a stopped pool drops jobs silently even
// when the context is also done.
func TestPoolStopAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := NewPoolWithOptions(noopProcessFunc(), WithWorkers(2), WithBufferSize(10))
	pool.Stop()
	pool.Start(ctx)
	for i := 0; i < 4; i++ {
		pool.Submit(Job{Index: i})
	}
	go pool.Close()

	if got := len(collectResults(pool)); got != 0 {
		t.Errorf("results = %d; want 0", got)
	}
}

// TestPoolCancel tests that jobs queued after cancellation report the context error.
func TestPoolCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var processed int32
	pool := NewPoolWithOptions(countingProcessFunc(&processed), WithWorkers(2), WithBufferSize(10))
	pool.Start(ctx)

	const numItems = 6
	for i := 0; i < numItems; i++ {
		pool.Submit(Job{Notation: "Nf3", Index: i})
	}
	go pool.Close()

	results := collectResults(pool)
	if len(results) != numItems {
		t.Fatalf("results = %d; want %d", len(results), numItems)
	}
	for _, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("result %d error = %v; want context.Canceled", r.Index, r.Err)
		}
		if r.Notation != "Nf3" {
			t.Errorf("result %d notation = %q; want Nf3", r.Index, r.Notation)
		}
	}
	if got := atomic.LoadInt32(&processed); got != 0 {
		t.Errorf("processed = %d; want 0", got)
	}
}

// TestPoolIsStopped tests the IsStopped method.
func TestPoolIsStopped(t *testing.T) {
	pool := NewPoolWithOptions(noopProcessFunc(), WithWorkers(2), WithBufferSize(10))
	pool.Start(context.Background())

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}

	pool.Stop()

	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	pool.Close()
}

// TestPoolResultOrder tests that all results are received regardless of order.
func TestPoolResultOrder(t *testing.T) {
	variableDelayFunc := func(_ context.Context, job Job) Result {
		if job.Index%2 == 0 {
			time.Sleep(10 * time.Millisecond)
		}
		return Result{Index: job.Index}
	}

	pool := NewPoolWithOptions(variableDelayFunc, WithWorkers(4), WithBufferSize(20))
	pool.Start(context.Background())

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(Job{Index: i})
	}

	go pool.Close()

	seen := make(map[int]bool)
	for result := range pool.Results() {
		seen[result.Index] = true
	}

	if len(seen) != numItems {
		t.Errorf("received %d results; want %d", len(seen), numItems)
	}
	for i := 0; i < numItems; i++ {
		if !seen[i] {
			t.Errorf("missing index %d in results", i)
		}
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPoolWithOptions(countingProcessFunc(&counter), WithWorkers(8), WithBufferSize(50))
	pool.Start(context.Background())

	const numItems = 100
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(Job{Index: i})
		}
		pool.Close()
	}()

	collectResults(pool)

	if got := atomic.LoadInt32(&counter); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestNewPoolWithOptions tests the functional options constructor.
func TestNewPoolWithOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		pool := NewPoolWithOptions(noopProcessFunc())
		if pool.numWorkers != 1 {
			t.Errorf("default workers = %d; want 1", pool.numWorkers)
		}
		if pool.bufferSize != 10 {
			t.Errorf("default bufferSize = %d; want 10", pool.bufferSize)
		}
	})

	t.Run("with multiple options", func(t *testing.T) {
		pool := NewPoolWithOptions(noopProcessFunc(), WithWorkers(8), WithBufferSize(100))
		if pool.numWorkers != 8 {
			t.Errorf("numWorkers = %d; want 8", pool.numWorkers)
		}
		if pool.bufferSize != 100 {
			t.Errorf("bufferSize = %d; want 100", pool.bufferSize)
		}
	})

	t.Run("invalid workers ignored", func(t *testing.T) {
		for _, n := range []int{0, -1} {
			pool := NewPoolWithOptions(noopProcessFunc(), WithWorkers(n))
			if pool.numWorkers != 1 {
				t.Errorf("WithWorkers(%d): numWorkers = %d; want 1", n, pool.numWorkers)
			}
		}
	})

	t.Run("invalid buffer size ignored", func(t *testing.T) {
		pool := NewPoolWithOptions(noopProcessFunc(), WithBufferSize(-5))
		if pool.bufferSize != 10 {
			t.Errorf("bufferSize = %d; want 10 (default)", pool.bufferSize)
		}
	})
}
