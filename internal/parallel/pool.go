// Package parallel provides the row-parallel worker pool shared by the
// per-pixel loops of the engine.
//
// Operators split their output into contiguous row bands and hand each band
// to a persistent worker. Bands never overlap, so workers write to disjoint
// regions of the destination buffer and need no locking.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// minRowsPerBand is the smallest band handed to a worker. Small images are
// processed inline because dispatch costs more than the work itself.
const minRowsPerBand = 16

// WorkerPool is a persistent pool of goroutines executing row bands.
//
// Thread safety: WorkerPool is safe for concurrent use. Several ParallelFor
// calls may be in flight at once; each waits only for its own bands.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// work carries bands to the workers.
	work chan band

	// mu orders dispatch against Close so no band is sent on a closed channel.
	mu     sync.RWMutex
	closed bool
}

// band is one contiguous range of rows plus the barrier of its caller.
type band struct {
	fn         func(start, end int)
	start, end int
	barrier    *sync.WaitGroup
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		work:    make(chan band, workers*2),
	}

	for range workers {
		go p.worker()
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker() {
	for b := range p.work {
		b.fn(b.start, b.end)
		b.barrier.Done()
	}
}

// Workers returns the number of worker goroutines.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// Close stops the workers. Pending bands complete first.
// Calling Close more than once is safe; ParallelFor on a closed pool runs
// sequentially.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.work)
}

// ParallelFor calls fn over [0, n) split into contiguous [start, end) bands
// and blocks until every band has completed.
func (p *WorkerPool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	bands := min(p.workers, (n+minRowsPerBand-1)/minRowsPerBand)
	if bands <= 1 {
		fn(0, n)
		return
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		fn(0, n)
		return
	}

	size := (n + bands - 1) / bands

	var wg sync.WaitGroup
	for start := 0; start < n; start += size {
		end := min(start+size, n)
		wg.Add(1)
		p.work <- band{fn: fn, start: start, end: end, barrier: &wg}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// defaultPool is the process-wide pool used by the engine.
var defaultPool atomic.Pointer[WorkerPool]

func init() {
	defaultPool.Store(NewWorkerPool(0))
}

// SetWorkers replaces the process-wide pool with one of n workers.
// n <= 0 selects GOMAXPROCS. The previous pool is closed after in-flight
// work drains.
func SetWorkers(n int) {
	old := defaultPool.Swap(NewWorkerPool(n))
	if old != nil {
		old.Close()
	}
}

// Workers returns the worker count of the process-wide pool.
func Workers() int {
	return defaultPool.Load().Workers()
}

// For runs fn over [0, n) on the process-wide pool.
func For(n int, fn func(start, end int)) {
	defaultPool.Load().ParallelFor(n, fn)
}
