package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestWorkerPoolCreate(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{"explicit", 4, 4},
		{"zero uses GOMAXPROCS", 0, runtime.GOMAXPROCS(0)},
		{"negative uses GOMAXPROCS", -5, runtime.GOMAXPROCS(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewWorkerPool(tt.workers)
			defer pool.Close()
			if pool.Workers() != tt.want {
				t.Errorf("Workers() = %d, want %d", pool.Workers(), tt.want)
			}
		})
	}
}

func TestParallelForCoversRange(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	for _, n := range []int{0, 1, 15, 16, 17, 100, 1000} {
		seen := make([]int32, n)
		pool.ParallelFor(n, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&seen[i], 1)
			}
		})
		for i, c := range seen {
			if c != 1 {
				t.Fatalf("n=%d: index %d visited %d times", n, i, c)
			}
		}
	}
}

func TestParallelForBands(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var calls atomic.Int32
	pool.ParallelFor(1000, func(start, end int) {
		calls.Add(1)
		if end-start <= 0 {
			t.Errorf("empty band [%d, %d)", start, end)
		}
	})
	if got := calls.Load(); got != 4 {
		t.Errorf("bands = %d, want 4", got)
	}

	calls.Store(0)
	pool.ParallelFor(10, func(start, end int) { calls.Add(1) })
	if got := calls.Load(); got != 1 {
		t.Errorf("small range bands = %d, want 1 (inline)", got)
	}
}

func TestParallelForConcurrentCallers(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()

	var wg sync.WaitGroup
	var total atomic.Int64
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool.ParallelFor(200, func(start, end int) {
				total.Add(int64(end - start))
			})
		}()
	}
	wg.Wait()

	if got := total.Load(); got != 8*200 {
		t.Errorf("total rows = %d, want %d", got, 8*200)
	}
}

func TestClosedPoolRunsInline(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()

	var n atomic.Int32
	pool.ParallelFor(100, func(start, end int) { n.Add(int32(end - start)) })
	if n.Load() != 100 {
		t.Errorf("rows = %d, want 100", n.Load())
	}
}

func TestSetWorkers(t *testing.T) {
	defer SetWorkers(0)

	SetWorkers(3)
	if Workers() != 3 {
		t.Errorf("Workers() = %d, want 3", Workers())
	}

	var n atomic.Int32
	For(64, func(start, end int) { n.Add(int32(end - start)) })
	if n.Load() != 64 {
		t.Errorf("For covered %d rows, want 64", n.Load())
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	data := make([]byte, 1920*1080)
	for b.Loop() {
		pool.ParallelFor(1080, func(start, end int) {
			for i := start * 1920; i < end*1920; i++ {
				data[i]++
			}
		})
	}
}
