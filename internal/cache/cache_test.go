package cache

import (
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
)

// constant returns a create func that records its calls.
func constant(v int, calls *int) func() int {
	return func() int {
		*calls++
		return v
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](4)
	var calls int

	if v := c.GetOrCreate("a", constant(1, &calls)); v != 1 {
		t.Errorf("GetOrCreate(a) = %d, want 1", v)
	}
	if v := c.GetOrCreate("a", constant(2, &calls)); v != 1 {
		t.Errorf("GetOrCreate(a) on a hit = %d, want cached 1", v)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](3)
	var calls int
	for k := 1; k <= 3; k++ {
		c.GetOrCreate(k, constant(k, &calls))
	}
	c.GetOrCreate(1, constant(1, &calls)) // 2 is now the oldest
	c.GetOrCreate(4, constant(4, &calls))

	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}

	calls = 0
	for _, k := range []int{1, 3, 4} {
		c.GetOrCreate(k, constant(k, &calls))
	}
	if calls != 0 {
		t.Errorf("%d of entries 1, 3, 4 were rebuilt, want 0", calls)
	}
	c.GetOrCreate(2, constant(2, &calls))
	if calls != 1 {
		t.Error("entry 2 should have been evicted")
	}
}

func TestCacheClear(t *testing.T) {
	c := New[string, int](0)
	var calls int
	for i := range 10 {
		c.GetOrCreate(strconv.Itoa(i), constant(i, &calls))
	}
	if c.Len() != 10 {
		t.Fatalf("unlimited cache Len() = %d, want 10", c.Len())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	if v := c.GetOrCreate("x", constant(1, &calls)); v != 1 || c.Len() != 1 {
		t.Error("cache should be usable after Clear")
	}
}

func TestCacheGetOrCreateOnce(t *testing.T) {
	c := New[string, int](8)
	var calls atomic.Int32

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v := c.GetOrCreate("k", func() int {
				calls.Add(1)
				return 42
			})
			if v != 42 {
				t.Errorf("GetOrCreate = %d, want 42", v)
			}
		}()
	}
	wg.Wait()

	if calls.Load() != 1 {
		t.Errorf("create called %d times, want 1", calls.Load())
	}
}

func BenchmarkCacheHit(b *testing.B) {
	c := New[string, int](1000)
	for i := range 100 {
		c.GetOrCreate(strconv.Itoa(i), func() int { return i })
	}
	for b.Loop() {
		c.GetOrCreate("50", func() int { return 0 })
	}
}
