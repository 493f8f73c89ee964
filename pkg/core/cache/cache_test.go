package cache

import (
	"sync"
	"testing"
)

func TestGetOrSet(t *testing.T) {
	c := New[int](DefaultConfig())
	calls := 0
	compute := func() int {
		calls++
		return 42
	}

	for i := 0; i < 3; i++ {
		if got := c.GetOrSet("answer", compute); got != 42 {
			t.Fatalf("GetOrSet() = %d", got)
		}
	}
	if calls != 1 {
		t.Errorf("compute called %d times, want 1", calls)
	}

	hits, misses, rate := c.Stats()
	if hits != 2 || misses != 1 || rate < 66 || rate > 67 {
		t.Errorf("Stats() = %d, %d, %.2f", hits, misses, rate)
	}
}

func TestEviction(t *testing.T) {
	c := New[string](Config{MaxItems: 2})
	c.Set("a", "1")
	c.Set("b", "2")
	c.Set("a", "3")
	c.Set("c", "4")

	if _, ok := c.Get("a"); ok {
		t.Error("oldest entry should be evicted")
	}
	if v, ok := c.Get("b"); !ok || v != "2" {
		t.Errorf("Get(b) = %q, %v", v, ok)
	}
	if c.Size() != 2 {
		t.Errorf("Size() = %d, want 2", c.Size())
	}

	c.Clear()
	if c.Size() != 0 {
		t.Error("Clear() left items")
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New[int](Config{MaxItems: 8})
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			c.GetOrSet(string(rune('a'+n%10)), func() int { return n })
		}(i)
	}
	wg.Wait()

	if c.Size() > 8 {
		t.Errorf("Size() = %d exceeds bound", c.Size())
	}
}
