package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	c := New[string, int](0)
	if c == nil {
		t.Fatal("New returned nil")
	}
	if c.Capacity() != 0 {
		t.Errorf("expected unlimited capacity, got %d", c.Capacity())
	}
	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", c.Len())
	}
	if New[string, int](-5).Capacity() != 0 {
		t.Error("negative soft limit should mean unlimited")
	}
}

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](0)
	c.Set("key1", 42)

	val, ok := c.Get("key1")
	if !ok || val != 42 {
		t.Errorf("Get(key1) = %d, %v; want 42, true", val, ok)
	}
	if _, ok := c.Get("nonexistent"); ok {
		t.Error("expected nonexistent key to not exist")
	}

	// Last writer wins.
	c.Set("key1", 7)
	if val, _ := c.Get("key1"); val != 7 {
		t.Errorf("after overwrite Get(key1) = %d, want 7", val)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheUnlimitedNeverEvicts(t *testing.T) {
	c := New[int, int](0)
	for i := range 5000 {
		c.Set(i, i)
	}
	if c.Len() != 5000 {
		t.Errorf("Len() = %d, want 5000", c.Len())
	}
	if c.Stats().Evictions != 0 {
		t.Errorf("Evictions = %d, want 0", c.Stats().Evictions)
	}
}

func TestCacheSoftLimitEviction(t *testing.T) {
	c := New[string, int](8)
	for i := range 8 {
		c.Set(strconv.Itoa(i), i)
	}
	// Touch "0" so it survives eviction.
	c.Get("0")
	c.Set("8", 8)

	if c.Len() != 6 {
		t.Errorf("Len() after eviction = %d, want 6", c.Len())
	}
	if _, ok := c.Get("0"); !ok {
		t.Error("recently used entry was evicted")
	}
	if _, ok := c.Get("1"); ok {
		t.Error("oldest entry survived eviction")
	}
	if got := c.Stats().Evictions; got != 3 {
		t.Errorf("Evictions = %d, want 3", got)
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](0)
	calls := 0
	create := func() int {
		calls++
		return 100
	}

	if v := c.GetOrCreate("k", create); v != 100 {
		t.Errorf("GetOrCreate = %d, want 100", v)
	}
	if v := c.GetOrCreate("k", create); v != 100 {
		t.Errorf("GetOrCreate (cached) = %d, want 100", v)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestCacheDeleteClear(t *testing.T) {
	c := New[string, int](0)
	c.Set("a", 1)
	c.Set("b", 2)

	if !c.Delete("a") {
		t.Error("Delete(a) = false")
	}
	if c.Delete("a") {
		t.Error("second Delete(a) = true")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
	if _, ok := c.Get("b"); ok {
		t.Error("entry survived Clear")
	}
}

func TestCacheStats(t *testing.T) {
	c := New[string, int](0)
	if s := c.Stats(); s.HitRate != 0 || s.Hits != 0 || s.Misses != 0 {
		t.Errorf("fresh Stats = %+v", s)
	}

	c.Set("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("a")
	c.Get("b")

	s := c.Stats()
	if s.Len != 1 || s.Hits != 3 || s.Misses != 1 {
		t.Errorf("Stats = %+v", s)
	}
	if s.HitRate != 0.75 {
		t.Errorf("HitRate = %v, want 0.75", s.HitRate)
	}

	c.ResetStats()
	if s := c.Stats(); s.Hits != 0 || s.Misses != 0 {
		t.Errorf("after ResetStats = %+v", s)
	}
}

func TestCacheRange(t *testing.T) {
	c := New[int, int](0)
	for i := range 10 {
		c.Set(i, i*i)
	}

	sum := 0
	c.Range(func(k, v int) bool {
		if v != k*k {
			t.Errorf("entry %d = %d", k, v)
		}
		sum += k
		return true
	})
	if sum != 45 {
		t.Errorf("Range visited keys summing to %d, want 45", sum)
	}

	visited := 0
	c.Range(func(int, int) bool {
		visited++
		return false
	})
	if visited != 1 {
		t.Errorf("Range after false visited %d, want 1", visited)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[int, int](0)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := range 100 {
				c.Set(g*100+i, i)
				c.Get(g*100 + i)
			}
		}(g)
	}
	wg.Wait()

	if c.Len() != 800 {
		t.Errorf("Len() = %d, want 800", c.Len())
	}
	if s := c.Stats(); s.Hits != 800 {
		t.Errorf("Hits = %d, want 800", s.Hits)
	}
}
