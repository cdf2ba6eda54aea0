package content

import (
	"testing"
	"time"
)

func TestCache_HitAndStale(t *testing.T) {
	c := NewCache[string](10)
	mod := time.Now()

	c.Set("a.md", "body", 4, mod)

	if got, ok := c.Get("a.md", 4, mod); !ok || got != "body" {
		t.Errorf("Get = %q, %v, want body, true", got, ok)
	}
	if _, ok := c.Get("a.md", 5, mod); ok {
		t.Error("size change should miss")
	}
	if _, ok := c.Get("a.md", 4, mod.Add(time.Second)); ok {
		t.Error("modtime change should miss")
	}
	if _, ok := c.Get("missing.md", 4, mod); ok {
		t.Error("unknown key should miss")
	}
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewCache[int](2)
	mod := time.Now()

	c.Set("a", 1, 1, mod)
	time.Sleep(time.Millisecond)
	c.Set("b", 2, 1, mod)
	time.Sleep(time.Millisecond)

	// Touch a so b becomes the eviction candidate.
	c.Get("a", 1, mod)
	time.Sleep(time.Millisecond)
	c.Set("c", 3, 1, mod)

	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	if _, ok := c.Get("b", 1, mod); ok {
		t.Error("b should have been evicted")
	}
	if _, ok := c.Get("a", 1, mod); !ok {
		t.Error("a should have survived")
	}
	if _, ok := c.Get("c", 1, mod); !ok {
		t.Error("c should have survived")
	}
}

func TestCache_DeleteIf(t *testing.T) {
	c := NewCache[int](10)
	mod := time.Now()
	c.Set("keep", 1, 1, mod)
	c.Set("drop", 2, 1, mod)

	c.DeleteIf(func(key string, _ Entry[int]) bool {
		return key == "drop"
	})

	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
	if _, ok := c.Get("drop", 1, mod); ok {
		t.Error("drop should be gone")
	}
}
