package content

import (
	"sort"
	"sync"
	"time"
)

// Entry holds cached data with file metadata for invalidation.
type Entry[T any] struct {
	Data       T
	ModTime    time.Time
	Size       int64
	LastAccess time.Time
}

// Cache is a thread-safe generic cache with LRU eviction, keyed by file
// path and invalidated by size and modification time.
type Cache[T any] struct {
	entries    map[string]Entry[T]
	mu         sync.RWMutex
	maxEntries int
}

// NewCache creates a cache holding at most maxEntries entries.
func NewCache[T any](maxEntries int) *Cache[T] {
	return &Cache[T]{
		entries:    make(map[string]Entry[T]),
		maxEntries: maxEntries,
	}
}

// Get returns cached data if the file metadata still matches.
func (c *Cache[T]) Get(key string, size int64, modTime time.Time) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		var zero T
		return zero, false
	}

	if entry.Size != size || !entry.ModTime.Equal(modTime) {
		var zero T
		return zero, false
	}

	entry.LastAccess = time.Now()
	c.entries[key] = entry
	return entry.Data, true
}

// Set stores data with the file metadata it was read under.
func (c *Cache[T]) Set(key string, data T, size int64, modTime time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = Entry[T]{
		Data:       data,
		ModTime:    modTime,
		Size:       size,
		LastAccess: time.Now(),
	}

	c.evictOldestLocked()
}

// Delete removes an entry.
func (c *Cache[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// DeleteIf removes entries matching the predicate.
func (c *Cache[T]) DeleteIf(pred func(key string, entry Entry[T]) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, entry := range c.entries {
		if pred(key, entry) {
			delete(c.entries, key)
		}
	}
}

// Len returns the number of entries.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// evictOldestLocked removes least-recently-accessed entries while over
// capacity. Must be called with the lock held.
func (c *Cache[T]) evictOldestLocked() {
	excess := len(c.entries) - c.maxEntries
	if excess <= 0 {
		return
	}

	type keyAccess struct {
		key        string
		lastAccess time.Time
	}
	entries := make([]keyAccess, 0, len(c.entries))
	for key, entry := range c.entries {
		entries = append(entries, keyAccess{key, entry.LastAccess})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].lastAccess.Before(entries[j].lastAccess)
	})

	for i := range excess {
		delete(c.entries, entries[i].key)
	}
}
