package suggest

import (
	"sync"

	"github.com/tchap/go-patricia/v2/patricia"
)

// ValidationCache memoizes candidate *validity* (per spec §4.5.2: "c is
// valid iff FindForm(...) returns non-None and ... does not carry
// NOSUGGEST") by exact string, backed by a patricia trie so that future
// prefix-scoped invalidation (e.g. "drop everything under a removed root")
// stays cheap. Eviction is LRU by monotonic access counter (spec §9
// "memoization caches").
//
// Weight is strategy-dependent (spec §4.5.2: replacement-table candidates
// score 10, everything else 0) and is deliberately NOT part of the cached
// value — the same candidate string can be produced by different
// strategies across different Suggest calls, so caching a strategy's
// weight here would let a later, differently-weighted occurrence of the
// same string silently inherit a stale weight.
type ValidationCache struct {
	mu         sync.RWMutex
	trie       *patricia.Trie
	accessTime map[string]int64
	clock      int64
	capacity   int
}

// NewValidationCache creates a cache holding at most capacity entries.
func NewValidationCache(capacity int) *ValidationCache {
	return &ValidationCache{
		trie:       patricia.NewTrie(),
		accessTime: make(map[string]int64, capacity),
		capacity:   capacity,
	}
}

// Get returns the memoized validity for candidate, if present.
func (c *ValidationCache) Get(candidate string) (valid bool, found bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item := c.trie.Get(patricia.Prefix(candidate))
	if item == nil {
		return false, false
	}
	c.clock++
	c.accessTime[candidate] = c.clock
	return item.(bool), true
}

// Put memoizes candidate's validity, evicting the least recently used
// entry first when at capacity.
func (c *ValidationCache) Put(candidate string, valid bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := patricia.Prefix(candidate)
	if c.trie.Get(key) == nil && c.capacity > 0 && len(c.accessTime) >= c.capacity {
		c.evictLRU()
	}
	c.trie.Set(key, valid)
	c.clock++
	c.accessTime[candidate] = c.clock
}

// Clear drops every entry (spec §9: invalidation strategy on mutation is
// "clear entirely").
func (c *ValidationCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.trie = patricia.NewTrie()
	c.accessTime = make(map[string]int64, c.capacity)
	c.clock = 0
}

func (c *ValidationCache) evictLRU() {
	var oldestKey string
	var oldestTime int64 = 1<<63 - 1
	for key, t := range c.accessTime {
		if t < oldestTime {
			oldestTime = t
			oldestKey = key
		}
	}
	if oldestKey != "" {
		c.trie.Delete(patricia.Prefix(oldestKey))
		delete(c.accessTime, oldestKey)
	}
}
