package repo

import (
	"context"
	"fmt"
	"sync"

	"chessmm/internal/chess"
	"chessmm/internal/engine"
	ownErrors "chessmm/internal/errors"
)

// SearchKey identifies a finished top-level search. Positions reached inside a
// search are never cached.
type SearchKey struct {
	Hash  uint64
	Side  chess.Side
	Depth int
}

func (k SearchKey) String() string {
	return fmt.Sprintf("search:%016x:%s:%d", k.Hash, k.Side, k.Depth)
}

type SearchCache interface {
	// Get returns ownErrors.ErrCacheMiss when nothing is stored under key.
	Get(ctx context.Context, key SearchKey) (engine.SearchResult, error)
	Put(ctx context.Context, key SearchKey, res engine.SearchResult) error
}

const defaultMemoryCacheSize = 1 << 16

type MemorySearchCache struct {
	mu      sync.RWMutex
	entries map[SearchKey]engine.SearchResult
	max     int
}

// NewMemorySearchCache keeps at most max entries and starts over once full.
func NewMemorySearchCache(max int) *MemorySearchCache {
	if max <= 0 {
		max = defaultMemoryCacheSize
	}
	return &MemorySearchCache{
		entries: make(map[SearchKey]engine.SearchResult),
		max:     max,
	}
}

func (c *MemorySearchCache) Get(_ context.Context, key SearchKey) (engine.SearchResult, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.entries[key]
	if !ok {
		return engine.SearchResult{}, ownErrors.ErrCacheMiss
	}
	return res, nil
}

func (c *MemorySearchCache) Put(_ context.Context, key SearchKey, res engine.SearchResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.max {
		c.entries = make(map[SearchKey]engine.SearchResult, c.max)
	}
	c.entries[key] = res
	return nil
}

func (c *MemorySearchCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
