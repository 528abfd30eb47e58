package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dotacourier/match-api/internal/models"
)

type memoryEntry struct {
	perf     *models.PlayerPerformance
	storedAt time.Time
}

// Memory is the in-process performance cache. With a zero TTL entries live
// for the whole process lifetime; a positive TTL expires them lazily on read.
type Memory struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	group   singleflight.Group
	now     func() time.Time
}

// NewMemory creates a memory cache. ttl of 0 means no expiry.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// GetOrCompute returns the cached record for (accountID, matchID), running
// compute at most once across concurrent callers when it is absent.
func (c *Memory) GetOrCompute(ctx context.Context, accountID, matchID string, compute func(context.Context) (*models.PlayerPerformance, error)) (*models.PlayerPerformance, bool, error) {
	key := cacheKey(accountID, matchID)

	if perf, ok := c.lookup(key); ok {
		cacheHits.WithLabelValues("memory").Inc()
		return perf, true, nil
	}

	v, err, shared := c.group.Do(key, func() (any, error) {
		// A concurrent flight may have stored the entry between the lookup
		// above and this call.
		if perf, ok := c.lookup(key); ok {
			return perf, nil
		}

		cacheMisses.WithLabelValues("memory").Inc()
		perf, err := compute(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = memoryEntry{perf: perf, storedAt: c.now()}
		c.mu.Unlock()
		return perf, nil
	})
	if err != nil {
		return nil, false, err
	}
	return v.(*models.PlayerPerformance), shared, nil
}

func (c *Memory) lookup(key string) (*models.PlayerPerformance, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.ttl > 0 && c.now().Sub(entry.storedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.perf, true
}

// Len reports the number of live entries, mainly for tests and readiness.
func (c *Memory) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
