package app

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const memoryNameTTL = 10 * time.Minute

type cachedName struct {
	name      string
	expiresAt time.Time
}

// MemoryNameCache is the fallback name cache used when no redis is
// configured. Entries expire after the same TTL the redis cache uses.
type MemoryNameCache struct {
	clock clockwork.Clock

	mu    sync.Mutex
	names map[int64]cachedName
}

func NewMemoryNameCache(clock clockwork.Clock) *MemoryNameCache {
	return &MemoryNameCache{clock: clock, names: make(map[int64]cachedName)}
}

func (c *MemoryNameCache) Get(_ context.Context, userID int64) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.names[userID]
	if !ok {
		return "", false, nil
	}
	if c.clock.Now().After(entry.expiresAt) {
		delete(c.names, userID)
		return "", false, nil
	}
	return entry.name, true, nil
}

func (c *MemoryNameCache) Set(_ context.Context, userID int64, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names[userID] = cachedName{name: name, expiresAt: c.clock.Now().Add(memoryNameTTL)}
	return nil
}
