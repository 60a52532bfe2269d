package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// MemorySnapshotCache is an in-process port.SnapshotCache used when no Redis
// address is configured. Entries expire lazily on read.
type MemorySnapshotCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemorySnapshotCache creates an empty cache.
func NewMemorySnapshotCache() *MemorySnapshotCache {
	return &MemorySnapshotCache{entries: make(map[string]memoryEntry)}
}

// Get returns the cached payload for token, if present and unexpired.
func (c *MemorySnapshotCache) Get(_ context.Context, token string) ([]byte, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[token]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, token)
		c.mu.Unlock()
		return nil, false, nil
	}
	return entry.payload, true, nil
}

// Set stores the payload under token. A zero TTL means no expiry.
func (c *MemorySnapshotCache) Set(_ context.Context, token string, payload []byte, ttl time.Duration) error {
	entry := memoryEntry{payload: payload}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	c.mu.Lock()
	c.entries[token] = entry
	c.mu.Unlock()
	return nil
}

// Invalidate drops the entry for token.
func (c *MemorySnapshotCache) Invalidate(_ context.Context, token string) error {
	c.mu.Lock()
	delete(c.entries, token)
	c.mu.Unlock()
	return nil
}
