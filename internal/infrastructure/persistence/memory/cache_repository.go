// Package memory provides an in-memory cache repository implementation.
// It is the default cache backend for single-node and development
// deployments; production deployments point at Redis instead.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/forkful/v2/internal/ports/outbound"
)

const defaultTTL = 24 * time.Hour

// cacheItem represents a cached item
type cacheItem struct {
	value     []byte
	expiresAt time.Time
}

// CacheRepository implements an in-memory cache with per-key TTLs.
// A miss returns (nil, nil); expired entries are reaped by a janitor
// goroutine and lazily on read.
type CacheRepository struct {
	mu   sync.RWMutex
	data map[string]cacheItem
}

// NewCacheRepository creates a new in-memory cache repository. The
// janitor sweeps expired entries every cleanupInterval.
func NewCacheRepository(cleanupInterval time.Duration) outbound.CacheRepository {
	repo := &CacheRepository{
		data: make(map[string]cacheItem),
	}

	if cleanupInterval > 0 {
		go repo.janitor(cleanupInterval)
	}

	return repo
}

// Get retrieves a value from cache; a miss is (nil, nil)
func (r *CacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	item, exists := r.data[key]
	r.mu.RUnlock()

	if !exists {
		return nil, nil
	}
	if time.Now().After(item.expiresAt) {
		r.mu.Lock()
		delete(r.data, key)
		r.mu.Unlock()
		return nil, nil
	}

	return item.value, nil
}

// Set stores a value in cache with TTL
func (r *CacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[key] = cacheItem{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Delete removes a key from cache
func (r *CacheRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.data, key)
	return nil
}

// Exists checks if a live key exists in cache
func (r *CacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	r.mu.RLock()
	item, exists := r.data[key]
	r.mu.RUnlock()

	if !exists {
		return false, nil
	}
	if time.Now().After(item.expiresAt) {
		r.mu.Lock()
		delete(r.data, key)
		r.mu.Unlock()
		return false, nil
	}
	return true, nil
}

func (r *CacheRepository) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		r.mu.Lock()
		for key, item := range r.data {
			if now.After(item.expiresAt) {
				delete(r.data, key)
			}
		}
		r.mu.Unlock()
	}
}
