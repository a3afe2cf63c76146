// ABOUTME: Process-wide TTL cache for the subscription list
// ABOUTME: Thread-safe map with per-entry expiry and a small entry cap

package inoreader

import (
	"sync"
	"time"
)

const cacheMaxEntries = 100

// subscriptionCache provides thread-safe, time-bounded memoization of
// subscription lists. In practice it holds a single entry; the cap only
// matters if callers ever key by account.
type subscriptionCache struct {
	mu         sync.RWMutex
	entries    map[string]*subscriptionCacheEntry
	maxEntries int
}

type subscriptionCacheEntry struct {
	subscriptions []Subscription
	expiresAt     time.Time
}

// Shared instance. Clients come and go per tool call; the cache is the one
// piece of state that outlives them.
var (
	sharedSubscriptionCache     *subscriptionCache
	sharedSubscriptionCacheOnce sync.Once
)

func getSubscriptionCache() *subscriptionCache {
	sharedSubscriptionCacheOnce.Do(func() {
		sharedSubscriptionCache = newSubscriptionCache(cacheMaxEntries)
	})
	return sharedSubscriptionCache
}

func newSubscriptionCache(maxEntries int) *subscriptionCache {
	return &subscriptionCache{
		entries:    make(map[string]*subscriptionCacheEntry),
		maxEntries: maxEntries,
	}
}

// Get returns the cached list for key if present and not expired.
func (c *subscriptionCache) Get(key string) ([]Subscription, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.subscriptions, true
}

// Set stores subscriptions under key for the given TTL.
func (c *subscriptionCache) Set(key string, subscriptions []Subscription, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxEntries {
		c.evictLocked()
	}
	c.entries[key] = &subscriptionCacheEntry{
		subscriptions: subscriptions,
		expiresAt:     time.Now().Add(ttl),
	}
}

// Clear removes all entries. Used by tests.
func (c *subscriptionCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*subscriptionCacheEntry)
}

// evictLocked drops expired entries, and if nothing expired, one arbitrary
// entry to make room. Callers must hold the write lock.
func (c *subscriptionCache) evictLocked() {
	now := time.Now()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
	if len(c.entries) < c.maxEntries {
		return
	}
	for key := range c.entries {
		delete(c.entries, key)
		return
	}
}
