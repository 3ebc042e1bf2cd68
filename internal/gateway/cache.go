package gateway

import (
	"net/url"
	"sync"
	"time"
)

// cacheEntry pairs a response with the moment it was stored. Entries older
// than the caller's TTL are treated as absent.
type cacheEntry struct {
	at   time.Time
	resp Response
}

// listCache is a best-effort read-through cache for GET responses, keyed by
// path plus the canonical query serialization. A mutex guards the map so
// reads, writes, and purges never interleave.
type listCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
}

func newListCache() *listCache {
	return &listCache{entries: make(map[string]cacheEntry)}
}

// cacheKey builds a deterministic key: url.Values.Encode sorts by key.
func cacheKey(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}

func (l *listCache) get(key string, ttl time.Duration, now time.Time) (*Response, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[key]
	if !ok || now.Sub(entry.at) >= ttl {
		return nil, false
	}
	resp := entry.resp
	return &resp, true
}

func (l *listCache) put(key string, resp *Response, now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[key] = cacheEntry{at: now, resp: *resp}
}

// purge drops everything. Not scoped to the written resource on purpose.
func (l *listCache) purge() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = make(map[string]cacheEntry)
}

func (l *listCache) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
