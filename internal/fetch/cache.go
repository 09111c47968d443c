package fetch

import (
	"context"
	"sync"
	"time"
)

// Cache defaults
const (
	// DefaultCacheTTL is how long a fetched page is served from memory.
	DefaultCacheTTL = 15 * time.Minute
	// DefaultMaxCacheEntries bounds the number of pages held at once.
	DefaultMaxCacheEntries = 256
)

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache bool
	FetchedAt time.Time
}

type cacheEntry struct {
	result    *Result
	fetchedAt time.Time
}

// CachedFetcher wraps URL fetching with an in-memory TTL cache.
// It is safe for concurrent use.
type CachedFetcher struct {
	options    *Options
	ttl        time.Duration
	maxEntries int
	now        func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry
}

// NewCachedFetcher creates a cached fetcher holding at most DefaultMaxCacheEntries
// pages. Nil options use DefaultOptions; a non-positive ttl uses DefaultCacheTTL.
func NewCachedFetcher(options *Options, ttl time.Duration) *CachedFetcher {
	if options == nil {
		options = DefaultOptions()
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedFetcher{
		options:    options,
		ttl:        ttl,
		maxEntries: DefaultMaxCacheEntries,
		now:        time.Now,
		entries:    make(map[string]cacheEntry),
	}
}

// Fetch retrieves a URL, serving a fresh cached copy when one exists.
// Failed fetches are never cached.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	if entry, ok := f.lookup(urlStr); ok {
		return &CachedResult{Result: entry.result, FromCache: true, FetchedAt: entry.fetchedAt}, nil
	}

	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	fetchedAt := f.now()
	f.mu.Lock()
	f.store(urlStr, cacheEntry{result: result, fetchedAt: fetchedAt})
	f.mu.Unlock()

	return &CachedResult{Result: result, FetchedAt: fetchedAt}, nil
}

// Len returns the number of fresh cached pages.
func (f *CachedFetcher) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sweep(f.now())
	return len(f.entries)
}

// store inserts an entry after dropping expired pages, then evicts the
// oldest pages while the cache is over its cap. Callers hold mu.
func (f *CachedFetcher) store(urlStr string, entry cacheEntry) {
	f.sweep(entry.fetchedAt)
	f.entries[urlStr] = entry

	for f.maxEntries > 0 && len(f.entries) > f.maxEntries {
		var oldest string
		var oldestAt time.Time
		for key, e := range f.entries {
			if oldest == "" || e.fetchedAt.Before(oldestAt) {
				oldest, oldestAt = key, e.fetchedAt
			}
		}
		delete(f.entries, oldest)
	}
}

// sweep drops every expired entry. Callers hold mu.
func (f *CachedFetcher) sweep(now time.Time) {
	for key, e := range f.entries {
		if now.Sub(e.fetchedAt) >= f.ttl {
			delete(f.entries, key)
		}
	}
}

func (f *CachedFetcher) lookup(urlStr string) (cacheEntry, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entry, ok := f.entries[urlStr]
	if !ok {
		return cacheEntry{}, false
	}
	if f.now().Sub(entry.fetchedAt) >= f.ttl {
		delete(f.entries, urlStr)
		return cacheEntry{}, false
	}
	return entry, true
}
