package fotmob

import (
	"sync"
	"time"

	"github.com/itbasis/go-clock"
)

// DefaultCacheTTL matches how often squad pages realistically change.
const DefaultCacheTTL = 12 * time.Hour

type cacheEntry struct {
	photos  map[string]string
	fetched time.Time
}

type cachedClient struct {
	inner Client
	clock clock.Clock
	ttl   time.Duration

	mu      sync.Mutex
	entries map[string]cacheEntry
}

// NewCached wraps a client with a per-URL TTL cache so the squad page is not
// re-scraped on every page load. Expired entries are refetched lazily; a
// failed refetch keeps serving the stale map rather than dropping photos.
func NewCached(inner Client, clk clock.Clock, ttl time.Duration) Client {
	return &cachedClient{
		inner:   inner,
		clock:   clk,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *cachedClient) SquadPhotos(squadURL string) (map[string]string, error) {
	c.mu.Lock()
	entry, ok := c.entries[squadURL]
	c.mu.Unlock()

	now := c.clock.Now()
	if ok && now.Sub(entry.fetched) < c.ttl {
		return entry.photos, nil
	}

	photos, err := c.inner.SquadPhotos(squadURL)
	if err != nil {
		if ok {
			return entry.photos, nil
		}
		return nil, err
	}

	c.mu.Lock()
	c.entries[squadURL] = cacheEntry{photos: photos, fetched: now}
	c.mu.Unlock()
	return photos, nil
}
