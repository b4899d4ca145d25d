package loteria

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/lediergzl/loteria-parser/pkg/loteriabet"
)

// cacheEntry is one bounded cache slot: a stored result plus the
// bookkeeping the eviction policy needs.
type cacheEntry struct {
	value      loteriabet.ParseResult
	insertedAt time.Time
	ttl        time.Duration
	hitCount   int
}

// Cache is the in-process, bounded, TTL + least-hit-count eviction cache
// keyed by hash(input)+config fingerprint. It has no networked or
// persistent backend — parsing stays single-process, so a networked
// cache client is not wired here (see DESIGN.md).
type Cache struct {
	mu        sync.Mutex
	entries   map[string]*cacheEntry
	maxSize   int
	hits      int
	misses    int
	evictions int
}

// NewCache constructs an empty cache bounded to maxSize entries.
func NewCache(maxSize int) *Cache {
	return &Cache{entries: make(map[string]*cacheEntry), maxSize: maxSize}
}

// CacheKey computes the (input-hash, config-fingerprint) key as a
// single hex string.
func CacheKey(text string, cfg *Config) string {
	h := sha256.New()
	h.Write([]byte(text))
	fmt.Fprintf(h, "|%t|%t|%t|%d|%s|%s|%t|%s|%s|%s|%d|%d",
		cfg.StrictMode, cfg.AutoExpand, cfg.ValidateTotals, cfg.MaxJugadores,
		cfg.CurrencySymbol, cfg.DecimalSeparator, cfg.AllowNegative,
		cfg.MaxMonto.String(), cfg.DefaultMontoFijo.String(),
		cfg.DefaultMontoCorr.String(), cfg.TimeoutMs, cfg.ExpansionCap)
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached result for key if present and unexpired.
func (c *Cache) Get(key string) (loteriabet.ParseResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		return loteriabet.ParseResult{}, false
	}
	if time.Since(e.insertedAt) > e.ttl {
		delete(c.entries, key)
		c.misses++
		return loteriabet.ParseResult{}, false
	}
	e.hitCount++
	c.hits++
	return e.value, true
}

// Set stores value under key, evicting expired entries first and then,
// if still at capacity, the entry with the lowest hit count. Only
// successful parses should ever be passed here.
func (c *Cache) Set(key string, value loteriabet.ParseResult, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.evictExpiredLocked()
	if c.maxSize > 0 && len(c.entries) >= c.maxSize {
		if _, exists := c.entries[key]; !exists {
			c.evictLeastUsedLocked()
		}
	}
	c.entries[key] = &cacheEntry{value: value, insertedAt: time.Now(), ttl: ttl}
}

func (c *Cache) evictExpiredLocked() {
	now := time.Now()
	for k, e := range c.entries {
		if now.Sub(e.insertedAt) > e.ttl {
			delete(c.entries, k)
			c.evictions++
		}
	}
}

func (c *Cache) evictLeastUsedLocked() {
	var minKey string
	minHits := -1
	for k, e := range c.entries {
		if minHits == -1 || e.hitCount < minHits {
			minHits = e.hitCount
			minKey = k
		}
	}
	if minKey != "" {
		delete(c.entries, minKey)
		c.evictions++
	}
}

// Stats returns a point-in-time snapshot of cache behavior.
func (c *Cache) Stats() loteriabet.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := c.hits + c.misses
	var rate float64
	if total > 0 {
		rate = float64(c.hits) / float64(total)
	}
	return loteriabet.CacheStats{
		Hits: c.hits, Misses: c.misses, Size: len(c.entries),
		Evictions: c.evictions, HitRate: rate,
	}
}
