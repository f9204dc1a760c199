package cache

import (
	"sync"
	"time"

	"doccov/internal/domain"
)

// ReportCache memoizes per-file analyses within one session, keyed by
// content hash. It is created per session and passed explicitly to the
// scan use case; entries expire by TTL and are dropped wholesale when
// the generation is invalidated.
type ReportCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	order   []string
	maxSize int
	ttl     time.Duration
	gen     uint64
}

type cacheEntry struct {
	outline   []domain.Unit
	report    domain.Report
	timestamp time.Time
	gen       uint64
}

func NewReportCache(maxSize int, ttl time.Duration) *ReportCache {
	if maxSize <= 0 {
		maxSize = 256
	}
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &ReportCache{
		entries: make(map[string]*cacheEntry),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		ttl:     ttl,
	}
}

func (c *ReportCache) Get(contentHash string) ([]domain.Unit, domain.Report, bool) {
	c.mu.RLock()
	entry, exists := c.entries[contentHash]
	currentGen := c.gen
	c.mu.RUnlock()

	if !exists {
		return nil, domain.Report{}, false
	}

	if time.Since(entry.timestamp) > c.ttl || entry.gen != currentGen {
		c.mu.Lock()
		delete(c.entries, contentHash)
		c.removeFromOrder(contentHash)
		c.mu.Unlock()
		return nil, domain.Report{}, false
	}

	c.mu.Lock()
	c.moveToEnd(contentHash)
	c.mu.Unlock()

	return entry.outline, entry.report, true
}

func (c *ReportCache) Put(contentHash string, outline []domain.Unit, report domain.Report) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[contentHash]; exists {
		c.entries[contentHash] = &cacheEntry{
			outline:   outline,
			report:    report,
			timestamp: time.Now(),
			gen:       c.gen,
		}
		c.moveToEnd(contentHash)
		return
	}

	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	c.entries[contentHash] = &cacheEntry{
		outline:   outline,
		report:    report,
		timestamp: time.Now(),
		gen:       c.gen,
	}
	c.order = append(c.order, contentHash)
}

// Invalidate drops all entries by bumping the generation.
func (c *ReportCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheEntry)
	c.order = c.order[:0]
	c.gen++
}

func (c *ReportCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *ReportCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}

func (c *ReportCache) moveToEnd(key string) {
	c.removeFromOrder(key)
	c.order = append(c.order, key)
}

func (c *ReportCache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
