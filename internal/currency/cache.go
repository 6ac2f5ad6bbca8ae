package currency

import (
	"sync"
	"time"
)

// rateCache remembers the most recent rate only. Looking up a different code
// replaces the entry.
type rateCache struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	code      string
	rate      float64
	fetchedAt time.Time
	set       bool
}

func newRateCache(ttl time.Duration, now func() time.Time) *rateCache {
	return &rateCache{ttl: ttl, now: now}
}

// get returns the cached rate for code if it is present and younger than ttl.
func (c *rateCache) get(code string) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.set || c.code != code || c.now().Sub(c.fetchedAt) >= c.ttl {
		return 0, false
	}
	return c.rate, true
}

func (c *rateCache) put(code string, rate float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.code, c.rate, c.fetchedAt, c.set = code, rate, c.now(), true
}
