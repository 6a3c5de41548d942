// Package cache provides the in-memory document cache used by the
// orchestration layer. The core pipeline never touches it.
package cache

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "cache")

// LRU is an insertion-order cache bounded by a byte budget. Eviction pops the
// oldest inserted entry until the budget holds; reads do not refresh an
// entry's position.
type LRU struct {
	mu    sync.Mutex
	max   int64
	total int64
	data  map[string][]byte
	order []string
}

func New(maxBytes int64) *LRU {
	return &LRU{max: maxBytes, data: make(map[string][]byte)}
}

func (c *LRU) Put(key string, val []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if old, ok := c.data[key]; ok {
		c.total -= int64(len(old))
		c.removeFromOrder(key)
	}
	c.data[key] = val
	c.order = append(c.order, key)
	c.total += int64(len(val))
	c.evict()
}

func (c *LRU) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	val, ok := c.data[key]
	return val, ok
}

func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}

// Bytes reports the current cached payload size.
func (c *LRU) Bytes() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

func (c *LRU) evict() {
	for c.total > c.max && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		if val, ok := c.data[oldest]; ok {
			c.total -= int64(len(val))
			delete(c.data, oldest)
			log.WithFields(logrus.Fields{"key": oldest, "freed": len(val)}).
				Info("evicted cache entry")
		}
	}
}

func (c *LRU) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
