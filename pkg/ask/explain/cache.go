package explain

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// answerCache stores rendered answers keyed by (intent, question hash, fact
// bundle hash). TTL expiry is delegated to go-cache; capacity is enforced
// here by evicting the oldest inserted entry first.
type answerCache struct {
	mu       sync.Mutex
	entries  *cache.Cache
	order    []string
	capacity int
}

func newAnswerCache(ttl time.Duration, capacity int) *answerCache {
	return &answerCache{
		entries:  cache.New(ttl, ttl),
		capacity: capacity,
	}
}

func (c *answerCache) Get(key string) (string, bool) {
	if x, found := c.entries.Get(key); found {
		return x.(string), true
	}
	return "", false
}

func (c *answerCache) Set(key, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, found := c.entries.Get(key); !found {
		for c.entries.ItemCount() >= c.capacity && len(c.order) > 0 {
			oldest := c.order[0]
			c.order = c.order[1:]
			c.entries.Delete(oldest)
		}
		c.order = append(c.order, key)
	}
	c.entries.Set(key, text, cache.DefaultExpiration)
}

func (c *answerCache) Len() int {
	return c.entries.ItemCount()
}
