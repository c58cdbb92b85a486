package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"sync/atomic"
	"time"

	"github.com/ZanzyTHEbar/career-compass/internal/assessment"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	DefaultSize = 1024
	DefaultTTL  = 15 * time.Minute
)

type entry struct {
	data     []byte
	storedAt time.Time
}

// ResultCache holds encoded assessment results keyed by questionnaire and
// answer set. Entries older than the TTL are treated as misses. It is safe
// for concurrent use.
type ResultCache struct {
	items *lru.Cache[string, entry]
	ttl   time.Duration
	now   func() time.Time

	hits   int64
	misses int64
}

// New creates a cache holding at most size entries for ttl each. Non-positive
// values fall back to the defaults.
func New(size int, ttl time.Duration) *ResultCache {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	// lru.New only fails for a non-positive size
	items, _ := lru.New[string, entry](size)
	return &ResultCache{items: items, ttl: ttl, now: time.Now}
}

// Key derives the canonical key for an answer list. Later answers to the same
// question replace earlier ones and order does not matter, matching how the
// engine collects answers.
func Key(questionnaire string, answers []assessment.Answer) string {
	latest := make(map[string]assessment.Value, len(answers))
	for _, a := range answers {
		latest[a.QuestionID] = a.Value
	}
	ids := make([]string, 0, len(latest))
	for id := range latest {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	h := sha256.New()
	h.Write([]byte(questionnaire))
	h.Write([]byte{0})
	for _, id := range ids {
		v := latest[id]
		if v.IsZero() {
			continue
		}
		encoded, err := json.Marshal(v)
		if err != nil {
			encoded = []byte(v.String())
		}
		h.Write([]byte(id))
		h.Write([]byte{0})
		h.Write(encoded)
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Get retrieves an item from the cache
func (c *ResultCache) Get(key string) ([]byte, bool) {
	e, ok := c.items.Get(key)
	if ok && c.now().Sub(e.storedAt) < c.ttl {
		atomic.AddInt64(&c.hits, 1)
		return e.data, true
	}
	if ok {
		c.items.Remove(key)
	}
	atomic.AddInt64(&c.misses, 1)
	return nil, false
}

// Set stores an item in the cache
func (c *ResultCache) Set(key string, data []byte) {
	c.items.Add(key, entry{data: data, storedAt: c.now()})
}

// Clear removes all items from the cache
func (c *ResultCache) Clear() {
	c.items.Purge()
}

// Size returns the number of items in the cache, expired ones included
func (c *ResultCache) Size() int {
	return c.items.Len()
}

// Stats returns cache statistics
func (c *ResultCache) Stats() map[string]interface{} {
	return map[string]interface{}{
		"items":       c.items.Len(),
		"hits":        atomic.LoadInt64(&c.hits),
		"misses":      atomic.LoadInt64(&c.misses),
		"ttl_seconds": c.ttl.Seconds(),
	}
}
