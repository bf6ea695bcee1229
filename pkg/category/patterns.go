package category

import (
	"container/list"
	"regexp"
	"sync"
)

// patternCacheSize bounds the number of compiled patterns kept for RandomMatching.
const patternCacheSize = 128

type patternEntry struct {
	pattern string
	re      *regexp.Regexp
}

// patternCache is a thread-safe LRU of compiled regular expressions.
// When the cache reaches its capacity, the least recently used pattern is evicted.
type patternCache struct {
	capacity int
	items    map[string]*list.Element
	eviction *list.List
	mu       sync.Mutex
}

func newPatternCache(capacity int) *patternCache {
	if capacity <= 0 {
		panic("pattern cache capacity must be positive")
	}
	return &patternCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
	}
}

var patterns = newPatternCache(patternCacheSize)

// compile returns the cached regexp for pattern, compiling it on a miss.
// Compilation errors are not cached.
func (c *patternCache) compile(pattern string) (*regexp.Regexp, error) {
	c.mu.Lock()
	if elem, ok := c.items[pattern]; ok {
		c.eviction.MoveToFront(elem)
		re := elem.Value.(*patternEntry).re
		c.mu.Unlock()
		return re, nil
	}
	c.mu.Unlock()

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have compiled the same pattern meanwhile.
	if elem, ok := c.items[pattern]; ok {
		c.eviction.MoveToFront(elem)
		return elem.Value.(*patternEntry).re, nil
	}

	c.items[pattern] = c.eviction.PushFront(&patternEntry{pattern: pattern, re: re})
	if c.eviction.Len() > c.capacity {
		c.evictOldest()
	}
	return re, nil
}

func (c *patternCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Must be called with lock held.
func (c *patternCache) evictOldest() {
	elem := c.eviction.Back()
	if elem == nil {
		return
	}
	c.eviction.Remove(elem)
	delete(c.items, elem.Value.(*patternEntry).pattern)
}
