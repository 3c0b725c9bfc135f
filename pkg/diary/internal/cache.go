package internal

const defaultMaxCacheSize = 32

// Cache is a small LRU keyed by string. Evicted values are handed to the
// eviction hook so GPU resources can be released.
type Cache[V any] struct {
	values  map[string]V
	order   []string // least recently used first
	maxSize int
	onEvict func(key string, value V)
}

// NewCache creates a cache holding up to maxSize values. A non-positive size
// uses the default.
func NewCache[V any](maxSize int, onEvict func(key string, value V)) *Cache[V] {
	if maxSize <= 0 {
		maxSize = defaultMaxCacheSize
	}
	return &Cache[V]{
		values:  make(map[string]V),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		onEvict: onEvict,
	}
}

// Get returns the cached value and marks it most recently used.
func (c *Cache[V]) Get(key string) (V, bool) {
	v, ok := c.values[key]
	if ok {
		c.moveToEnd(key)
	}
	return v, ok
}

// Set stores value under key, evicting the least recently used entry when full.
// Replacing a key evicts the old value.
func (c *Cache[V]) Set(key string, value V) {
	if old, exists := c.values[key]; exists {
		c.values[key] = value
		c.moveToEnd(key)
		c.evict(key, old)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.values[key] = value
	c.order = append(c.order, key)
}

// Len is the number of cached values.
func (c *Cache[V]) Len() int {
	return len(c.values)
}

func (c *Cache[V]) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *Cache[V]) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	if v, exists := c.values[oldest]; exists {
		delete(c.values, oldest)
		c.evict(oldest, v)
	}
}

func (c *Cache[V]) evict(key string, v V) {
	if c.onEvict != nil {
		c.onEvict(key, v)
	}
}

// Purge evicts everything.
func (c *Cache[V]) Purge() {
	for key, v := range c.values {
		c.evict(key, v)
	}
	c.values = make(map[string]V)
	c.order = c.order[:0]
}
