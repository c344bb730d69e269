package wordml

import (
	"container/list"
	"errors"
	"sync"
	"time"
)

// CacheConfig contains configuration options for the part cache
type CacheConfig struct {
	// MaxSize is the maximum number of parsed parts to cache. 0 disables caching.
	MaxSize int
	// TTL is the time-to-live for cached parts. 0 means no expiration.
	TTL time.Duration
}

// PartCache caches parsed part element trees, so repeated conversions of
// the same package skip re-parsing. Cached trees are shared: encode never
// mutates its input, but callers who edit a cached tree must Clone first.
type PartCache struct {
	mu     sync.RWMutex
	cache  map[string]*partCacheEntry
	lru    *list.List
	config CacheConfig
}

type partCacheEntry struct {
	key     string
	root    *Element
	expiry  time.Time
	element *list.Element
}

// NewPartCache creates a part cache configured from the global config.
func NewPartCache() *PartCache {
	config := GetGlobalConfig()
	return NewPartCacheWithConfig(CacheConfig{
		MaxSize: config.CacheMaxSize,
		TTL:     config.CacheTTL,
	})
}

// NewPartCacheWithConfig creates a part cache with the given configuration.
func NewPartCacheWithConfig(config CacheConfig) *PartCache {
	return &PartCache{
		cache:  make(map[string]*partCacheEntry),
		lru:    list.New(),
		config: config,
	}
}

// Parse returns the cached tree for key, or loads and parses it with load.
func (pc *PartCache) Parse(load func() (*Element, error), key string) (*Element, error) {
	if pc.config.MaxSize == 0 {
		if load == nil {
			return nil, errors.New("cache is disabled and no loader provided")
		}
		return load()
	}

	pc.mu.RLock()
	entry, exists := pc.cache[key]
	pc.mu.RUnlock()

	if exists {
		if pc.config.TTL > 0 && time.Now().After(entry.expiry) {
			pc.Remove(key)
		} else {
			pc.mu.Lock()
			pc.lru.MoveToFront(entry.element)
			pc.mu.Unlock()
			return entry.root, nil
		}
	}

	if load == nil {
		return nil, errors.New("part not in cache and no loader provided")
	}
	root, err := load()
	if err != nil {
		return nil, err
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.lru.Len() >= pc.config.MaxSize {
		oldest := pc.lru.Back()
		if oldest != nil {
			oldEntry := oldest.Value.(*partCacheEntry)
			delete(pc.cache, oldEntry.key)
			pc.lru.Remove(oldest)
		}
	}

	entry = &partCacheEntry{
		key:  key,
		root: root,
	}
	if pc.config.TTL > 0 {
		entry.expiry = time.Now().Add(pc.config.TTL)
	}
	entry.element = pc.lru.PushFront(entry)
	pc.cache[key] = entry

	return root, nil
}

// Remove evicts a single entry.
func (pc *PartCache) Remove(key string) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if entry, exists := pc.cache[key]; exists {
		pc.lru.Remove(entry.element)
		delete(pc.cache, key)
	}
}

// Clear evicts everything.
func (pc *PartCache) Clear() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	pc.cache = make(map[string]*partCacheEntry)
	pc.lru.Init()
}

// Len returns the number of cached entries.
func (pc *PartCache) Len() int {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return len(pc.cache)
}
