package asset

import (
	"container/list"
	"hash/fnv"
	"sync"
)

// glyphShards must be a power of 2 for mask-based shard selection
const glyphShards = 8

// glyphCache is a sharded LRU of parsed glyphs keyed by URL
type glyphCache struct {
	shards   [glyphShards]*glyphShard
	perShard int
}

type glyphShard struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	lru     *list.List // front is most recent
}

type glyphEntry struct {
	url   string
	glyph *Glyph
}

// newGlyphCache holds roughly capacity glyphs, at least one per shard
func newGlyphCache(capacity int) *glyphCache {
	c := &glyphCache{perShard: max(capacity/glyphShards, 1)}
	for i := range c.shards {
		c.shards[i] = &glyphShard{entries: make(map[string]*list.Element), lru: list.New()}
	}
	return c
}

func (c *glyphCache) shard(url string) *glyphShard {
	h := fnv.New64a()
	_, _ = h.Write([]byte(url))
	return c.shards[h.Sum64()&(glyphShards-1)]
}

// Get returns the glyph for url and marks it most recently used
func (c *glyphCache) Get(url string) (*Glyph, bool) {
	s := c.shard(url)
	s.mu.Lock()
	defer s.mu.Unlock()
	el, ok := s.entries[url]
	if !ok {
		return nil, false
	}
	s.lru.MoveToFront(el)
	return el.Value.(*glyphEntry).glyph, true
}

// Set stores g under url, evicting the shard's least recently used entry when full
func (c *glyphCache) Set(url string, g *Glyph) {
	s := c.shard(url)
	s.mu.Lock()
	defer s.mu.Unlock()
	if el, ok := s.entries[url]; ok {
		el.Value.(*glyphEntry).glyph = g
		s.lru.MoveToFront(el)
		return
	}
	for s.lru.Len() >= c.perShard {
		oldest := s.lru.Back()
		s.lru.Remove(oldest)
		delete(s.entries, oldest.Value.(*glyphEntry).url)
	}
	s.entries[url] = s.lru.PushFront(&glyphEntry{url: url, glyph: g})
}

// Delete drops url if present
func (c *glyphCache) Delete(url string) {
	s := c.shard(url)
	s.mu.Lock()
	defer s.mu.Unlock()
	if el, ok := s.entries[url]; ok {
		s.lru.Remove(el)
		delete(s.entries, url)
	}
}

// Len counts entries across shards
func (c *glyphCache) Len() int {
	n := 0
	for _, s := range c.shards {
		s.mu.Lock()
		n += len(s.entries)
		s.mu.Unlock()
	}
	return n
}
