package bench

import (
	"sync"

	"github.com/daystram/eightpiece/board"
)

const DefaultCacheSize = 1 << 20 // number of entries

// Cache memoises subtree counts by position hash and remaining depth. It is
// safe for concurrent use.
type Cache struct {
	mu       sync.Mutex
	table    []*entry
	maskHash uint64

	// stats
	hits   int
	misses int
	writes int
}

type entry struct {
	hash     uint64
	depth    int
	nodes    uint64
	captures uint64
}

// NewCache returns a cache with size entries. size must be a power of two.
func NewCache(size uint64) *Cache {
	return &Cache{
		table:    make([]*entry, size),
		maskHash: size - 1,
	}
}

func (c *Cache) Set(b *board.Board, depth int, nodes, captures uint64) {
	hash := b.Hash()
	c.mu.Lock()
	defer c.mu.Unlock()
	index := hash & c.maskHash
	e := c.table[index]
	// deeper subtrees are more expensive to recompute
	if e == nil || e.depth <= depth {
		c.writes++
		c.table[index] = &entry{
			hash:     hash,
			depth:    depth,
			nodes:    nodes,
			captures: captures,
		}
	}
}

func (c *Cache) Get(b *board.Board, depth int) (uint64, uint64, bool) {
	hash := b.Hash()
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.table[hash&c.maskHash]
	if e == nil || e.hash != hash || e.depth != depth {
		c.misses++
		return 0, 0, false
	}
	c.hits++
	return e.nodes, e.captures, true
}

func (c *Cache) ResetStats() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hits = 0
	c.misses = 0
	c.writes = 0
}

func (c *Cache) Stats() (int, int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses, c.writes
}
