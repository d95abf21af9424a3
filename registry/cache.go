package registry

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/blogem/content-audit/models"
)

type cachedLookup struct {
	ct    models.ContentType
	found bool
}

// Cached memoizes plural-name lookups of a Directory in an LRU.
// The cache is purged whenever the directory is replaced, and answers read
// from a replaced directory are never stored.
type Cached struct {
	dir   *Directory
	cache *lru.Cache[string, cachedLookup]
	// mu orders stores against purges
	mu sync.Mutex
}

// NewCached wraps dir with a lookup cache holding up to size entries
func NewCached(dir *Directory, size int) (*Cached, error) {
	cache, err := lru.New[string, cachedLookup](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create registry cache: %w", err)
	}

	c := &Cached{dir: dir, cache: cache}
	dir.OnReplace(c.purge)
	return c, nil
}

// FindByPluralName implements Registry
func (c *Cached) FindByPluralName(pluralName string) (models.ContentType, bool) {
	if hit, ok := c.cache.Get(pluralName); ok {
		return hit.ct, hit.found
	}

	ct, found, generation := c.dir.findByPluralName(pluralName)
	c.store(pluralName, cachedLookup{ct: ct, found: found}, generation)
	return ct, found
}

// store caches a lookup unless the directory was replaced after it was read
func (c *Cached) store(pluralName string, lookup cachedLookup, generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dir.Generation() != generation {
		return
	}
	c.cache.Add(pluralName, lookup)
}

func (c *Cached) purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Purge()
}

// FindByUID implements Registry
func (c *Cached) FindByUID(uid string) (models.ContentType, bool) {
	return c.dir.FindByUID(uid)
}

// Auditable implements Registry
func (c *Cached) Auditable() []models.ContentType {
	return c.dir.Auditable()
}

// Len reports the number of cached lookups
func (c *Cached) Len() int {
	return c.cache.Len()
}
