package budget

import "sync"

// CatalogCache stores the canonical catalog per user key.
type CatalogCache interface {
	// Load returns the cached catalog for the key.
	Load(userKey string) (*Catalog, bool)

	// LoadOrStore returns the existing catalog for the key if present.
	// Otherwise, it stores and returns the given catalog. The loaded result
	// is true if the catalog was loaded, false if stored.
	LoadOrStore(userKey string, catalog *Catalog) (actual *Catalog, loaded bool)

	// Delete removes the catalog for the key.
	Delete(userKey string)
}

// MemoryCache is a CatalogCache keeping all catalogs in memory for the
// lifetime of the process. The zero value is ready to use.
type MemoryCache struct {
	m sync.Map
}

// NewMemoryCache returns an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{}
}

func (c *MemoryCache) Load(userKey string) (*Catalog, bool) {
	v, ok := c.m.Load(userKey)
	if !ok {
		return nil, false
	}

	return v.(*Catalog), true
}

func (c *MemoryCache) LoadOrStore(userKey string, catalog *Catalog) (*Catalog, bool) {
	v, loaded := c.m.LoadOrStore(userKey, catalog)
	return v.(*Catalog), loaded
}

func (c *MemoryCache) Delete(userKey string) {
	c.m.Delete(userKey)
}
