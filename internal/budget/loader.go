package budget

import (
	"context"
	"errors"
	"io/fs"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

var ErrUserKeyMissing = errors.New("the user key must not be empty")

// Loader loads and caches the budget catalogs of users.
type Loader struct {
	source Source
	cache  CatalogCache
	group  singleflight.Group

	// mu guards generations, bumped by every invalidation of a key
	mu          sync.Mutex
	generations map[string]uint64
}

// NewLoader returns a Loader reading from source and caching in cache.
func NewLoader(source Source, cache CatalogCache) *Loader {
	return &Loader{
		source:      source,
		cache:       cache,
		generations: make(map[string]uint64),
	}
}

// Load returns the catalog for the user.
//
// A missing or malformed catalog resource results in an empty catalog
// that is cached like any other. All callers for the same key receive the
// same *Catalog until the key is invalidated.
func (l *Loader) Load(ctx context.Context, userKey string) (*Catalog, error) {
	if userKey == "" {
		return nil, ErrUserKeyMissing
	}

	if c, ok := l.cache.Load(userKey); ok {
		CatalogLoads.WithLabelValues(loadHit).Inc()
		return c, nil
	}

	v, _, _ := l.group.Do(userKey, func() (interface{}, error) {
		// Another flight may have filled the cache in the meantime
		if c, ok := l.cache.Load(userKey); ok {
			CatalogLoads.WithLabelValues(loadHit).Inc()
			return c, nil
		}

		generation := l.generation(userKey)
		c, cacheable := l.read(ctx, userKey)
		if !cacheable {
			return c, nil
		}

		return l.store(userKey, c, generation), nil
	})

	return v.(*Catalog), nil
}

// Invalidate removes the cached catalog of the user. The next call to Load
// reads it from the source again.
func (l *Loader) Invalidate(userKey string) {
	l.mu.Lock()
	l.generations[userKey]++
	l.group.Forget(userKey)
	l.cache.Delete(userKey)
	l.mu.Unlock()

	log.Debug().Str("user", userKey).Msg("budget catalog invalidated")
}

func (l *Loader) generation(userKey string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.generations[userKey]
}

// store caches the catalog unless the key was invalidated after the load
// started at generation. It returns the canonical catalog.
func (l *Loader) store(userKey string, c *Catalog, generation uint64) *Catalog {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.generations[userKey] != generation {
		return c
	}

	actual, _ := l.cache.LoadOrStore(userKey, c)
	return actual
}

// read reads and parses the catalog of the user. It reports whether the
// result may be cached.
func (l *Loader) read(ctx context.Context, userKey string) (*Catalog, bool) {
	r, err := l.source.Open(ctx, userKey)
	if errors.Is(err, fs.ErrNotExist) {
		CatalogLoads.WithLabelValues(loadMissing).Inc()
		log.Debug().Str("user", userKey).Msg("no budget catalog, using empty catalog")
		return NewCatalog(), true
	}

	if err != nil {
		CatalogLoads.WithLabelValues(loadFailed).Inc()
		log.Error().Err(err).Str("user", userKey).Msg("budget catalog could not be read")
		return NewCatalog(), false
	}
	defer r.Close()

	c, err := ParseCatalog(r)
	if err != nil {
		CatalogLoads.WithLabelValues(loadMalformed).Inc()
		log.Error().Err(err).Str("user", userKey).Msg("budget catalog is malformed, using empty catalog")
		return NewCatalog(), true
	}

	CatalogLoads.WithLabelValues(loadParsed).Inc()
	log.Debug().Str("user", userKey).Int("budgets", c.Len()).Msg("budget catalog loaded")

	return c, true
}
