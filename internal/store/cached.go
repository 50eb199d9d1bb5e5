package store

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/InventarioBot_Go/internal/domain"
	"github.com/osse101/InventarioBot_Go/internal/logger"
)

// cacheSize is one entry per document name; a process serves one document
// but the cache is keyed so a shared backend stays unambiguous.
const cacheSize = 8

// CachedStore keeps the last loaded or saved document in memory for a TTL,
// sparing a backend read per request. It is only correct while this process
// is the single writer of the document.
type CachedStore struct {
	next Store
	key  string
	lru  *expirable.LRU[string, domain.Document]
}

// NewCachedStore wraps next. A non-positive ttl disables caching and
// returns next unchanged.
func NewCachedStore(next Store, key string, ttl time.Duration) Store {
	if ttl <= 0 {
		return next
	}
	return &CachedStore{
		next: next,
		key:  key,
		lru:  expirable.NewLRU[string, domain.Document](cacheSize, nil, ttl),
	}
}

// Load returns a copy of the cached document, or loads and caches it.
// Recovered documents are not cached so the corruption keeps being reported.
func (c *CachedStore) Load(ctx context.Context) (domain.Document, LoadState, error) {
	if doc, ok := c.lru.Get(c.key); ok {
		logger.FromContext(ctx).Debug(LogMsgCacheHit, "document", c.key)
		return doc.Clone(), LoadStateLoaded, nil
	}

	doc, state, err := c.next.Load(ctx)
	if err != nil {
		return nil, state, err
	}
	if state != LoadStateRecovered {
		c.lru.Add(c.key, doc.Clone())
	}
	return doc, state, nil
}

// Save writes through and refreshes the cache. A failed save evicts the
// entry so the next load reads the backend.
func (c *CachedStore) Save(ctx context.Context, doc domain.Document) error {
	if err := c.next.Save(ctx, doc); err != nil {
		c.lru.Remove(c.key)
		return err
	}
	c.lru.Add(c.key, doc.Clone())
	return nil
}

// Ping delegates to the wrapped store
func (c *CachedStore) Ping(ctx context.Context) error {
	return c.next.Ping(ctx)
}
