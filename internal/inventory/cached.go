package inventory

import (
	"context"
	"log/slog"

	"github.com/FiliRodrigues/Araras/internal/cache"
	"github.com/FiliRodrigues/Araras/internal/core"
	"golang.org/x/sync/singleflight"
)

// Cached memoizes a Loader keyed by its source identity. The dataset
// is read once and served from memory for the process lifetime (or
// until Invalidate); concurrent first loads are collapsed so the
// source is still read only once.
type Cached struct {
	loader Loader
	store  *cache.Store[core.Dataset]
	group  singleflight.Group
}

// NewCached wraps loader with the given dataset store.
func NewCached(loader Loader, store *cache.Store[core.Dataset]) *Cached {
	return &Cached{loader: loader, store: store}
}

func (c *Cached) SourceID() string { return c.loader.SourceID() }

func (c *Cached) Load(ctx context.Context) (core.Dataset, error) {
	key := c.loader.SourceID()
	if ds, ok := c.store.Get(key); ok {
		slog.DebugContext(ctx, "Dataset cache hit", "source", key, "records", len(ds))
		return ds, nil
	}
	v, err, _ := c.group.Do(key, func() (any, error) {
		if ds, ok := c.store.Get(key); ok {
			return ds, nil
		}
		ds, err := c.loader.Load(ctx)
		if err != nil {
			return nil, err
		}
		c.store.Set(key, ds)
		slog.InfoContext(ctx, "Dataset loaded and cached", "source", key, "records", len(ds))
		return ds, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(core.Dataset), nil
}

// Invalidate drops the cached dataset so the next Load re-reads the
// source. Exposed through the admin reload endpoint.
func (c *Cached) Invalidate() {
	c.store.Delete(c.loader.SourceID())
}
