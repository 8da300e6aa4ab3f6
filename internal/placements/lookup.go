package placements

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/goliatone/go-widgetlayout/internal/logging"
	"github.com/goliatone/go-widgetlayout/pkg/interfaces"
	"github.com/goliatone/go-widgetlayout/widgets"
)

// Lookup resolves area content from a placement repository.
type Lookup struct {
	repo   Repository
	logger interfaces.Logger
}

var _ interfaces.AreaContentLookup = (*Lookup)(nil)

// NewLookup adapts repo to the area content lookup contract.
func NewLookup(repo Repository, logger interfaces.Logger) *Lookup {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Lookup{repo: repo, logger: logger}
}

// LookupArea returns the widgets placed in the area, in position order. An
// empty area yields an empty, non-nil slice.
func (l *Lookup) LookupArea(ctx context.Context, template, location string) ([]widgets.PlacedWidget, error) {
	records, err := l.repo.ListByArea(ctx, template, location)
	if err != nil {
		logging.WithAreaContext(l.logger, template, location).Error("placements.lookup.failed", "error", err)
		return nil, err
	}
	out := make([]widgets.PlacedWidget, 0, len(records))
	for _, record := range records {
		out = append(out, widgets.PlacedWidget{Widget: record.Widget, Data: record.Data})
	}
	return out, nil
}

// CachedLookup memoises area content for a fixed TTL.
type CachedLookup struct {
	inner interfaces.AreaContentLookup
	cache *gocache.Cache
}

var _ interfaces.AreaContentLookup = (*CachedLookup)(nil)

// NewCachedLookup wraps inner with an in-memory cache. Entries expire after ttl
// and are swept every 2*ttl.
func NewCachedLookup(inner interfaces.AreaContentLookup, ttl time.Duration) *CachedLookup {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CachedLookup{
		inner: inner,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (c *CachedLookup) LookupArea(ctx context.Context, template, location string) ([]widgets.PlacedWidget, error) {
	key := areaKey(template, location)
	if cached, ok := c.cache.Get(key); ok {
		if items, ok := cached.([]widgets.PlacedWidget); ok {
			return widgets.ClonePlacedWidgets(items), nil
		}
	}

	items, err := c.inner.LookupArea(ctx, template, location)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(key, widgets.ClonePlacedWidgets(items))
	return items, nil
}

// Invalidate drops the cached content for one area.
func (c *CachedLookup) Invalidate(template, location string) {
	c.cache.Delete(areaKey(template, location))
}

// Flush drops every cached entry.
func (c *CachedLookup) Flush() {
	c.cache.Flush()
}
