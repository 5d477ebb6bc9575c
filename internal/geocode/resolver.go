package geocode

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rovira-studio/atelier/internal/models"
)

// Located pairs a work with its resolved coordinate.
type Located struct {
	Work  *models.WorkItem
	Point models.GeoPoint
}

// Resolver resolves work addresses to coordinates, cache-first, falling back
// to the network on a miss. Lookups are strictly sequential with a
// politeness delay between network calls; Nominatim expects roughly one
// request per second.
type Resolver struct {
	client *Client
	cache  *Cache
	delay  time.Duration
	mu     sync.Mutex
}

// NewResolver creates a resolver over client and cache.
func NewResolver(client *Client, cache *Cache, delay time.Duration) *Resolver {
	return &Resolver{client: client, cache: cache, delay: delay}
}

// ResolveAll resolves every work with a place string, in list order. Works
// that fail to resolve — network error, non-OK response, empty result — are
// silently omitted; the map just shows fewer markers. No retries.
func (r *Resolver) ResolveAll(ctx context.Context, works []*models.WorkItem) []Located {
	r.mu.Lock()
	defer r.mu.Unlock()

	var located []Located
	for _, work := range works {
		query := work.Place()
		if query == "" {
			continue
		}

		if pt, ok := r.cache.Get(query); ok {
			located = append(located, Located{Work: work, Point: pt})
			continue
		}

		pt, found, err := r.client.Lookup(ctx, query)
		if err != nil {
			slog.Warn("Geocoding failed, omitting work from map", "slug", work.Slug, "query", query, "error", err)
			r.sleep(ctx)
			continue
		}
		if !found {
			slog.Warn("No geocoding result, omitting work from map", "slug", work.Slug, "query", query)
			r.sleep(ctx)
			continue
		}

		if err := r.cache.Put(query, pt); err != nil {
			slog.Warn("Failed to persist geocode cache", "query", query, "error", err)
		}
		located = append(located, Located{Work: work, Point: pt})
		r.sleep(ctx)
	}
	return located
}

func (r *Resolver) sleep(ctx context.Context) {
	if r.delay <= 0 {
		return
	}
	select {
	case <-time.After(r.delay):
	case <-ctx.Done():
	}
}
