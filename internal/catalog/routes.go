package catalog

import (
	"context"
	"sync"

	"shuttle/internal/domain"
	"shuttle/internal/events"
	"shuttle/internal/metrics"
	"shuttle/internal/seed"
	"shuttle/internal/store"
	"shuttle/internal/utils"
)

// RouteCatalog owns the shuttleRoutes collection. Read-only after load;
// the only way routes change is a full reseed.
type RouteCatalog struct {
	store store.Store
	bus   *events.Bus
	fetch seed.Fetcher

	memMu      sync.RWMutex
	routes     []domain.Route
	loadedOnce sync.Once
}

func NewRouteCatalog(st store.Store, bus *events.Bus, fetch seed.Fetcher) *RouteCatalog {
	return &RouteCatalog{store: st, bus: bus, fetch: fetch}
}

// Load runs the same remote → cache → default chain as the schedule,
// persists the winner, and announces "routes loaded" exactly once.
func (c *RouteCatalog) Load(ctx context.Context) error {
	remote, remoteErr := c.fetch.Routes(ctx)
	if remoteErr != nil {
		metrics.SeedFetchFailures.Inc()
		utils.LogEvent("", "routes", "fetch_failed", remoteErr.Error())
	}

	var cached []domain.Route
	cachedErr := seed.ErrNoCache
	if ok, err := store.GetJSON(c.store, store.KeyRoutes, &cached); ok && err == nil {
		cachedErr = nil
	}

	resolved, source := seed.Resolve(remote, remoteErr, cached, cachedErr, seed.DefaultRoutes())
	if err := store.SetJSON(c.store, store.KeyRoutes, resolved); err != nil {
		return domain.InternalError{Msg: "persist routes", Err: err}
	}

	c.memMu.Lock()
	c.routes = resolved
	c.memMu.Unlock()

	utils.LogEvent("", "routes", "loaded", "source="+string(source))
	c.loadedOnce.Do(func() { c.bus.Publish(events.RoutesLoaded) })
	return nil
}

// All returns a copy of the loaded routes.
func (c *RouteCatalog) All() []domain.Route {
	c.memMu.RLock()
	defer c.memMu.RUnlock()
	out := make([]domain.Route, len(c.routes))
	copy(out, c.routes)
	return out
}

// GetByName finds a route by its unique name.
func (c *RouteCatalog) GetByName(name string) (domain.Route, error) {
	c.memMu.RLock()
	defer c.memMu.RUnlock()
	for _, r := range c.routes {
		if r.Name == name {
			return r, nil
		}
	}
	return domain.Route{}, domain.NotFoundError{Resource: "route"}
}
