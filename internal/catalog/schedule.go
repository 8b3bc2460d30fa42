// Package catalog holds the store-backed collection managers for the
// Routes and Schedule collections.
package catalog

import (
	"context"
	"sort"
	"sync"

	"shuttle/internal/domain"
	"shuttle/internal/events"
	"shuttle/internal/metrics"
	"shuttle/internal/seed"
	"shuttle/internal/store"
	"shuttle/internal/utils"
)

// FilterAll is the sentinel route-filter value meaning "no filter".
const FilterAll = "all"

// ScheduleCatalog owns the shuttleSchedule collection. Its in-memory copy
// exists only to serve reads; every mutation and every availability check
// goes through a fresh read of the persisted store, so a stale mirror can
// never be written back. The catalog's mutex serializes those
// read-mutate-write sequences; the original relied on its host being
// single-threaded for the same guarantee.
type ScheduleCatalog struct {
	store store.Store
	bus   *events.Bus
	fetch seed.Fetcher

	mu         sync.Mutex // guards store round-trips
	memMu      sync.RWMutex
	slots      []domain.ScheduleSlot
	loadedOnce sync.Once
}

func NewScheduleCatalog(st store.Store, bus *events.Bus, fetch seed.Fetcher) *ScheduleCatalog {
	c := &ScheduleCatalog{store: st, bus: bus, fetch: fetch}
	// Redraw-on-refresh: after a booking mutates the store, re-read it so
	// the served table shows updated seat counts.
	bus.Subscribe(events.RefreshSchedule, func() {
		if err := c.Reload(); err != nil {
			utils.LogEvent("", "schedule", "reload_failed", err.Error())
		}
	})
	return c
}

// Load resolves the collection through the remote → cache → default chain,
// writes the winner back to the store, and announces readiness exactly
// once. Safe to call again; later calls re-resolve but do not re-announce.
func (c *ScheduleCatalog) Load(ctx context.Context) error {
	remote, remoteErr := c.fetch.Schedule(ctx)
	if remoteErr != nil {
		metrics.SeedFetchFailures.Inc()
		utils.LogEvent("", "schedule", "fetch_failed", remoteErr.Error())
	}

	c.mu.Lock()
	cached, cachedErr := c.readStored()
	resolved, source := seed.Resolve(remote, remoteErr, cached, cachedErr, seed.DefaultSchedule())
	err := store.SetJSON(c.store, store.KeySchedule, resolved)
	c.mu.Unlock()
	if err != nil {
		return domain.InternalError{Msg: "persist schedule", Err: err}
	}

	c.memMu.Lock()
	c.slots = resolved
	c.memMu.Unlock()

	utils.LogEvent("", "schedule", "loaded", "source="+string(source))
	c.loadedOnce.Do(func() { c.bus.Publish(events.ScheduleLoaded) })
	return nil
}

// Reload replaces the in-memory copy with the store's current contents.
func (c *ScheduleCatalog) Reload() error {
	c.mu.Lock()
	slots, err := c.readStored()
	c.mu.Unlock()
	if err != nil {
		return err
	}

	c.memMu.Lock()
	c.slots = slots
	c.memMu.Unlock()
	return nil
}

// readStored returns the persisted collection. Callers hold c.mu.
func (c *ScheduleCatalog) readStored() ([]domain.ScheduleSlot, error) {
	var slots []domain.ScheduleSlot
	ok, err := store.GetJSON(c.store, store.KeySchedule, &slots)
	if err != nil || !ok {
		return nil, seed.ErrNoCache
	}
	return slots, nil
}

// Slots returns a copy of the in-memory collection.
func (c *ScheduleCatalog) Slots() []domain.ScheduleSlot {
	c.memMu.RLock()
	defer c.memMu.RUnlock()
	out := make([]domain.ScheduleSlot, len(c.slots))
	copy(out, c.slots)
	return out
}

// FilterByRoute returns the slots whose route equals name exactly, or the
// whole collection for the "all" sentinel. Pure over the in-memory copy.
func (c *ScheduleCatalog) FilterByRoute(name string) []domain.ScheduleSlot {
	all := c.Slots()
	if name == FilterAll || name == "" {
		return all
	}
	out := make([]domain.ScheduleSlot, 0, len(all))
	for _, s := range all {
		if s.Route == name {
			out = append(out, s)
		}
	}
	return out
}

// RouteNames returns the distinct route names present in the schedule, in
// first-seen order. This feeds the booking form's route selector.
func (c *ScheduleCatalog) RouteNames() []string {
	seen := map[string]bool{}
	var names []string
	for _, s := range c.Slots() {
		if !seen[s.Route] {
			seen[s.Route] = true
			names = append(names, s.Route)
		}
	}
	return names
}

// AvailableTimes returns the route's bookable slots (available > 0, with a
// departure set), sorted by departure ascending.
func (c *ScheduleCatalog) AvailableTimes(route string) []domain.ScheduleSlot {
	var out []domain.ScheduleSlot
	for _, s := range c.Slots() {
		if s.Route == route && s.Available > 0 && s.Departure != "" {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Departure < out[j].Departure
	})
	return out
}

// CheckAvailability re-reads the canonical collection and reports whether
// the (route, departure) slot exists with seats left.
func (c *ScheduleCatalog) CheckAvailability(route, departure string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	slots, err := c.readStored()
	if err != nil {
		return false, nil
	}
	for _, s := range slots {
		if s.Route == route && s.Departure == departure {
			return s.Available > 0, nil
		}
	}
	return false, nil
}

// DecrementAvailability is the sole mutation path for seat counts. It
// re-reads the canonical collection, decrements the unique (route,
// departure) slot only when seats remain, and writes the whole collection
// back. Returns whether the decrement occurred; available never goes
// negative.
func (c *ScheduleCatalog) DecrementAvailability(route, departure string) (bool, error) {
	return c.adjust(route, departure, -1)
}

// IncrementAvailability releases one seat, bounded by capacity. It exists
// as the rollback arm of the booking flow.
func (c *ScheduleCatalog) IncrementAvailability(route, departure string) (bool, error) {
	return c.adjust(route, departure, +1)
}

func (c *ScheduleCatalog) adjust(route, departure string, delta int) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	slots, err := c.readStored()
	if err != nil {
		return false, nil
	}
	for i := range slots {
		s := &slots[i]
		if s.Route != route || s.Departure != departure {
			continue
		}
		next := s.Available + delta
		if next < 0 || next > s.Capacity {
			return false, nil
		}
		s.Available = next
		if err := store.SetJSON(c.store, store.KeySchedule, slots); err != nil {
			return false, domain.InternalError{Msg: "persist schedule", Err: err}
		}
		return true, nil
	}
	return false, nil
}
