package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"shuttle/internal/events"
	"shuttle/internal/seed"
	"shuttle/internal/store"
)

func newTestSchedule(t *testing.T) (*ScheduleCatalog, *store.Memory, *events.Bus) {
	t.Helper()
	st := store.NewMemory()
	bus := events.NewBus()
	return NewScheduleCatalog(st, bus, seed.Fetcher{}), st, bus
}

func TestLoadFallsBackToDefaultsAndPersists(t *testing.T) {
	c, st, bus := newTestSchedule(t)

	var loaded int
	bus.Subscribe(events.ScheduleLoaded, func() { loaded++ })

	// Empty store, no remote: the built-in defaults must win.
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded != 1 {
		t.Fatalf("scheduleLoaded published %d times", loaded)
	}

	want := seed.DefaultSchedule()
	if got := c.Slots(); !reflect.DeepEqual(got, want) {
		t.Fatalf("in-memory schedule differs from defaults")
	}

	stored, err := c.readStored()
	if err != nil {
		t.Fatalf("defaults were not persisted: %v", err)
	}
	if !reflect.DeepEqual(stored, want) {
		t.Fatalf("persisted schedule differs from defaults")
	}
	_ = st
}

func TestLoadPrefersRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"route":"R1","departure":"08:00","status":"on-time","capacity":10,"available":5}]`))
	}))
	defer srv.Close()

	st := store.NewMemory()
	bus := events.NewBus()
	c := NewScheduleCatalog(st, bus, seed.Fetcher{BaseURL: srv.URL})

	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	slots := c.Slots()
	if len(slots) != 1 || slots[0].Route != "R1" {
		t.Fatalf("remote data did not win: %+v", slots)
	}
}

func TestLoadPrefersCacheOverDefaults(t *testing.T) {
	st := store.NewMemory()
	bus := events.NewBus()
	c := NewScheduleCatalog(st, bus, seed.Fetcher{})

	cached := `[{"id":9,"route":"Cached","departure":"09:00","status":"on-time","capacity":4,"available":4}]`
	if err := st.Set(store.KeySchedule, []byte(cached)); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	slots := c.Slots()
	if len(slots) != 1 || slots[0].Route != "Cached" {
		t.Fatalf("cached data did not win: %+v", slots)
	}
}

func TestLoadReseedsOnMalformedCache(t *testing.T) {
	st := store.NewMemory()
	bus := events.NewBus()
	c := NewScheduleCatalog(st, bus, seed.Fetcher{})

	if err := st.Set(store.KeySchedule, []byte(`{broken`)); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(c.Slots()) != len(seed.DefaultSchedule()) {
		t.Fatalf("malformed cache should be discarded for defaults")
	}
}

func TestFilterByRoute(t *testing.T) {
	c, _, _ := newTestSchedule(t)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load error: %v", err)
	}

	name := "Rohri to Sukkur IBA University (Route 01)"
	filtered := c.FilterByRoute(name)
	if len(filtered) == 0 {
		t.Fatalf("no slots for %s", name)
	}
	for _, s := range filtered {
		if s.Route != name {
			t.Fatalf("filter leaked route %s", s.Route)
		}
	}

	// "all" is the identity filter and is idempotent.
	once := c.FilterByRoute(FilterAll)
	twice := c.FilterByRoute(FilterAll)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("FilterByRoute(all) is not idempotent")
	}
	if !reflect.DeepEqual(once, c.Slots()) {
		t.Fatalf("FilterByRoute(all) does not return the full collection")
	}
}

func TestDecrementAvailability(t *testing.T) {
	c, _, _ := newTestSchedule(t)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load error: %v", err)
	}

	route := "City Point to Sukkur IBA University (Route 03)"
	dep := "08:20"

	before := findSlot(t, c, route, dep)
	ok, err := c.DecrementAvailability(route, dep)
	if err != nil || !ok {
		t.Fatalf("decrement failed: ok=%v err=%v", ok, err)
	}
	after := findSlot(t, c, route, dep)
	if after.Available != before.Available-1 {
		t.Fatalf("available went %d -> %d, want exactly -1", before.Available, after.Available)
	}

	// Drain the slot; at zero the decrement is a refused no-op.
	for i := 0; i < after.Available; i++ {
		if ok, _ := c.DecrementAvailability(route, dep); !ok {
			t.Fatalf("decrement %d refused with seats remaining", i)
		}
	}
	if ok, _ := c.DecrementAvailability(route, dep); ok {
		t.Fatal("decrement succeeded at zero availability")
	}
	if got := findSlot(t, c, route, dep); got.Available != 0 {
		t.Fatalf("availability went negative: %d", got.Available)
	}
}

func TestDecrementUnknownSlot(t *testing.T) {
	c, _, _ := newTestSchedule(t)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if ok, _ := c.DecrementAvailability("No Such Route", "00:00"); ok {
		t.Fatal("decrement succeeded for unknown slot")
	}
}

func TestIncrementBoundedByCapacity(t *testing.T) {
	c, _, _ := newTestSchedule(t)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load error: %v", err)
	}

	route := "Rohri to Sukkur IBA University (Route 01)"
	dep := "08:00"
	s := findSlot(t, c, route, dep)
	for s.Available < s.Capacity {
		if ok, _ := c.IncrementAvailability(route, dep); !ok {
			t.Fatal("increment refused below capacity")
		}
		s = findSlot(t, c, route, dep)
	}
	if ok, _ := c.IncrementAvailability(route, dep); ok {
		t.Fatal("increment exceeded capacity")
	}
}

func TestRefreshSignalReloadsFromStore(t *testing.T) {
	c, st, bus := newTestSchedule(t)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load error: %v", err)
	}

	// Mutate the store behind the in-memory copy, then publish refresh.
	slots := c.Slots()
	slots[0].Available = 1
	if err := store.SetJSON(st, store.KeySchedule, slots); err != nil {
		t.Fatalf("store write: %v", err)
	}
	bus.Publish(events.RefreshSchedule)

	if got := c.Slots()[0].Available; got != 1 {
		t.Fatalf("reload did not pick up store change, available=%d", got)
	}
}

func TestRouteNamesAndAvailableTimes(t *testing.T) {
	c, _, _ := newTestSchedule(t)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load error: %v", err)
	}

	names := c.RouteNames()
	seen := map[string]bool{}
	for _, n := range names {
		if seen[n] {
			t.Fatalf("duplicate route name %q", n)
		}
		seen[n] = true
	}

	route := "Rohri to Sukkur IBA University (Route 01)"
	times := c.AvailableTimes(route)
	if len(times) == 0 {
		t.Fatalf("no available times for %s", route)
	}
	for i := 1; i < len(times); i++ {
		if times[i-1].Departure > times[i].Departure {
			t.Fatalf("times not sorted: %s > %s", times[i-1].Departure, times[i].Departure)
		}
	}
	for _, s := range times {
		if s.Available <= 0 {
			t.Fatalf("unavailable slot offered: %+v", s)
		}
	}
}

func findSlot(t *testing.T, c *ScheduleCatalog, route, dep string) (out struct {
	Available int
	Capacity  int
}) {
	t.Helper()
	// Mutations only touch the store; refresh the mirror before reading.
	if err := c.Reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	for _, s := range c.FilterByRoute(route) {
		if s.Departure == dep {
			out.Available = s.Available
			out.Capacity = s.Capacity
			return out
		}
	}
	t.Fatalf("slot %s/%s not found", route, dep)
	return out
}
