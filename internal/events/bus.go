// Package events carries the three load/refresh signals between the
// catalogs and the booking flow.
package events

import "sync"

// Signal names.
const (
	RoutesLoaded    = "routesLoaded"
	ScheduleLoaded  = "scheduleLoaded"
	RefreshSchedule = "refreshSchedule"
)

// Bus is a minimal fire-and-forget publish/subscribe dispatcher.
// Handlers run synchronously on the publisher's goroutine, in
// subscription order. There is no payload and no unsubscribe; the
// subscriber set is fixed at wiring time.
type Bus struct {
	mu   sync.Mutex
	subs map[string][]func()
}

func NewBus() *Bus {
	return &Bus{subs: map[string][]func(){}}
}

func (b *Bus) Subscribe(signal string, fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[signal] = append(b.subs[signal], fn)
}

// SubscribeOnce runs fn on the first delivery only.
func (b *Bus) SubscribeOnce(signal string, fn func()) {
	var once sync.Once
	b.Subscribe(signal, func() {
		once.Do(fn)
	})
}

func (b *Bus) Publish(signal string) {
	b.mu.Lock()
	handlers := make([]func(), len(b.subs[signal]))
	copy(handlers, b.subs[signal])
	b.mu.Unlock()

	for _, fn := range handlers {
		fn()
	}
}
