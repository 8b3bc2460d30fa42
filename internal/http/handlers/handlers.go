// Package handlers holds the gin handlers for the shuttle API.
package handlers

import (
	"shuttle/internal/catalog"
	"shuttle/internal/services"
)

// Pinger is what the store health probe needs from the persisted store.
type Pinger interface {
	Ping() error
}

// API bundles the components the handlers serve.
type API struct {
	Routes   *catalog.RouteCatalog
	Schedule *catalog.ScheduleCatalog
	Bookings *services.BookingService
	Tickets  services.TicketService

	// StorePing is nil when the store has no liveness probe (e.g. the
	// in-memory store in tests).
	StorePing Pinger
}
