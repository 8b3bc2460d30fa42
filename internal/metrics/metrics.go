// Package metrics exposes Prometheus counters for the booking flow.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BookingsCreated counts successfully recorded bookings.
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shuttle_bookings_created_total",
		Help: "Total number of confirmed bookings",
	})

	// SeatConflicts counts submissions refused because the targeted slot
	// had no seats left (at the gate or at reserve time).
	SeatConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shuttle_seat_conflicts_total",
		Help: "Total number of submissions refused for an unavailable slot",
	})

	// SeedFetchFailures counts remote seed fetches that fell through to
	// the cache/default rungs.
	SeedFetchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shuttle_seed_fetch_failures_total",
		Help: "Total number of failed remote seed fetches",
	})
)
