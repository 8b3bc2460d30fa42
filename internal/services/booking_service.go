package services

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"shuttle/internal/catalog"
	"shuttle/internal/domain"
	"shuttle/internal/events"
	"shuttle/internal/metrics"
	"shuttle/internal/store"
	"shuttle/internal/utils"
)

// BookingRequest carries the booking form fields. The date is implicit:
// a booking is always for the day it is created.
type BookingRequest struct {
	Name      string `json:"name"`
	StudentID string `json:"studentId"`
	Route     string `json:"route"`
	Time      string `json:"time"`
}

// BookingService runs the availability-consistent booking flow: validate,
// reserve the seat, append the booking, announce the refresh. The seat is
// reserved BEFORE the booking is persisted, so a recorded booking without
// its seat cannot occur; a failed persist releases the seat again.
type BookingService struct {
	Store    store.Store
	Schedule *catalog.ScheduleCatalog
	Bus      *events.Bus

	// Now is swappable for tests; nil means time.Now.
	Now func() time.Time

	mu    sync.Mutex // guards the bookings read-append-write round-trip
	ready atomic.Bool
}

func (s *BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// EnableWhenReady arms the deferred-initialization gate: submissions open
// when the schedule announces itself loaded, or after maxWait elapses,
// whichever comes first. Until then Submit refuses without touching state.
func (s *BookingService) EnableWhenReady(maxWait time.Duration) {
	s.Bus.SubscribeOnce(events.ScheduleLoaded, s.enable)
	time.AfterFunc(maxWait, s.enable)
}

func (s *BookingService) enable() {
	if s.ready.CompareAndSwap(false, true) {
		utils.LogEvent("", "booking", "enabled", "submissions open")
	}
}

// Ready reports whether submissions are accepted yet.
func (s *BookingService) Ready() bool {
	return s.ready.Load()
}

// Submit validates the request against live availability, reserves the
// seat, and records the booking.
func (s *BookingService) Submit(req BookingRequest) (domain.Booking, error) {
	var none domain.Booking

	if !s.ready.Load() {
		return none, domain.UnavailableError{Msg: "booking is not ready yet, try again shortly"}
	}

	name := strings.TrimSpace(req.Name)
	studentID := utils.NormalizeStudentID(req.StudentID)
	route := strings.TrimSpace(req.Route)
	depTime := strings.TrimSpace(req.Time)

	switch {
	case name == "":
		return none, domain.ValidationError{Field: "name", Msg: "required"}
	case studentID == "":
		return none, domain.ValidationError{Field: "studentId", Msg: "required"}
	case route == "":
		return none, domain.ValidationError{Field: "route", Msg: "required"}
	case depTime == "":
		return none, domain.ValidationError{Field: "time", Msg: "required"}
	}

	ok, err := s.Schedule.CheckAvailability(route, depTime)
	if err != nil {
		return none, err
	}
	if !ok {
		metrics.SeatConflicts.Inc()
		return none, domain.ConflictError{Resource: "slot", Msg: "this time slot is no longer available"}
	}

	now := s.now()
	booking := domain.Booking{
		ID:        s.generateID(now),
		Name:      name,
		StudentID: studentID,
		Route:     route,
		Date:      now.Format("2006-01-02"),
		Time:      depTime,
		Status:    domain.BookingStatusConfirmed,
		CreatedAt: now.Format(time.RFC3339),
	}

	// Reserve first. The slot can empty between the gate above and this
	// point; treating that as a conflict keeps seat counts and bookings
	// consistent instead of silently recording an unseated booking.
	reserved, err := s.Schedule.DecrementAvailability(route, depTime)
	if err != nil {
		return none, err
	}
	if !reserved {
		metrics.SeatConflicts.Inc()
		utils.LogEvent("", "booking", "reserve_conflict",
			fmt.Sprintf("slot emptied before reserve route=%q time=%s", route, depTime))
		return none, domain.ConflictError{Resource: "slot", Msg: "this time slot is no longer available"}
	}

	if err := s.append(booking); err != nil {
		// Give the seat back; the booking was never recorded.
		if released, relErr := s.Schedule.IncrementAvailability(route, depTime); !released || relErr != nil {
			utils.LogEvent("", "booking", "rollback_failed",
				fmt.Sprintf("seat not released route=%q time=%s err=%v", route, depTime, relErr))
		}
		return none, domain.InternalError{Msg: "persist booking", Err: err}
	}

	s.Bus.Publish(events.RefreshSchedule)
	metrics.BookingsCreated.Inc()
	utils.LogEvent("", "booking", "created",
		fmt.Sprintf("id=%s route=%q time=%s", booking.ID, route, depTime))
	return booking, nil
}

func (s *BookingService) append(b domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.readStored()
	if err != nil {
		return err
	}
	bookings = append(bookings, b)
	return store.SetJSON(s.Store, store.KeyBookings, bookings)
}

// readStored returns the persisted bookings; an absent key is an empty
// collection, an unparsable one is an error (the collection is append-only
// and must never be silently reset).
func (s *BookingService) readStored() ([]domain.Booking, error) {
	var bookings []domain.Booking
	if _, err := store.GetJSON(s.Store, store.KeyBookings, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// QueryByStudent returns every booking with exactly this student id, in
// insertion order.
func (s *BookingService) QueryByStudent(studentID string) ([]domain.Booking, error) {
	s.mu.Lock()
	bookings, err := s.readStored()
	s.mu.Unlock()
	if err != nil {
		return nil, domain.InternalError{Msg: "read bookings", Err: err}
	}

	out := []domain.Booking{}
	for _, b := range bookings {
		if b.StudentID == studentID {
			out = append(out, b)
		}
	}
	return out, nil
}

// GetByID finds one booking by its generated identifier.
func (s *BookingService) GetByID(id string) (domain.Booking, error) {
	s.mu.Lock()
	bookings, err := s.readStored()
	s.mu.Unlock()
	if err != nil {
		return domain.Booking{}, domain.InternalError{Msg: "read bookings", Err: err}
	}
	for _, b := range bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.Booking{}, domain.NotFoundError{Resource: "booking"}
}

// generateID builds "BK" + base36 millisecond timestamp + base36 random
// suffix. Uniqueness is probabilistic; collisions are treated as
// negligible, not impossible.
func (s *BookingService) generateID(now time.Time) string {
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	suffix := strings.ToUpper(strconv.FormatInt(rand.Int63n(36*36*36*36*36), 36))
	for len(suffix) < 5 {
		suffix = "0" + suffix
	}
	return "BK" + ts + suffix
}
