package domain

// Route is one shuttle route. Name is unique and acts as the foreign key
// used by schedule slots and bookings.
type Route struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Stops       []string `json:"stops"`
	Duration    string   `json:"duration"`
	Frequency   string   `json:"frequency"`
	Fare        string   `json:"fare"`
	Note        string   `json:"note,omitempty"`
}

// ScheduleSlot is one scheduled departure. (Route, Departure) is the
// natural key; Available is the only field mutated after load and must
// stay within [0, Capacity].
type ScheduleSlot struct {
	ID        int    `json:"id"`
	Route     string `json:"route"`
	Shift     string `json:"shift,omitempty"`
	Departure string `json:"departure"` // HH:MM, 24h
	Arrival   string `json:"arrival,omitempty"`
	Status    string `json:"status"` // on-time, delayed, cancelled, ...
	Capacity  int    `json:"capacity"`
	Available int    `json:"available"`
}

// Booking statuses. Only confirmed is ever produced.
const BookingStatusConfirmed = "confirmed"

// Booking is one reserved seat. Append-only: never mutated or deleted
// after creation. Date is always the creation date; Time must equal the
// departure of some slot on Route at booking time.
type Booking struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StudentID string `json:"studentId"` // XXX-XX-XXXX, cosmetic grouping
	Route     string `json:"route"`
	Date      string `json:"date"` // YYYY-MM-DD
	Time      string `json:"time"` // HH:MM
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}
