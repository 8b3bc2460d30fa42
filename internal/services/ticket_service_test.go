package services

import (
	"strings"
	"testing"

	"shuttle/internal/domain"
)

func TestTicketServiceGenerate(t *testing.T) {
	loader := func(id string) (domain.Booking, error) {
		return domain.Booking{
			ID:        id,
			Name:      "Tester",
			StudentID: "123-45-6789",
			Route:     "City Point to Sukkur IBA University (Route 03)",
			Date:      "2026-08-30",
			Time:      "08:20",
			Status:    domain.BookingStatusConfirmed,
			CreatedAt: "2026-08-30T07:55:00Z",
		}, nil
	}

	svc := TicketService{Loader: loader}

	pdf, filename, err := svc.GenerateTicket("BKTEST1")
	if err != nil {
		t.Fatalf("GenerateTicket returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateTicket returned empty data")
	}
	if !strings.HasSuffix(filename, ".pdf") || !strings.Contains(filename, "BKTEST1") {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestTicketServiceUnknownBooking(t *testing.T) {
	svc := TicketService{Loader: func(id string) (domain.Booking, error) {
		return domain.Booking{}, domain.NotFoundError{Resource: "booking"}
	}}

	if _, _, err := svc.GenerateTicket("nope"); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
