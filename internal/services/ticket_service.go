package services

import (
	"bytes"
	"fmt"
	"strings"

	"shuttle/internal/domain"
	"shuttle/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// TicketService renders a printable PDF for a confirmed booking.
type TicketService struct {
	Bookings *BookingService

	// Loader overrides the booking lookup, for tests.
	Loader func(id string) (domain.Booking, error)
}

// GenerateTicket returns the PDF bytes and a download filename.
func (s TicketService) GenerateTicket(bookingID string) ([]byte, string, error) {
	b, err := s.load(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent("", "ticket", "generate", "booking_id="+bookingID)
	return buildTicketPDF(b)
}

func (s TicketService) load(id string) (domain.Booking, error) {
	if s.Loader != nil {
		return s.Loader(id)
	}
	return s.Bookings.GetByID(id)
}

func buildTicketPDF(b domain.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Shuttle Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "SHUTTLE TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger    : %s", safe(b.Name, "-")),
		fmt.Sprintf("Student ID   : %s", safe(b.StudentID, "-")),
		fmt.Sprintf("Route        : %s", safe(b.Route, "-")),
		fmt.Sprintf("Date         : %s", safe(b.Date, "-")),
		fmt.Sprintf("Departure    : %s", safe(b.Time, "-")),
		fmt.Sprintf("Status       : %s", safe(b.Status, "-")),
		fmt.Sprintf("Booking Code : %s", safe(b.ID, "-")),
		fmt.Sprintf("Booked At    : %s", safe(b.CreatedAt, "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This ticket is valid for one seat on the departure above. Please show it when boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "render ticket", Err: err}
	}

	filename := fmt.Sprintf("TICKET_%s.pdf", safeFilenamePart(b.ID))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(v string) string {
	var sb strings.Builder
	for _, r := range v {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	return sb.String()
}
