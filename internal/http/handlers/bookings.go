package handlers

import (
	"net/http"
	"strings"

	"shuttle/internal/services"

	"github.com/gin-gonic/gin"
)

// CreateBooking runs the booking flow for a submitted form.
func (a *API) CreateBooking(c *gin.Context) {
	var req services.BookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	booking, err := a.Bookings.Submit(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "booking confirmed",
		"booking": booking,
	})
}

// ListBookings serves the "my bookings" lookup by student id.
func (a *API) ListBookings(c *gin.Context) {
	studentID := strings.TrimSpace(c.Query("student_id"))
	if studentID == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "student_id query parameter is required", nil)
		return
	}
	bookings, err := a.Bookings.QueryByStudent(studentID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetBooking serves one booking by its generated code.
func (a *API) GetBooking(c *gin.Context) {
	b, err := a.Bookings.GetByID(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GetBookingTicket streams the printable PDF ticket.
func (a *API) GetBookingTicket(c *gin.Context) {
	pdf, filename, err := a.Tickets.GenerateTicket(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
