package handlers

import (
	"net/http"
	"strings"

	"shuttle/internal/catalog"

	"github.com/gin-gonic/gin"
)

// ListSchedule serves the schedule table, optionally filtered by route.
// ?route=all (or no filter at all) returns the full collection.
func (a *API) ListSchedule(c *gin.Context) {
	filter := strings.TrimSpace(c.Query("route"))
	if filter == "" {
		filter = catalog.FilterAll
	}
	c.JSON(http.StatusOK, gin.H{
		"filter":   filter,
		"schedule": a.Schedule.FilterByRoute(filter),
	})
}

// ScheduleRouteNames serves the distinct route names present in the
// schedule, for the booking form's route selector.
func (a *API) ScheduleRouteNames(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"routes": a.Schedule.RouteNames()})
}

// AvailableTimes serves the bookable departures for one route, sorted
// ascending, for the booking form's time selector.
func (a *API) AvailableTimes(c *gin.Context) {
	route := strings.TrimSpace(c.Query("route"))
	if route == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "route query parameter is required", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"route": route,
		"times": a.Schedule.AvailableTimes(route),
	})
}
