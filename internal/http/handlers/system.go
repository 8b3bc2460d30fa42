package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"booking_ready": a.Bookings.Ready(),
	})
}

func (a *API) StoreCheck(c *gin.Context) {
	if a.StorePing == nil {
		c.JSON(http.StatusOK, gin.H{"message": "store has no liveness probe"})
		return
	}
	if err := a.StorePing.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store unreachable: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "store connection OK"})
}
