package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListRoutes serves the route-card data.
func (a *API) ListRoutes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"routes": a.Routes.All()})
}

// GetRoute serves one route by its unique name.
func (a *API) GetRoute(c *gin.Context) {
	r, err := a.Routes.GetByName(c.Param("name"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}
