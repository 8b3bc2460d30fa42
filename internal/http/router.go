package api

import (
	stdhttp "net/http"

	intconfig "shuttle/internal/config"
	h "shuttle/internal/http/handlers"
	"shuttle/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	logrus "github.com/sirupsen/logrus"
)

func NewRouter(env intconfig.Env, a *h.API) *gin.Engine {
	_ = env

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		logrus.Warnf("failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", a.Health)
		api.GET("/store-check", a.StoreCheck)

		api.GET("/routes", a.ListRoutes)
		api.GET("/routes/:name", a.GetRoute)

		schedule := api.Group("/schedule")
		schedule.GET("", a.ListSchedule)
		schedule.GET("/routes", a.ScheduleRouteNames)
		schedule.GET("/times", a.AvailableTimes)

		bookings := api.Group("/bookings")
		bookings.POST("", a.CreateBooking)
		bookings.GET("", a.ListBookings)
		bookings.GET("/:id", a.GetBooking)
		bookings.GET("/:id/ticket", a.GetBookingTicket)
	}

	return r
}
