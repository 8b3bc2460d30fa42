package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shuttle/internal/catalog"
	intconfig "shuttle/internal/config"
	"shuttle/internal/events"
	router "shuttle/internal/http"
	"shuttle/internal/http/handlers"
	"shuttle/internal/logger"
	"shuttle/internal/seed"
	"shuttle/internal/services"
	"shuttle/internal/store"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
)

func main() {
	env := intconfig.LoadEnv()
	logger.Setup(env.LogFile)
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	st, err := store.OpenSQLite(env.StorePath)
	if err != nil {
		logrus.Fatalf("failed to open store at %s: %v", env.StorePath, err)
	}
	defer st.Close()

	bus := events.NewBus()
	fetch := seed.Fetcher{BaseURL: env.SeedBaseURL, Timeout: env.FetchTimeout}

	routes := catalog.NewRouteCatalog(st, bus, fetch)
	schedule := catalog.NewScheduleCatalog(st, bus, fetch)

	bookings := &services.BookingService{Store: st, Schedule: schedule, Bus: bus}
	// Submissions stay closed until the schedule announces itself loaded,
	// or the fallback delay forces the gate open with whatever the store
	// holds at that moment.
	bookings.EnableWhenReady(env.BookingInitDelay)

	// The catalogs load independently; a fetch that never resolves only
	// delays its own catalog.
	go func() {
		if err := routes.Load(context.Background()); err != nil {
			logrus.Errorf("route catalog load failed: %v", err)
		}
	}()
	go func() {
		if err := schedule.Load(context.Background()); err != nil {
			logrus.Errorf("schedule catalog load failed: %v", err)
		}
	}()

	a := &handlers.API{
		Routes:    routes,
		Schedule:  schedule,
		Bookings:  bookings,
		Tickets:   services.TicketService{Bookings: bookings},
		StorePing: st,
	}
	r := router.NewRouter(env, a)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logrus.Infof("shuttle service listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logrus.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("shutdown failed: %v", err)
	}

	logrus.Info("server stopped cleanly")
}
