package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	// StorePath is the SQLite file backing the persisted store.
	// ":memory:" keeps everything in-process, useful for local runs.
	StorePath string

	// SeedBaseURL is where routes.json / schedule.json are fetched from.
	// Empty disables the remote attempt and goes straight to the
	// cache/default fallback.
	SeedBaseURL string

	FetchTimeout time.Duration

	// BookingInitDelay caps how long booking submissions stay disabled
	// waiting for the schedule to finish loading.
	BookingInitDelay time.Duration

	LogFile string
}

func LoadEnv() Env {
	// Best effort; real env vars win over .env entries.
	_ = godotenv.Load()

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	storePath := strings.TrimSpace(os.Getenv("STORE_PATH"))
	if storePath == "" {
		storePath = "shuttle.db"
	}

	logFile := strings.TrimSpace(os.Getenv("LOG_FILE"))
	if logFile == "" {
		logFile = "./logs/shuttle.log"
	}

	return Env{
		AppAddr:          appAddr,
		GinMode:          strings.TrimSpace(os.Getenv("GIN_MODE")),
		StorePath:        storePath,
		SeedBaseURL:      strings.TrimSpace(os.Getenv("SEED_BASE_URL")),
		FetchTimeout:     durationEnv("SEED_FETCH_TIMEOUT", 5*time.Second),
		BookingInitDelay: durationEnv("BOOKING_INIT_DELAY", 200*time.Millisecond),
		LogFile:          logFile,
	}
}

func durationEnv(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if ms, err := strconv.Atoi(raw); err == nil && ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return def
}
