// Package seed acquires the initial Routes and Schedule collections:
// remote fetch first, then the persisted cached copy, then built-in
// defaults. The decision of which rung wins is a pure function so the
// chain tests without a network or a fake clock.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"shuttle/internal/domain"
)

// Source names which rung of the fallback chain produced a collection.
type Source string

const (
	SourceRemote  Source = "remote"
	SourceCache   Source = "cache"
	SourceDefault Source = "default"
)

// ErrNoCache marks an absent or unparsable cached copy.
var ErrNoCache = errors.New("no usable cached copy")

// Resolve picks the winning collection: a successful remote fetch beats
// the cached copy, which beats the built-in defaults.
func Resolve[T any](remote []T, remoteErr error, cached []T, cachedErr error, defaults []T) ([]T, Source) {
	if remoteErr == nil {
		return remote, SourceRemote
	}
	if cachedErr == nil {
		return cached, SourceCache
	}
	return defaults, SourceDefault
}

// Fetcher pulls the seed JSON resources from a base URL. A zero BaseURL
// fails every fetch, which pushes callers down the fallback chain.
type Fetcher struct {
	BaseURL string
	Client  *http.Client
	Timeout time.Duration
}

func (f Fetcher) Routes(ctx context.Context) ([]domain.Route, error) {
	var out []domain.Route
	if err := f.fetch(ctx, "routes.json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (f Fetcher) Schedule(ctx context.Context) ([]domain.ScheduleSlot, error) {
	var out []domain.ScheduleSlot
	if err := f.fetch(ctx, "schedule.json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (f Fetcher) fetch(ctx context.Context, name string, dst any) error {
	if f.BaseURL == "" {
		return errors.New("no seed source configured")
	}

	timeout := f.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.BaseURL+"/"+name, nil)
	if err != nil {
		return err
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("fetch %s: status %d", name, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, dst)
}
