// Package store is the persisted key/value layer behind the catalogs.
// Three JSON collections live here, one per key, the same way the
// original widget kept them in browser local storage.
package store

import "encoding/json"

// Persisted store keys.
const (
	KeyRoutes   = "shuttleRoutes"
	KeySchedule = "shuttleSchedule"
	KeyBookings = "shuttleBookings"
)

// Store holds JSON-serialized values by fixed string key. Implementations
// must be safe for concurrent use.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Has(key string) (bool, error)
}

// GetJSON decodes the value under key into dst. The second return is false
// when the key is absent. A present but unparsable value is returned as an
// error so callers can discard and reseed.
func GetJSON(s Store, key string, dst any) (bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return true, err
	}
	return true, nil
}

func SetJSON(s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, raw)
}
