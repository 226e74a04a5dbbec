// Package settings provides the external configuration store consulted by
// the resolver between environment overrides and environment fallbacks.
// Stores are typically populated once at application startup from a
// database table or a YAML file; a store that is not wired up at all is a
// normal condition, not an error.
package settings

import "sync"

// Store is a read-only key-value settings source. Lookup reports presence
// separately from the value: a key that is present with an empty value is
// an explicit operator decision and must not fall through to lower-priority
// sources.
type Store interface {
	Lookup(key string) (string, bool)
}

// MapStore is an in-memory Store backed by a plain map.
type MapStore map[string]string

// Lookup implements Store.
func (m MapStore) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

var (
	defaultMu    sync.RWMutex
	defaultStore Store
)

// SetDefault installs the application-wide settings store. It is intended
// to be called once during startup, after the backing source (database,
// file) has been loaded. Passing nil uninstalls the store.
func SetDefault(s Store) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultStore = s
}

// Default returns the application-wide settings store, or nil when none
// has been installed.
func Default() Store {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultStore
}
