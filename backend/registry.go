package backend

import (
	"slices"
	"sync"

	"github.com/lovepotion/love"
)

// registry holds registered backends.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]Backend)
	// Priority order for backend selection (first available wins).
	// Console backends first; exactly one of them exists per console build.
	backendPriority = []string{NameCitro3D, NameDeko3D, NameGX2, NameWGPU, NameEbiten}
)

// Register registers a backend under its Name.
// If a backend with the same name is already registered, it will be replaced.
func Register(b Backend) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[b.Name()] = b
	love.Logger().Debug("backend: registered", "name", b.Name())
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the registered backend names in priority order,
// followed by any others sorted by name.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for _, name := range backendPriority {
		if _, ok := backends[name]; ok {
			names = append(names, name)
		}
	}
	var rest []string
	for name := range backends {
		if !slices.Contains(backendPriority, name) {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)
	return append(names, rest...)
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get returns a backend by name.
func Get(name string) (Backend, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	b, ok := backends[name]
	return b, ok
}

// Default returns the best available backend based on priority.
// Returns ErrBackendNotAvailable if no backends are registered.
func Default() (Backend, error) {
	names := Available()
	if len(names) == 0 {
		return nil, ErrBackendNotAvailable
	}
	b, _ := Get(names[0])
	return b, nil
}

// MustDefault returns the default backend or panics.
func MustDefault() Backend {
	b, err := Default()
	if err != nil {
		panic(err)
	}
	return b
}
