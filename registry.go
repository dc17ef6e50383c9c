// Package fsarcamp provides access to radar data products and ground
// measurements of named F-SAR airborne campaigns.
//
// Each campaign package (cropex14, hterra22, cropex25) registers itself here
// on import, so a blank import is enough to make a campaign available through
// Open:
//
//	import _ "github.com/polinsar/fsarcamp/cropex14"
//
//	campaign, err := fsarcamp.Open("cropex14", root)
package fsarcamp

import (
	"os"
	"sort"
	"sync"
)

// Campaign is the registry view of one field campaign. The campaign packages
// return richer concrete types; this interface covers the operations shared
// by all of them.
type Campaign interface {
	// Name returns the campaign identifier, e.g. "cropex14".
	Name() string

	// Root returns the campaign root data directory.
	Root() string

	// PassNames lists the names of all passes with data for the given band.
	// The result is deduplicated and sorted.
	PassNames(band Band) ([]string, error)
}

// Factory constructs a campaign accessor over a root data directory.
type Factory func(root string) Campaign

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register makes a campaign constructor available to Open. It is intended to
// be called from the init function of a campaign package. Registering the
// same identifier twice panics, matching database/sql driver semantics.
func Register(id string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if f == nil {
		panic("fsarcamp: Register factory is nil")
	}
	if _, dup := registry[id]; dup {
		panic("fsarcamp: Register called twice for campaign " + id)
	}
	registry[id] = f
}

// Campaigns returns the sorted identifiers of all registered campaigns.
func Campaigns() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Open constructs the campaign accessor for the given identifier over the
// given root directory. It fails with ErrNotFound if the identifier is not
// registered or the root directory does not exist.
func Open(id, root string) (Campaign, error) {
	registryMu.RLock()
	factory, ok := registry[id]
	registryMu.RUnlock()
	if !ok {
		return nil, NotFoundf("campaign %q", id)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, PathError(root, err)
	}
	if !info.IsDir() {
		return nil, NotFoundf("campaign root %s is not a directory", root)
	}
	return factory(root), nil
}
