package fsar

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/polinsar/fsarcamp"
)

var (
	flightDirRe = regexp.MustCompile(`^FL(\d\d)$`)
	passDirRe   = regexp.MustCompile(`^PS(\d\d)$`)
)

// ListPasses walks the FLxx/PSxx folders under root and returns the sorted
// pass names found for the given band. The prefix is the campaign part of
// the pass name, e.g. "14cropex". Flight/pass folders without the requested
// T01<band> folder are skipped. A missing or unreadable root yields a
// not-found error.
func ListPasses(root, prefix string, band fsarcamp.Band) ([]string, error) {
	if !band.IsValid() {
		return nil, fmt.Errorf("invalid band %q", string(band))
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fsarcamp.PathError(root, err)
	}
	seen := make(map[string]bool)
	for _, fl := range entries {
		if !fl.IsDir() {
			continue
		}
		fm := flightDirRe.FindStringSubmatch(fl.Name())
		if fm == nil {
			continue
		}
		passDirs, err := os.ReadDir(filepath.Join(root, fl.Name()))
		if err != nil {
			continue
		}
		for _, ps := range passDirs {
			if !ps.IsDir() {
				continue
			}
			pm := passDirRe.FindStringSubmatch(ps.Name())
			if pm == nil {
				continue
			}
			bandDir := filepath.Join(root, fl.Name(), ps.Name(), "T01"+string(band))
			if info, err := os.Stat(bandDir); err != nil || !info.IsDir() {
				continue
			}
			seen[prefix+fm[1]+pm[1]] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
