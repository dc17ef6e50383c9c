// Package fsar implements the directory and file naming conventions shared
// by all F-SAR campaign trees: FL<flight>/PS<pass>/T01<band> band folders
// with RGI (radar geometry image) and GTC (geocoded/terrain corrected)
// products below them. The campaign packages build their accessors on top of
// this package.
package fsar

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/polinsar/fsarcamp"
	"github.com/polinsar/fsarcamp/geo"
	"github.com/polinsar/fsarcamp/raster"
	"github.com/polinsar/fsarcamp/rat"
)

// passNameRe matches pass names like "14cropex0210": two-digit year,
// campaign short name, two-digit flight number, two-digit pass number.
var passNameRe = regexp.MustCompile(`^(\d\d)([a-z]+)(\d\d)(\d\d)$`)

// Polarizations accepted by the SLC loader.
var Polarizations = []string{"hh", "hv", "vh", "vv"}

// Pass identifies one radar acquisition of a campaign: a pass name, a band,
// and the campaign root it resolves against. A Pass is immutable once
// constructed.
type Pass struct {
	root   string
	name   string
	band   fsarcamp.Band
	flight int
	track  int
}

// NewPass validates the pass name and band and builds the descriptor.
func NewPass(root, name string, band fsarcamp.Band) (Pass, error) {
	m := passNameRe.FindStringSubmatch(name)
	if m == nil {
		return Pass{}, fmt.Errorf("invalid pass name %q", name)
	}
	if !band.IsValid() {
		return Pass{}, fmt.Errorf("invalid band %q", string(band))
	}
	flight, _ := strconv.Atoi(m[3])
	track, _ := strconv.Atoi(m[4])
	return Pass{root: root, name: name, band: band, flight: flight, track: track}, nil
}

// Name returns the pass name, e.g. "14cropex0210".
func (p Pass) Name() string { return p.name }

// Band returns the frequency band of this acquisition.
func (p Pass) Band() fsarcamp.Band { return p.band }

// Flight returns the flight number encoded in the pass name.
func (p Pass) Flight() int { return p.flight }

// Track returns the pass number within the flight.
func (p Pass) Track() int { return p.track }

// BandFolder returns the T01<band> folder of this pass.
func (p Pass) BandFolder() string {
	return filepath.Join(p.root,
		fmt.Sprintf("FL%02d", p.flight),
		fmt.Sprintf("PS%02d", p.track),
		fmt.Sprintf("T01%s", p.band))
}

// RGIFolder returns the radar geometry image folder.
func (p Pass) RGIFolder() string { return filepath.Join(p.BandFolder(), "RGI") }

// GTCFolder returns the geocoded/terrain corrected product folder.
func (p Pass) GTCFolder() string { return filepath.Join(p.BandFolder(), "GTC") }

// INFFolder returns the interferometric product folder.
func (p Pass) INFFolder() string { return filepath.Join(p.BandFolder(), "INF") }

// SLCPath returns the SLC file location for a polarization channel.
func (p Pass) SLCPath(pol string) string {
	return filepath.Join(p.RGIFolder(), "RGI-SR",
		fmt.Sprintf("slc_%s_%s%s_t01.rat", p.name, p.band, pol))
}

// IncidencePath returns the local incidence angle raster location.
func (p Pass) IncidencePath() string {
	return filepath.Join(p.RGIFolder(), "RGI-SR",
		fmt.Sprintf("incidence_%s_%s_t01.rat", p.name, p.band))
}

// RDPPath returns the processing parameter file location.
func (p Pass) RDPPath() string {
	return filepath.Join(p.RGIFolder(), "RGI-RDP",
		fmt.Sprintf("pp_%s_%s_t01.xml", p.name, p.band))
}

// GTCLUTPaths returns the azimuth LUT, range LUT and header file locations.
func (p Pass) GTCLUTPaths() (azPath, rgPath, hdrPath string) {
	dir := filepath.Join(p.GTCFolder(), "GTC-LUT")
	azPath = filepath.Join(dir, fmt.Sprintf("sr2geo_az_%s_%s_t01.rat", p.name, p.band))
	rgPath = filepath.Join(dir, fmt.Sprintf("sr2geo_rg_%s_%s_t01.rat", p.name, p.band))
	hdrPath = filepath.Join(dir, fmt.Sprintf("sr2geo_%s_%s_t01.hdr", p.name, p.band))
	return azPath, rgPath, hdrPath
}

// SLC loads the single look complex image of a polarization channel
// ("hh", "hv", "vh", "vv").
func (p Pass) SLC(pol string) (*raster.Complex, error) {
	pol = strings.ToLower(pol)
	valid := false
	for _, known := range Polarizations {
		if pol == known {
			valid = true
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("invalid polarization %q (valid: %s)", pol, strings.Join(Polarizations, ", "))
	}
	return rat.ReadComplex(p.SLCPath(pol))
}

// Incidence loads the local incidence angle raster in radians.
func (p Pass) Incidence() (*raster.Float, error) {
	return rat.ReadFloat(p.IncidencePath())
}

// GTCLUT loads the geocoding lookup table of this pass.
func (p Pass) GTCLUT() (*geo.SlantRangeLUT, error) {
	return geo.LoadSlantRangeLUT(p.GTCLUTPaths())
}
