// Package cropex14 provides access to the data products of the CROPEX 2014
// F-SAR campaign over the Wallerfing agricultural test site: SLC imagery,
// geocoding lookup tables, soil moisture and biomass ground measurements,
// and the field map with crop types.
package cropex14

import (
	"github.com/polinsar/fsarcamp"
	"github.com/polinsar/fsarcamp/fsar"
)

// ID is the registry identifier of this campaign.
const ID = "cropex14"

// passPrefix is the campaign part of the pass names, e.g. "14cropex0210".
const passPrefix = "14cropex"

func init() {
	fsarcamp.Register(ID, func(root string) fsarcamp.Campaign {
		return New(root)
	})
}

// Campaign accesses the CROPEX 2014 data products below a root directory.
type Campaign struct {
	root string
}

// New returns a campaign accessor. The root directory is not checked here,
// loaders report ErrNotFound when files are missing.
func New(root string) *Campaign {
	return &Campaign{root: root}
}

// Name returns the campaign identifier.
func (c *Campaign) Name() string { return ID }

// Root returns the campaign root directory.
func (c *Campaign) Root() string { return c.root }

// PassNames lists the names of all passes with data for the given band.
func (c *Campaign) PassNames(band fsarcamp.Band) ([]string, error) {
	return fsar.ListPasses(c.root, passPrefix, band)
}

// Pass returns the descriptor for one acquisition, e.g. ("14cropex0210", "L").
func (c *Campaign) Pass(name string, band fsarcamp.Band) (fsar.Pass, error) {
	return fsar.NewPass(c.root, name, band)
}
