// Package hterra22 provides access to the data products of the HTERRA 2022
// F-SAR campaign over the CREA and Caione farms in Apulia: SLC imagery,
// geocoding lookup tables, and the consolidated soil moisture ground
// measurements of the eight flight periods.
package hterra22

import (
	"github.com/polinsar/fsarcamp"
	"github.com/polinsar/fsarcamp/fsar"
)

// ID is the registry identifier of this campaign.
const ID = "hterra22"

const passPrefix = "22hterra"

func init() {
	fsarcamp.Register(ID, func(root string) fsarcamp.Campaign {
		return New(root)
	})
}

// Campaign accesses the HTERRA 2022 data products below a root directory.
type Campaign struct {
	root string
}

// New returns a campaign accessor.
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

// Pass returns the descriptor for one acquisition, e.g. ("22hterra0104", "C").
func (c *Campaign) Pass(name string, band fsarcamp.Band) (fsar.Pass, error) {
	return fsar.NewPass(c.root, name, band)
}
