// Package cropex25 provides access to the data products of the CROPEX 2025
// F-SAR campaign over the Eitelsried and Puch test sites. The campaign data
// is preliminary, the ground measurements come as per-field CSV files.
package cropex25

import (
	"github.com/polinsar/fsarcamp"
	"github.com/polinsar/fsarcamp/fsar"
)

// ID is the registry identifier of this campaign.
const ID = "cropex25"

const passPrefix = "25cropex"

func init() {
	fsarcamp.Register(ID, func(root string) fsarcamp.Campaign {
		return New(root)
	})
}

// Campaign accesses the CROPEX 2025 data products below a root directory.
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

// Pass returns the descriptor for one acquisition, e.g. ("25cropex0505", "L").
func (c *Campaign) Pass(name string, band fsarcamp.Band) (fsar.Pass, error) {
	return fsar.NewPass(c.root, name, band)
}
