package hterra22

import "github.com/polinsar/fsarcamp"

// Time period identifiers: eight flights paired with eight intensive ground
// measurement periods.
const (
	Apr28AM = "APR-28-AM" // Flight 1
	Apr28PM = "APR-28-PM" // Flight 2
	Apr29AM = "APR-29-AM" // Flight 3
	Apr29PM = "APR-29-PM" // Flight 4
	Jun15AM = "JUN-15-AM" // Flight 5
	Jun15PM = "JUN-15-PM" // Flight 6
	Jun16AM = "JUN-16-AM" // Flight 7
	Jun16PM = "JUN-16-PM" // Flight 8
)

// Periods lists the time period identifiers in campaign order.
var Periods = []string{
	Apr28AM, Apr28PM, Apr29AM, Apr29PM,
	Jun15AM, Jun15PM, Jun16AM, Jun16PM,
}

// Region identifiers for the areas with intensive ground measurements.
// Some fields changed crops between April and June and appear under one
// identifier, e.g. the bare soil field of April grew quinoa in June.
const (
	CREA     = "CREA"        // CREA farm, all fields
	CreaBSQu = "CREA-BS-QU"  // bare soil in April, quinoa in June, same field
	CreaDW   = "CREA-DW"     // durum wheat, April
	CreaSF   = "CREA-SF"     // sunflower, June
	CreaMA   = "CREA-MA"     // maize, June
	CAIONE   = "CAIONE"      // Caione farm, all fields
	CaioneDW = "CAIONE-DW"   // two adjacent durum wheat fields, April
	CaioneAA = "CAIONE-AA"   // alfalfa, June
	CaioneMA = "CAIONE-MA"   // two adjacent maize fields, June
)

// Regions lists the region identifiers.
var Regions = []string{
	CREA, CreaBSQu, CreaDW, CreaSF, CreaMA,
	CAIONE, CaioneDW, CaioneAA, CaioneMA,
}

// Extent is a half-open pixel index range on both LUT axes.
type Extent struct {
	NorthingMin, NorthingMax int
	EastingMin, EastingMax   int
}

// cBandExtents are the region extents in C-band LUT pixel coordinates. Each
// region covers all soil moisture measurements of the field plus a border of
// about 50 meters.
var cBandExtents = map[string]Extent{
	CREA:     {3284, 3885, 1355, 2023},
	CreaBSQu: {3671, 3885, 1791, 2023},
	CreaDW:   {3284, 3647, 1355, 1641},
	CreaSF:   {3339, 3565, 1769, 1930},
	CreaMA:   {3338, 3585, 1708, 1895},
	CAIONE:   {6962, 7654, 2080, 2823},
	CaioneDW: {7110, 7654, 2080, 2765},
	CaioneAA: {6976, 7225, 2547, 2823},
	CaioneMA: {6962, 7340, 2149, 2757},
}

// lBandNorthingOffset shifts the C-band extents onto the L-band LUT, which
// covers a very similar area with a small offset.
const lBandNorthingOffset = 60

// RegionLUTExtent returns the extent of a region in LUT pixel coordinates
// for the given band. Only the C and L bands were flown in this campaign.
func RegionLUTExtent(band fsarcamp.Band, region string) (Extent, error) {
	ext, ok := cBandExtents[region]
	if !ok {
		return Extent{}, fsarcamp.NotFoundf("region %q", region)
	}
	switch band {
	case fsarcamp.BandC:
		return ext, nil
	case fsarcamp.BandL:
		ext.NorthingMin += lBandNorthingOffset
		ext.NorthingMax += lBandNorthingOffset
		return ext, nil
	}
	return Extent{}, fsarcamp.NotFoundf("band %q not flown in this campaign", string(band))
}

// RadarExtent is a pixel index range on the SLC axes, azimuth (rows) and
// range (columns).
type RadarExtent struct {
	AzMin, AzMax int
	RgMin, RgMax int
}

// Region extents in radar coordinates per band. Each region covers all soil
// moisture measurements of the field plus a border of about 50 meters.
var lBandRadarExtents = map[string]RadarExtent{
	CREA:     {7833, 9289, 1012, 1811},
	CreaBSQu: {8783, 9289, 1492, 1811},
	CreaDW:   {7833, 8706, 1012, 1378},
	CreaSF:   {7984, 8525, 1466, 1703},
	CreaMA:   {7979, 8570, 1396, 1662},
	CAIONE:   {16661, 18336, 1850, 2820},
	CaioneDW: {17013, 18336, 1850, 2746},
	CaioneAA: {16717, 17316, 2428, 2820},
	CaioneMA: {16661, 17589, 1932, 2736},
}

var cBandRadarExtents = map[string]RadarExtent{
	CREA:     {15414, 18315, 2021, 3619},
	CreaBSQu: {17303, 18315, 2980, 3619},
	CreaDW:   {15414, 17156, 2021, 2752},
	CreaSF:   {15707, 16788, 2928, 3402},
	CreaMA:   {15699, 16879, 2790, 3321},
	CAIONE:   {33045, 36386, 3697, 5638},
	CaioneDW: {33750, 36386, 3697, 5490},
	CaioneAA: {33149, 34345, 4853, 5638},
	CaioneMA: {33045, 34891, 3860, 5468},
}

// RegionRadarExtent returns the extent of a region in radar (SLC pixel)
// coordinates for the given band. Only the C and L bands were flown in this
// campaign.
func RegionRadarExtent(band fsarcamp.Band, region string) (RadarExtent, error) {
	var extents map[string]RadarExtent
	switch band {
	case fsarcamp.BandL:
		extents = lBandRadarExtents
	case fsarcamp.BandC:
		extents = cBandRadarExtents
	default:
		return RadarExtent{}, fsarcamp.NotFoundf("band %q not flown in this campaign", string(band))
	}
	ext, ok := extents[region]
	if !ok {
		return RadarExtent{}, fsarcamp.NotFoundf("region %q", region)
	}
	return ext, nil
}

// SLCShape returns the SLC raster dimensions (rows, cols) of the given band.
func SLCShape(band fsarcamp.Band) (rows, cols int, err error) {
	switch band {
	case fsarcamp.BandL:
		return 27136, 4536, nil
	case fsarcamp.BandC:
		return 54016, 9072, nil
	}
	return 0, 0, fsarcamp.NotFoundf("band %q not flown in this campaign", string(band))
}
