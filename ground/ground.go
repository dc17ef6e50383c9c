// Package ground defines the in-memory representation of ground truth
// measurements collected alongside the radar acquisitions: soil moisture and
// biomass point samples with position, time, and the optional radar
// coordinates attached by geocoding.
package ground

import (
	"math"
	"time"

	"github.com/polinsar/fsarcamp/geo"
)

// Point is one georeferenced sample location shared by all measurement
// types. Latitude and longitude are WGS84 degrees. The radar coordinates
// stay NaN until Geocode attaches them.
type Point struct {
	Field     string    // field or region identifier, campaign specific
	PointID   string    // sampling point label within the field
	Date      time.Time // acquisition date of the sample
	Latitude  float64
	Longitude float64

	// Filled in by Geocode.
	Northing float64
	Easting  float64
	Azimuth  float64
	Range    float64
}

// MoisturePoint is one volumetric soil moisture measurement. Moisture is the
// mean of the individual samples, all values range from 0 to 1. Samples may
// contain NaN where a probe reading failed.
type MoisturePoint struct {
	Point
	Moisture float64
	Samples  []float64
}

// BiomassPoint is one vegetation sample.
type BiomassPoint struct {
	Point
	Height       float64 // vegetation height, m
	BBCH         float64 // plant development stage, NaN if not recorded
	WetWeight    float64 // fresh sample weight, g
	DryWeight    float64 // dried sample weight, g
	VWC          float64 // gravimetric vegetation water content, 0 to 1
	SoilMoisture float64 // volumetric soil moisture at the point, 0 to 1
}

// Filter narrows a measurement query. Zero values match everything.
type Filter struct {
	Field string    // exact field identifier
	From  time.Time // inclusive lower date bound
	To    time.Time // inclusive upper date bound
}

// Match reports whether a point passes the filter.
func (f Filter) Match(p Point) bool {
	if f.Field != "" && p.Field != f.Field {
		return false
	}
	if !f.From.IsZero() && p.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && p.Date.After(f.To) {
		return false
	}
	return true
}

// FilterMoisture returns the moisture points matching the filter, in input
// order.
func FilterMoisture(points []MoisturePoint, f Filter) []MoisturePoint {
	var out []MoisturePoint
	for _, p := range points {
		if f.Match(p.Point) {
			out = append(out, p)
		}
	}
	return out
}

// FilterBiomass returns the biomass points matching the filter, in input
// order.
func FilterBiomass(points []BiomassPoint, f Filter) []BiomassPoint {
	var out []BiomassPoint
	for _, p := range points {
		if f.Match(p.Point) {
			out = append(out, p)
		}
	}
	return out
}

// Geocode attaches UTM and radar coordinates to the point using the lookup
// table of one pass. Points outside the lookup table grid get NaN azimuth
// and range, matching the lookup table semantics.
func (p *Point) Geocode(lut *geo.SlantRangeLUT) {
	northing, easting := lut.LatLonToNorthEast(p.Latitude, p.Longitude)
	p.Northing = northing
	p.Easting = easting
	p.Azimuth, p.Range = lut.NorthEastToAzRg(northing, easting)
}

// GeocodeMoisture geocodes every point in place.
func GeocodeMoisture(points []MoisturePoint, lut *geo.SlantRangeLUT) {
	for i := range points {
		points[i].Geocode(lut)
	}
}

// GeocodeBiomass geocodes every point in place.
func GeocodeBiomass(points []BiomassPoint, lut *geo.SlantRangeLUT) {
	for i := range points {
		points[i].Geocode(lut)
	}
}

// MeanValid returns the mean of the finite values, NaN when none are finite.
func MeanValid(vals []float64) float64 {
	sum, n := 0.0, 0
	for _, v := range vals {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			sum += v
			n++
		}
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// NewPoint builds a point with radar coordinates unset.
func NewPoint(field, pointID string, date time.Time, lat, lon float64) Point {
	return Point{
		Field:     field,
		PointID:   pointID,
		Date:      date,
		Latitude:  lat,
		Longitude: lon,
		Northing:  math.NaN(),
		Easting:   math.NaN(),
		Azimuth:   math.NaN(),
		Range:     math.NaN(),
	}
}
