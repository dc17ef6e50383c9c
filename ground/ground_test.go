package ground

import (
	"math"
	"testing"
	"time"

	"github.com/polinsar/fsarcamp/geo"
	"github.com/polinsar/fsarcamp/raster"
)

func day(d string) time.Time {
	ts, err := time.Parse("2006-01-02", d)
	if err != nil {
		panic(err)
	}
	return ts
}

func TestFilterMatch(t *testing.T) {
	p := NewPoint("CORN_C1", "P_1", day("2014-06-12"), 48.69, 12.85)

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"empty matches", Filter{}, true},
		{"field match", Filter{Field: "CORN_C1"}, true},
		{"field mismatch", Filter{Field: "WHEAT_W10"}, false},
		{"inside range", Filter{From: day("2014-06-01"), To: day("2014-06-30")}, true},
		{"before range", Filter{From: day("2014-06-13")}, false},
		{"after range", Filter{To: day("2014-06-11")}, false},
		{"bounds inclusive", Filter{From: day("2014-06-12"), To: day("2014-06-12")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Match(p); got != tt.want {
				t.Errorf("Match = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterMoisture(t *testing.T) {
	points := []MoisturePoint{
		{Point: NewPoint("CORN_C1", "P_1", day("2014-06-12"), 48.69, 12.85)},
		{Point: NewPoint("WHEAT_W10", "P_2", day("2014-06-12"), 48.69, 12.85)},
		{Point: NewPoint("CORN_C1", "P_3", day("2014-07-03"), 48.69, 12.85)},
	}
	got := FilterMoisture(points, Filter{Field: "CORN_C1", To: day("2014-06-30")})
	if len(got) != 1 || got[0].PointID != "P_1" {
		t.Errorf("FilterMoisture = %+v", got)
	}
}

func TestMeanValid(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		vals []float64
		want float64
	}{
		{[]float64{1, 2, 3}, 2},
		{[]float64{1, nan, 3}, 2},
		{[]float64{nan, math.Inf(1)}, nan},
		{nil, nan},
	}
	for _, tt := range tests {
		got := MeanValid(tt.vals)
		if math.IsNaN(tt.want) {
			if !math.IsNaN(got) {
				t.Errorf("MeanValid(%v) = %v, want NaN", tt.vals, got)
			}
		} else if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("MeanValid(%v) = %v, want %v", tt.vals, got, tt.want)
		}
	}
}

// geocodeLUT builds a lookup table whose grid origin sits one cell southwest
// of the given coordinate, so the coordinate lands on cell (1, 1).
func geocodeLUT(lat, lon float64) *geo.SlantRangeLUT {
	az := raster.NewFloat(3, 3)
	rg := raster.NewFloat(3, 3)
	az.Set(1, 1, 120)
	rg.Set(1, 1, 450)
	lut := &geo.SlantRangeLUT{
		Az:                az,
		Rg:                rg,
		PixelSpacingNorth: 1,
		PixelSpacingEast:  1,
		Zone:              33,
	}
	northing, easting := lut.LatLonToNorthEast(lat, lon)
	lut.MinNorthing = northing - 1
	lut.MinEasting = easting - 1
	return lut
}

func TestGeocode(t *testing.T) {
	lut := geocodeLUT(48.694, 12.854)
	p := NewPoint("CORN_C1", "P_1", day("2014-06-12"), 48.694, 12.854)

	p.Geocode(lut)
	if p.Azimuth != 120 || p.Range != 450 {
		t.Errorf("radar coordinates = (%v, %v), want (120, 450)", p.Azimuth, p.Range)
	}
	if math.IsNaN(p.Northing) || math.IsNaN(p.Easting) {
		t.Error("UTM coordinates not set")
	}

	// A point far outside the grid keeps its UTM coordinates but gets NaN
	// radar coordinates.
	far := NewPoint("CORN_C1", "P_2", day("2014-06-12"), 48.8, 12.9)
	far.Geocode(lut)
	if !math.IsNaN(far.Azimuth) || !math.IsNaN(far.Range) {
		t.Errorf("radar coordinates outside grid = (%v, %v), want NaN", far.Azimuth, far.Range)
	}
	if math.IsNaN(far.Northing) || math.IsNaN(far.Easting) {
		t.Error("UTM coordinates should be set even outside the grid")
	}
}

func TestGeocodeMoisture(t *testing.T) {
	lut := geocodeLUT(48.694, 12.854)
	points := []MoisturePoint{
		{Point: NewPoint("CORN_C1", "P_1", day("2014-06-12"), 48.694, 12.854)},
		{Point: NewPoint("CORN_C1", "P_2", day("2014-06-12"), 48.8, 12.9)},
	}
	GeocodeMoisture(points, lut)
	if points[0].Azimuth != 120 {
		t.Errorf("first point azimuth = %v, want 120", points[0].Azimuth)
	}
	if !math.IsNaN(points[1].Azimuth) {
		t.Errorf("second point azimuth = %v, want NaN", points[1].Azimuth)
	}
}
