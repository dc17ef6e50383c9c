package geo

import (
	"math"
	"testing"
)

func TestUTMZone(t *testing.T) {
	tests := []struct {
		lon  float64
		zone int
	}{
		{-180, 1},
		{-0.1, 30},
		{0, 31},
		{12.85, 33},
		{179.9, 60},
	}
	for _, tt := range tests {
		if got := UTMZone(tt.lon); got != tt.zone {
			t.Errorf("UTMZone(%v) = %d, want %d", tt.lon, got, tt.zone)
		}
	}
}

func TestUTMCentralMeridian(t *testing.T) {
	// On the central meridian of the zone the easting is exactly the
	// false easting.
	northing, easting := LatLonToUTM(45, 15, 33, false)
	if math.Abs(easting-500000) > 1e-6 {
		t.Errorf("easting on central meridian = %v, want 500000", easting)
	}
	if northing <= 0 || northing > 6e6 {
		t.Errorf("implausible northing %v", northing)
	}
}

func TestUTMSouthernHemisphere(t *testing.T) {
	northing, _ := LatLonToUTM(-33.9, 18.4, 34, true)
	if northing <= 0 || northing >= 10000000 {
		t.Errorf("southern northing = %v, want within (0, 1e7)", northing)
	}
}

func TestUTMRoundtrip(t *testing.T) {
	points := []struct {
		lat, lon float64
		zone     int
		south    bool
	}{
		{48.694, 12.854, 33, false},
		{41.45, 15.49, 33, false},
		{48.25, 11.10, 32, false},
		{-33.9, 18.4, 34, true},
	}
	for _, p := range points {
		northing, easting := LatLonToUTM(p.lat, p.lon, p.zone, p.south)
		lat, lon := UTMToLatLon(northing, easting, p.zone, p.south)
		if math.Abs(lat-p.lat) > 1e-7 || math.Abs(lon-p.lon) > 1e-7 {
			t.Errorf("roundtrip (%v, %v) = (%v, %v)", p.lat, p.lon, lat, lon)
		}
	}
}

func TestGKZone4Roundtrip(t *testing.T) {
	points := []struct{ lat, lon float64 }{
		{48.694, 12.854}, // Wallerfing
		{48.5, 12.0},     // central meridian of zone 4
		{49.1, 13.4},
	}
	for _, p := range points {
		easting, northing := WGS84ToGKZone4(p.lat, p.lon)
		lat, lon := GKZone4ToWGS84(easting, northing)
		if math.Abs(lat-p.lat) > 1e-6 || math.Abs(lon-p.lon) > 1e-6 {
			t.Errorf("roundtrip (%v, %v) = (%v, %v)", p.lat, p.lon, lat, lon)
		}
	}
}

func TestGKZone4Plausible(t *testing.T) {
	easting, northing := WGS84ToGKZone4(48.694, 12.854)
	if easting < 4.5e6 || easting > 4.6e6 {
		t.Errorf("easting = %v, want within zone 4 band", easting)
	}
	if northing < 5.3e6 || northing > 5.5e6 {
		t.Errorf("northing = %v, want within Bavaria", northing)
	}
}
