// Package geo provides the geocoding lookup tables (LUT) of F-SAR passes and
// the coordinate conversions needed to move between geographic coordinates
// and SLC pixel indices.
package geo

import "math"

// WGS84 ellipsoid parameters.
const (
	wgs84A           = 6378137.0         // semi-major axis in meters
	wgs84F           = 1 / 298.257223563 // flattening
	utmK0            = 0.9996            // UTM scale factor on the central meridian
	utmFalseEasting  = 500000.0          // meters
	utmFalseNorthing = 10000000.0        // meters, southern hemisphere only
)

// UTMZone returns the UTM zone number covering the given longitude.
func UTMZone(lon float64) int {
	zone := int(math.Floor((lon+180)/6)) + 1
	if zone < 1 {
		zone = 1
	}
	if zone > 60 {
		zone = 60
	}
	return zone
}

// LatLonToUTM projects WGS84 latitude/longitude (degrees) into the given UTM
// zone, returning northing and easting in meters. The standard series
// expansion is used; accuracy is better than a centimeter within the zone.
func LatLonToUTM(lat, lon float64, zone int, south bool) (northing, easting float64) {
	tm := utmProjection(zone, south)
	return tm.forward(lat, lon)
}

// UTMToLatLon inverts LatLonToUTM for the given zone.
func UTMToLatLon(northing, easting float64, zone int, south bool) (lat, lon float64) {
	tm := utmProjection(zone, south)
	return tm.inverse(northing, easting)
}

func utmProjection(zone int, south bool) transverseMercator {
	tm := transverseMercator{
		ell:          wgs84Ellipsoid,
		k0:           utmK0,
		lon0:         float64((zone-1)*6 - 180 + 3),
		falseEasting: utmFalseEasting,
	}
	if south {
		tm.falseNorthing = utmFalseNorthing
	}
	return tm
}
