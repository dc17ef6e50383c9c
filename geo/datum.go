package geo

import "math"

// ellipsoid holds the semi-major axis (meters) and flattening of a
// reference ellipsoid.
type ellipsoid struct {
	a, f float64
}

var (
	wgs84Ellipsoid  = ellipsoid{a: wgs84A, f: wgs84F}
	besselEllipsoid = ellipsoid{a: 6377397.155, f: 1 / 299.1528128}
)

// transverseMercator is a parameterized transverse Mercator projection.
// UTM and the German Gauss-Krüger grids are instances of it.
type transverseMercator struct {
	ell           ellipsoid
	k0            float64 // scale on the central meridian
	lon0          float64 // central meridian, degrees
	falseEasting  float64
	falseNorthing float64
}

// gkZone4 is the 3-degree Gauss-Krüger zone 4 grid (central meridian 12E)
// on the Bessel 1841 ellipsoid, the projection of the Bavarian cadastral
// shapefiles.
var gkZone4 = transverseMercator{
	ell:          besselEllipsoid,
	k0:           1.0,
	lon0:         12.0,
	falseEasting: 4500000.0,
}

// forward projects latitude/longitude (degrees, on the projection ellipsoid)
// to northing/easting meters using the standard series expansion.
func (tm transverseMercator) forward(lat, lon float64) (northing, easting float64) {
	phi := lat * math.Pi / 180
	lambda0 := tm.lon0 * math.Pi / 180
	lambda := lon * math.Pi / 180

	e2 := tm.ell.f * (2 - tm.ell.f)
	ep2 := e2 / (1 - e2)

	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)
	nu := tm.ell.a / math.Sqrt(1-e2*sinPhi*sinPhi)
	t := math.Tan(phi) * math.Tan(phi)
	c := ep2 * cosPhi * cosPhi
	a := (lambda - lambda0) * cosPhi

	// Meridian arc length from the equator.
	m := tm.ell.a * ((1-e2/4-3*e2*e2/64-5*e2*e2*e2/256)*phi -
		(3*e2/8+3*e2*e2/32+45*e2*e2*e2/1024)*math.Sin(2*phi) +
		(15*e2*e2/256+45*e2*e2*e2/1024)*math.Sin(4*phi) -
		(35*e2*e2*e2/3072)*math.Sin(6*phi))

	easting = tm.falseEasting + tm.k0*nu*(a+
		(1-t+c)*a*a*a/6+
		(5-18*t+t*t+72*c-58*ep2)*a*a*a*a*a/120)

	northing = tm.falseNorthing + tm.k0*(m+nu*math.Tan(phi)*(a*a/2+
		(5-t+9*c+4*c*c)*a*a*a*a/24+
		(61-58*t+t*t+600*c-330*ep2)*a*a*a*a*a*a/720))
	return northing, easting
}

// inverse recovers latitude/longitude from projected coordinates by Newton
// iteration on the forward projection. Converges to sub-millimeter within a
// few steps anywhere inside the zone.
func (tm transverseMercator) inverse(northing, easting float64) (lat, lon float64) {
	lat = northing / 111132.95
	lon = tm.lon0
	if c := math.Cos(lat * math.Pi / 180); c > 0.01 {
		lon += (easting - tm.falseEasting) / (111319.49 * c)
	}
	const delta = 1e-7
	for i := 0; i < 12; i++ {
		n0, e0 := tm.forward(lat, lon)
		dn, de := northing-n0, easting-e0
		if math.Abs(dn) < 1e-4 && math.Abs(de) < 1e-4 {
			break
		}
		nLat, eLat := tm.forward(lat+delta, lon)
		nLon, eLon := tm.forward(lat, lon+delta)
		j11, j12 := (nLat-n0)/delta, (nLon-n0)/delta
		j21, j22 := (eLat-e0)/delta, (eLon-e0)/delta
		det := j11*j22 - j12*j21
		if det == 0 {
			break
		}
		lat += (dn*j22 - de*j12) / det
		lon += (de*j11 - dn*j21) / det
	}
	return lat, lon
}

// dhdnShift is the 3-parameter Helmert translation from the German DHDN
// datum (Bessel 1841) to WGS84, ECEF meters. Accuracy is a few meters,
// sufficient for assigning measurement points to field polygons.
var dhdnShift = [3]float64{598.1, 73.7, 418.2}

// geodeticToECEF converts ellipsoidal latitude/longitude (degrees, height
// zero) to earth-centered cartesian coordinates.
func geodeticToECEF(ell ellipsoid, lat, lon float64) (x, y, z float64) {
	phi := lat * math.Pi / 180
	lambda := lon * math.Pi / 180
	e2 := ell.f * (2 - ell.f)
	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)
	n := ell.a / math.Sqrt(1-e2*sinPhi*sinPhi)
	x = n * cosPhi * math.Cos(lambda)
	y = n * cosPhi * math.Sin(lambda)
	z = n * (1 - e2) * sinPhi
	return x, y, z
}

// ecefToGeodetic converts earth-centered cartesian coordinates back to
// ellipsoidal latitude/longitude (degrees), iterating on the latitude.
func ecefToGeodetic(ell ellipsoid, x, y, z float64) (lat, lon float64) {
	e2 := ell.f * (2 - ell.f)
	p := math.Hypot(x, y)
	phi := math.Atan2(z, p*(1-e2))
	for i := 0; i < 8; i++ {
		sinPhi := math.Sin(phi)
		n := ell.a / math.Sqrt(1-e2*sinPhi*sinPhi)
		h := p/math.Cos(phi) - n
		phi = math.Atan2(z, p*(1-e2*n/(n+h)))
	}
	return phi * 180 / math.Pi, math.Atan2(y, x) * 180 / math.Pi
}

// GKZone4ToWGS84 converts Gauss-Krüger zone 4 coordinates (Rechtswert =
// easting, Hochwert = northing, DHDN datum) to WGS84 latitude/longitude.
func GKZone4ToWGS84(easting, northing float64) (lat, lon float64) {
	bLat, bLon := gkZone4.inverse(northing, easting)
	x, y, z := geodeticToECEF(besselEllipsoid, bLat, bLon)
	x += dhdnShift[0]
	y += dhdnShift[1]
	z += dhdnShift[2]
	return ecefToGeodetic(wgs84Ellipsoid, x, y, z)
}

// WGS84ToGKZone4 is the inverse of GKZone4ToWGS84.
func WGS84ToGKZone4(lat, lon float64) (easting, northing float64) {
	x, y, z := geodeticToECEF(wgs84Ellipsoid, lat, lon)
	x -= dhdnShift[0]
	y -= dhdnShift[1]
	z -= dhdnShift[2]
	bLat, bLon := ecefToGeodetic(besselEllipsoid, x, y, z)
	n, e := gkZone4.forward(bLat, bLon)
	return e, n
}
