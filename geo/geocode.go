package geo

import (
	"math"

	"github.com/polinsar/fsarcamp/raster"
)

// LatLonToNorthEast projects a latitude/longitude coordinate into the UTM
// grid of the lookup table. The result is a geographic coordinate in meters,
// not a grid index.
func (l *SlantRangeLUT) LatLonToNorthEast(lat, lon float64) (northing, easting float64) {
	return LatLonToUTM(lat, lon, l.Zone, l.South)
}

// NorthEastToAzRg looks up the SLC pixel indices for a northing/easting
// coordinate. The nearest LUT cell is used. Coordinates outside the grid, or
// cells not covered by the SLC, yield NaN for both results.
func (l *SlantRangeLUT) NorthEastToAzRg(northing, easting float64) (az, rg float64) {
	row := int(math.Round((northing - l.MinNorthing) / l.PixelSpacingNorth))
	col := int(math.Round((easting - l.MinEasting) / l.PixelSpacingEast))
	if row < 0 || row >= l.Az.Rows || col < 0 || col >= l.Az.Cols {
		return math.NaN(), math.NaN()
	}
	az = l.Az.At(row, col)
	rg = l.Rg.At(row, col)
	if az < 0 || rg < 0 || math.IsNaN(az) || math.IsNaN(rg) {
		return math.NaN(), math.NaN()
	}
	return az, rg
}

// LatLonToAzRg geocodes a latitude/longitude coordinate to SLC pixel
// indices through the lookup table.
func (l *SlantRangeLUT) LatLonToAzRg(lat, lon float64) (az, rg float64) {
	northing, easting := l.LatLonToNorthEast(lat, lon)
	return l.NorthEastToAzRg(northing, easting)
}

// GeocodeFloat resamples an SLC-geometry raster onto the UTM grid of the
// lookup table using nearest-neighbour lookup. Grid cells with invalid
// indices are filled with NaN.
func (l *SlantRangeLUT) GeocodeFloat(img *raster.Float) *raster.Float {
	out := raster.NewFloat(l.Az.Rows, l.Az.Cols)
	for i := range out.Data {
		az, rg := l.Az.Data[i], l.Rg.Data[i]
		out.Data[i] = lookupFloat(img, az, rg)
	}
	return out
}

// GeocodeAmplitude resamples the amplitude of an SLC onto the UTM grid of
// the lookup table.
func (l *SlantRangeLUT) GeocodeAmplitude(img *raster.Complex) *raster.Float {
	return l.GeocodeFloat(raster.Amplitude(img))
}

func lookupFloat(img *raster.Float, az, rg float64) float64 {
	if math.IsNaN(az) || math.IsNaN(rg) {
		return math.NaN()
	}
	r := int(math.Round(az))
	c := int(math.Round(rg))
	if r < 0 || r >= img.Rows || c < 0 || c >= img.Cols {
		return math.NaN()
	}
	return img.At(r, c)
}
