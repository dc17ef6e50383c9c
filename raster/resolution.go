package raster

import "math"

// RDPParams carries the processing parameters of an SLC product taken from
// the F-SAR metadata: pixel spacing and processed resolution in azimuth and
// range, all in meters.
type RDPParams struct {
	PixelSpacingAz float64
	PixelSpacingRg float64
	ResolutionAz   float64
	ResolutionRg   float64
}

// MetersToPixels computes a window size in pixels that approximately covers
// the requested extent in meters. The result is at least 1x1.
func (p RDPParams) MetersToPixels(metersAz, metersRg float64) (pixelsAz, pixelsRg int) {
	pixelsAz = int(math.Round(metersAz / p.PixelSpacingAz))
	pixelsRg = int(math.Round(metersRg / p.PixelSpacingRg))
	if pixelsAz < 1 {
		pixelsAz = 1
	}
	if pixelsRg < 1 {
		pixelsRg = 1
	}
	return pixelsAz, pixelsRg
}

// PixelsToMeters computes the extent in meters covered by a window of the
// given size in pixels.
func (p RDPParams) PixelsToMeters(pixelsAz, pixelsRg int) (metersAz, metersRg float64) {
	return float64(pixelsAz) * p.PixelSpacingAz, float64(pixelsRg) * p.PixelSpacingRg
}

// PixelsToLooks computes the effective number of looks of a multilook window
// of the given size in pixels. Both results are at least 1.
func (p RDPParams) PixelsToLooks(pixelsAz, pixelsRg int) (looksAz, looksRg float64) {
	metersAz, metersRg := p.PixelsToMeters(pixelsAz, pixelsRg)
	looksAz = metersAz / p.ResolutionAz
	looksRg = metersRg / p.ResolutionRg
	if looksAz < 1 {
		looksAz = 1
	}
	if looksRg < 1 {
		looksRg = 1
	}
	return looksAz, looksRg
}
