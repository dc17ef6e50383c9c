package geo

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/polinsar/fsarcamp"
	"github.com/polinsar/fsarcamp/raster"
	"github.com/polinsar/fsarcamp/rat"
)

// SlantRangeLUT is the F-SAR geocoding lookup table of one pass. The two
// rasters hold, for every cell of a UTM grid, the azimuth and range pixel
// index of the SLC; negative values mark cells not covered by the image.
// Row zero corresponds to the minimum northing, column zero to the minimum
// easting.
type SlantRangeLUT struct {
	Az, Rg *raster.Float

	MinNorthing, MinEasting             float64
	PixelSpacingNorth, PixelSpacingEast float64
	Zone                                int
	South                               bool
}

// MaxNorthing returns the northing of the last grid row.
func (l *SlantRangeLUT) MaxNorthing() float64 {
	return l.MinNorthing + float64(l.Az.Rows-1)*l.PixelSpacingNorth
}

// MaxEasting returns the easting of the last grid column.
func (l *SlantRangeLUT) MaxEasting() float64 {
	return l.MinEasting + float64(l.Az.Cols-1)*l.PixelSpacingEast
}

// LoadSlantRangeLUT reads the paired azimuth and range LUT rasters plus the
// ENVI-style header file carrying the UTM grid parameters. Both rasters must
// have the same shape.
func LoadSlantRangeLUT(azPath, rgPath, hdrPath string) (*SlantRangeLUT, error) {
	az, err := rat.ReadFloat(azPath)
	if err != nil {
		return nil, err
	}
	rg, err := rat.ReadFloat(rgPath)
	if err != nil {
		return nil, err
	}
	if az.Rows != rg.Rows || az.Cols != rg.Cols {
		return nil, fsarcamp.Formatf("lookup table shape mismatch: az %dx%d, rg %dx%d",
			az.Rows, az.Cols, rg.Rows, rg.Cols)
	}
	lut := &SlantRangeLUT{Az: az, Rg: rg}
	if err := lut.readHeaderFile(hdrPath); err != nil {
		return nil, err
	}
	return lut, nil
}

// readHeaderFile parses "key = value" lines of the LUT header file. The
// southern hemisphere is indicated either by a negative projection zone or
// by the map info line.
func (l *SlantRangeLUT) readHeaderFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fsarcamp.PathError(path, err)
	}
	defer f.Close()

	seen := make(map[string]bool)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		var parseErr error
		switch key {
		case "min_easting":
			l.MinEasting, parseErr = strconv.ParseFloat(value, 64)
		case "min_northing":
			l.MinNorthing, parseErr = strconv.ParseFloat(value, 64)
		case "pixel_spacing_east":
			l.PixelSpacingEast, parseErr = strconv.ParseFloat(value, 64)
		case "pixel_spacing_north":
			l.PixelSpacingNorth, parseErr = strconv.ParseFloat(value, 64)
		case "projection_zone":
			l.Zone, parseErr = strconv.Atoi(value)
		case "map info":
			if !strings.Contains(value, "North") {
				l.South = true
			}
		default:
			continue
		}
		if parseErr != nil {
			return fsarcamp.Formatf("%s: bad %s value %q", path, key, value)
		}
		seen[key] = true
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	for _, key := range []string{"min_easting", "min_northing", "pixel_spacing_east", "pixel_spacing_north", "projection_zone"} {
		if !seen[key] {
			return fsarcamp.Formatf("%s: missing %s", path, key)
		}
	}
	if l.Zone < 0 {
		// Header files keep "North" in the map info line even on the
		// southern hemisphere; a negative zone is the reliable marker.
		l.Zone = -l.Zone
		l.South = true
	}
	if l.PixelSpacingEast <= 0 || l.PixelSpacingNorth <= 0 {
		return fsarcamp.Formatf("%s: non-positive pixel spacing", path)
	}
	return nil
}
