package hterra22

import (
	"errors"
	"testing"

	"github.com/polinsar/fsarcamp"
)

func TestRegionLUTExtent(t *testing.T) {
	c, err := RegionLUTExtent(fsarcamp.BandC, CreaSF)
	if err != nil {
		t.Fatal(err)
	}
	want := Extent{3339, 3565, 1769, 1930}
	if c != want {
		t.Errorf("C-band extent = %+v, want %+v", c, want)
	}

	l, err := RegionLUTExtent(fsarcamp.BandL, CreaSF)
	if err != nil {
		t.Fatal(err)
	}
	if l.NorthingMin != c.NorthingMin+lBandNorthingOffset ||
		l.NorthingMax != c.NorthingMax+lBandNorthingOffset {
		t.Errorf("L-band northing = %d..%d", l.NorthingMin, l.NorthingMax)
	}
	if l.EastingMin != c.EastingMin || l.EastingMax != c.EastingMax {
		t.Errorf("L-band easting = %d..%d", l.EastingMin, l.EastingMax)
	}

	if _, err := RegionLUTExtent(fsarcamp.BandX, CreaSF); !errors.Is(err, fsarcamp.ErrNotFound) {
		t.Errorf("X-band: got %v, want ErrNotFound", err)
	}
	if _, err := RegionLUTExtent(fsarcamp.BandC, "ATLANTIS"); !errors.Is(err, fsarcamp.ErrNotFound) {
		t.Errorf("unknown region: got %v, want ErrNotFound", err)
	}
}

func TestRegionLUTExtentCoverage(t *testing.T) {
	for _, region := range Regions {
		if _, err := RegionLUTExtent(fsarcamp.BandC, region); err != nil {
			t.Errorf("region %s has no extent: %v", region, err)
		}
	}
}

func TestRegionRadarExtent(t *testing.T) {
	l, err := RegionRadarExtent(fsarcamp.BandL, CreaBSQu)
	if err != nil {
		t.Fatal(err)
	}
	if want := (RadarExtent{8783, 9289, 1492, 1811}); l != want {
		t.Errorf("L-band extent = %+v, want %+v", l, want)
	}

	c, err := RegionRadarExtent(fsarcamp.BandC, CaioneMA)
	if err != nil {
		t.Fatal(err)
	}
	if want := (RadarExtent{33045, 34891, 3860, 5468}); c != want {
		t.Errorf("C-band extent = %+v, want %+v", c, want)
	}

	// Region extents stay inside the SLC raster of their band.
	for _, band := range []fsarcamp.Band{fsarcamp.BandL, fsarcamp.BandC} {
		rows, cols, err := SLCShape(band)
		if err != nil {
			t.Fatal(err)
		}
		for _, region := range Regions {
			ext, err := RegionRadarExtent(band, region)
			if err != nil {
				t.Errorf("%s-band region %s has no extent: %v", band, region, err)
				continue
			}
			if ext.AzMin < 0 || ext.AzMax > rows || ext.RgMin < 0 || ext.RgMax > cols {
				t.Errorf("%s-band region %s extent %+v outside %dx%d", band, region, ext, rows, cols)
			}
			if ext.AzMin >= ext.AzMax || ext.RgMin >= ext.RgMax {
				t.Errorf("%s-band region %s extent %+v is empty", band, region, ext)
			}
		}
	}

	if _, err := RegionRadarExtent(fsarcamp.BandX, CreaSF); !errors.Is(err, fsarcamp.ErrNotFound) {
		t.Errorf("X-band: got %v, want ErrNotFound", err)
	}
	if _, err := RegionRadarExtent(fsarcamp.BandL, "ATLANTIS"); !errors.Is(err, fsarcamp.ErrNotFound) {
		t.Errorf("unknown region: got %v, want ErrNotFound", err)
	}
}

func TestSLCShape(t *testing.T) {
	rows, cols, err := SLCShape(fsarcamp.BandL)
	if err != nil || rows != 27136 || cols != 4536 {
		t.Errorf("L-band shape = %d, %d, %v", rows, cols, err)
	}
	rows, cols, err = SLCShape(fsarcamp.BandC)
	if err != nil || rows != 54016 || cols != 9072 {
		t.Errorf("C-band shape = %d, %d, %v", rows, cols, err)
	}
	if _, _, err := SLCShape(fsarcamp.BandX); !errors.Is(err, fsarcamp.ErrNotFound) {
		t.Errorf("X-band: got %v, want ErrNotFound", err)
	}
}
