package cropex14

import (
	"errors"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/polinsar/fsarcamp"
)

// writeBiomassWorkbook builds a vegetation spreadsheet in the column-per-
// point layout: labels in column A, one sampling point per column.
func writeBiomassWorkbook(t *testing.T, date string, points []map[int]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", "Tabelle1"); err != nil {
		t.Fatal(err)
	}
	set := func(col, row int, v any) {
		name, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetCellValue("Tabelle1", name, v); err != nil {
			t.Fatal(err)
		}
	}
	set(1, 1, "Date: "+date)
	for i, cells := range points {
		for row, v := range cells {
			set(2+i, row, v)
		}
	}
	path := filepath.Join(t.TempDir(), "veg.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadBiomassFile(t *testing.T) {
	path := writeBiomassWorkbook(t, "03.07.2014", []map[int]any{
		{
			bioRowPointID:      "P1",
			bioRowTime:         "09:15",
			bioRowLatitude:     48.6961,
			bioRowLongitude:    12.8735,
			bioRowHeight:       250.0, // cm
			bioRowBBCH:         65.0,
			bioRowWet:          300.0,
			bioRowDry:          80.0,
			bioRowVWC:          73.3,
			bioRowMoisture:     32.0,
			bioRowMoisture + 1: 35.0,
		},
		{bioRowLatitude: 48.0}, // no point label, a comment column
		{bioRowPointID: "P2"},  // point without measurements
	})
	pts, err := readBiomassFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 2 {
		t.Fatalf("got %d points, want 2", len(pts))
	}

	p := pts[0]
	if p.PointID != "P1" {
		t.Errorf("point id = %q", p.PointID)
	}
	want := time.Date(2014, 7, 3, 9, 15, 0, 0, time.UTC)
	if !p.Date.Equal(want) {
		t.Errorf("date = %v, want %v", p.Date, want)
	}
	if math.Abs(p.Height-2.5) > 1e-9 {
		t.Errorf("height = %v m, want 2.5", p.Height)
	}
	if math.Abs(p.BBCH-65) > 1e-9 || math.Abs(p.WetWeight-300) > 1e-9 || math.Abs(p.DryWeight-80) > 1e-9 {
		t.Errorf("vegetation values = %v, %v, %v", p.BBCH, p.WetWeight, p.DryWeight)
	}
	if math.Abs(p.VWC-0.733) > 1e-9 {
		t.Errorf("vwc = %v, want 0.733", p.VWC)
	}
	if math.Abs(p.SoilMoisture-0.335) > 1e-9 {
		t.Errorf("soil moisture = %v, want 0.335", p.SoilMoisture)
	}
	if math.Abs(p.Latitude-48.6961) > 1e-9 || math.Abs(p.Longitude-12.8735) > 1e-9 {
		t.Errorf("coordinates = (%v, %v)", p.Latitude, p.Longitude)
	}

	// Cells left empty parse to NaN, the date falls back to the sheet date.
	p = pts[1]
	if p.PointID != "P2" {
		t.Errorf("second point id = %q", p.PointID)
	}
	if !p.Date.Equal(time.Date(2014, 7, 3, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("second date = %v", p.Date)
	}
	if !math.IsNaN(p.Height) || !math.IsNaN(p.BBCH) || !math.IsNaN(p.SoilMoisture) {
		t.Errorf("empty measurements = %+v", p)
	}
}

func TestReadBiomassFileErrors(t *testing.T) {
	_, err := readBiomassFile(filepath.Join(t.TempDir(), "missing.xlsx"))
	if !errors.Is(err, fsarcamp.ErrNotFound) {
		t.Errorf("missing file: got %v, want ErrNotFound", err)
	}

	path := writeBiomassWorkbook(t, "July 3rd", []map[int]any{{bioRowPointID: "P1"}})
	if _, err := readBiomassFile(path); !errors.Is(err, fsarcamp.ErrFormat) {
		t.Errorf("bad date: got %v, want ErrFormat", err)
	}
}
