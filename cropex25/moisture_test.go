package cropex25

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/polinsar/fsarcamp"
)

const maizeCSV = `date_time,point_id,latitude,longitude,soil_moisture_1,soil_moisture_2,soil_moisture_3
2025-04-28 09:12:00,P1,48.1857,11.1740,0.30,0.32,0.34
2025-04-28 09:18:00,P2,48.1859,11.1743,0.25,n/a,0.27
`

// writeMoistureTree lays out the per-field folder structure of the
// preliminary ground data.
func writeMoistureTree(t *testing.T, date, field, suffix, content string) string {
	t.Helper()
	dir := t.TempDir()
	sub := filepath.Join(dir, date+"_"+field)
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	name := date + "_" + field + "_SoilMoisture" + suffix + ".csv"
	if err := os.WriteFile(filepath.Join(sub, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestMoisturePoints(t *testing.T) {
	dir := writeMoistureTree(t, "2025-04-28", "Eitelsried_Maize", "_1", maizeCSV)
	points, err := NewMoisture(dir).Points(EitelsriedMaize, Apr28Morn)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}

	p := points[0]
	if p.Field != "Eitelsried_Maize" || p.PointID != "P1" {
		t.Errorf("first point = %+v", p.Point)
	}
	want := time.Date(2025, 4, 28, 9, 12, 0, 0, time.UTC)
	if !p.Date.Equal(want) {
		t.Errorf("date = %v, want %v", p.Date, want)
	}
	if len(p.Samples) != 3 || math.Abs(p.Moisture-0.32) > 1e-9 {
		t.Errorf("samples = %v, moisture = %v", p.Samples, p.Moisture)
	}

	// The unparseable second sample of P2 is dropped.
	p = points[1]
	if len(p.Samples) != 2 || math.Abs(p.Moisture-0.26) > 1e-9 {
		t.Errorf("samples = %v, moisture = %v", p.Samples, p.Moisture)
	}
}

func TestMoisturePointsErrors(t *testing.T) {
	dir := writeMoistureTree(t, "2025-04-28", "Eitelsried_Maize", "_1", maizeCSV)
	m := NewMoisture(dir)

	if _, err := m.Points("CR25-ATLANTIS", Apr28Morn); !errors.Is(err, fsarcamp.ErrNotFound) {
		t.Errorf("unknown region: got %v, want ErrNotFound", err)
	}
	if _, err := m.Points(EitelsriedMaize, "APR-99"); !errors.Is(err, fsarcamp.ErrNotFound) {
		t.Errorf("unknown period: got %v, want ErrNotFound", err)
	}
	// Right region, no file for that period.
	if _, err := m.Points(EitelsriedMaize, Apr28Noon); !errors.Is(err, fsarcamp.ErrNotFound) {
		t.Errorf("missing file: got %v, want ErrNotFound", err)
	}

	bad := writeMoistureTree(t, "2025-04-16", "Eitelsried_Wheat", "",
		"date_time,point_id,latitude,longitude\n")
	if _, err := NewMoisture(bad).Points(EitelsriedWheat, Apr16); !errors.Is(err, fsarcamp.ErrFormat) {
		t.Errorf("missing column: got %v, want ErrFormat", err)
	}
}

func TestRegionContains(t *testing.T) {
	tests := []struct {
		region   string
		lon, lat float64
		want     bool
	}{
		{EitelsriedMaize, 11.1740, 48.1865, true},
		{EitelsriedMaize, 11.16, 48.18, false},
		{EitelsriedWheat, 11.167, 48.1815, true},
		{EitelsriedWheat, 11.1740, 48.1865, false},
		{"CR25-ATLANTIS", 11.1740, 48.1865, false},
	}
	for _, tt := range tests {
		if got := RegionContains(tt.region, tt.lon, tt.lat); got != tt.want {
			t.Errorf("RegionContains(%s, %v, %v) = %v, want %v", tt.region, tt.lon, tt.lat, got, tt.want)
		}
	}
}
