package hterra22

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/polinsar/fsarcamp"
	"github.com/polinsar/fsarcamp/ground"
)

const moistureCSV = `date_time,point_id,field,latitude,longitude,soil_moisture,easting,northing
2022-04-28 09:00:00,P1,CREA_BARESOIL,41.4553,15.4923,0.221,540730.1,4589658.2
2022-04-28 09:05:00,P2,CREA_BARESOIL,41.4554,15.4924,0.243,540738.7,4589669.0
2022-04-28 15:00:00,P2,CREA_BARESOIL,41.4554,15.4924,0.120,540738.7,4589669.0
2022-04-28 15:05:00,P30,CREA_BARESOIL,41.4560,15.4930,0.140,540790.2,4589730.5
2022-06-15 09:00:00,P1,CREA_SUNFLOWER,41.4531,15.4898,0.301,540520.0,4589410.0
`

func writeMoistureCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hterra22_soil_moisture.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMoisture(t *testing.T) {
	points, err := LoadMoisture(writeMoistureCSV(t, moistureCSV))
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 5 {
		t.Fatalf("got %d points, want 5", len(points))
	}
	p := points[0]
	if p.Field != "CREA_BARESOIL" || p.PointID != "P1" {
		t.Errorf("first point = %+v", p.Point)
	}
	want := time.Date(2022, 4, 28, 9, 0, 0, 0, time.UTC)
	if !p.Date.Equal(want) {
		t.Errorf("date = %v, want %v", p.Date, want)
	}
	if math.Abs(p.Moisture-0.221) > 1e-9 {
		t.Errorf("moisture = %v, want 0.221", p.Moisture)
	}
	if math.Abs(p.Latitude-41.4553) > 1e-9 || math.Abs(p.Longitude-15.4923) > 1e-9 {
		t.Errorf("coordinates = (%v, %v)", p.Latitude, p.Longitude)
	}
	if !math.IsNaN(p.Azimuth) || !math.IsNaN(p.Range) {
		t.Error("radar coordinates should start unset")
	}
}

func TestLoadMoistureErrors(t *testing.T) {
	_, err := LoadMoisture(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, fsarcamp.ErrNotFound) {
		t.Errorf("missing file: got %v, want ErrNotFound", err)
	}

	tests := []struct {
		name, content string
	}{
		{"missing column", "date_time,point_id,latitude,longitude,soil_moisture\n"},
		{"bad date", "date_time,point_id,field,latitude,longitude,soil_moisture\nyesterday,P1,F,41.0,15.0,0.2\n"},
		{"bad number", "date_time,point_id,field,latitude,longitude,soil_moisture\n2022-04-28 09:00:00,P1,F,41.0,fifteen,0.2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadMoisture(writeMoistureCSV(t, tt.content))
			if !errors.Is(err, fsarcamp.ErrFormat) {
				t.Errorf("got %v, want ErrFormat", err)
			}
		})
	}
}

func TestInterpolationGroups(t *testing.T) {
	points, err := LoadMoisture(writeMoistureCSV(t, moistureCSV))
	if err != nil {
		t.Fatal(err)
	}

	// Morning walk over the bare soil field: two points in the window.
	groups, err := InterpolationGroups(points, CreaBSQu, Apr28AM)
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 1 || len(groups[0]) != 2 {
		t.Fatalf("morning groups = %v", groups)
	}

	// The afternoon is split into point-range groups. P30 falls in the
	// P23-P77 range, P2 in the P1-P3 range, and the middle group stays
	// empty and is dropped.
	groups, err = InterpolationGroups(points, CreaBSQu, Apr28PM)
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 2 {
		t.Fatalf("afternoon groups = %v", groups)
	}
	if len(groups[0]) != 1 || groups[0][0].PointID != "P30" {
		t.Errorf("first afternoon group = %v", groups[0])
	}
	if len(groups[1]) != 1 || groups[1][0].PointID != "P2" {
		t.Errorf("second afternoon group = %v", groups[1])
	}

	// The farm-level region spans all sub-regions.
	groups, err = InterpolationGroups(points, CREA, Jun15AM)
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 1 || groups[0][0].Field != "CREA_SUNFLOWER" {
		t.Errorf("farm-level groups = %v", groups)
	}

	if _, err := InterpolationGroups(points, "ATLANTIS", Apr28AM); !errors.Is(err, fsarcamp.ErrNotFound) {
		t.Errorf("unknown region: got %v, want ErrNotFound", err)
	}
}

func TestInterpolationGroupsOddPointIDs(t *testing.T) {
	// Point ids that do not follow the P<number> scheme must not match a
	// point-range group, and must not break the selection.
	when := time.Date(2022, 4, 28, 15, 2, 0, 0, time.UTC)
	points := []ground.MoisturePoint{
		{Point: ground.NewPoint("CREA_BARESOIL", "P30", when, 41.456, 15.493)},
		{Point: ground.NewPoint("CREA_BARESOIL", "", when, 41.456, 15.493)},
		{Point: ground.NewPoint("CREA_BARESOIL", "X", when, 41.456, 15.493)},
	}

	groups, err := InterpolationGroups(points, CreaBSQu, Apr28PM)
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 1 || len(groups[0]) != 1 || groups[0][0].PointID != "P30" {
		t.Fatalf("groups = %v, want only P30", groups)
	}
}

func TestRegionMoisture(t *testing.T) {
	points, err := LoadMoisture(writeMoistureCSV(t, moistureCSV))
	if err != nil {
		t.Fatal(err)
	}

	mean, err := RegionMoisture(points, CreaBSQu, Apr28AM)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(mean-0.232) > 1e-9 {
		t.Errorf("mean = %v, want 0.232", mean)
	}

	if _, err := RegionMoisture(points, CreaSF, Apr28AM); !errors.Is(err, fsarcamp.ErrNotFound) {
		t.Errorf("empty period: got %v, want ErrNotFound", err)
	}
}
