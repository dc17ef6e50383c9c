package cropex14

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"github.com/polinsar/fsarcamp"
)

func TestFlightNumber(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{May12, 1},
		{Jun18, 9},
		{Sep11, 16},
		{"DEC-24", 0},
	}
	for _, tt := range tests {
		if got := FlightNumber(tt.date); got != tt.want {
			t.Errorf("FlightNumber(%s) = %d, want %d", tt.date, got, tt.want)
		}
	}
	if len(FlightDates) != 16 {
		t.Errorf("FlightDates has %d entries, want 16", len(FlightDates))
	}
}

func TestFields(t *testing.T) {
	ids := Fields()
	sort.Strings(ids)
	for _, want := range []string{CornC1, WheatW10, SugarBeetSB2} {
		i := sort.SearchStrings(ids, want)
		if i >= len(ids) || ids[i] != want {
			t.Errorf("Fields() is missing %s", want)
		}
	}
}

func TestCampaignRegistered(t *testing.T) {
	root := t.TempDir()
	for _, d := range []string{"FL01/PS02/T01L", "FL01/PS03/T01L"} {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	c, err := fsarcamp.Open(ID, root)
	if err != nil {
		t.Fatal(err)
	}
	if c.Name() != ID || c.Root() != root {
		t.Errorf("campaign = %q at %q", c.Name(), c.Root())
	}

	names, err := c.PassNames(fsarcamp.BandL)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"14cropex0102", "14cropex0103"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("passes = %v, want %v", names, want)
	}
}

func TestCampaignPass(t *testing.T) {
	c := New(t.TempDir())
	p, err := c.Pass("14cropex0210", fsarcamp.BandL)
	if err != nil {
		t.Fatal(err)
	}
	if p.Flight() != 2 || p.Track() != 10 {
		t.Errorf("pass = FL%02d PS%02d", p.Flight(), p.Track())
	}
	if _, err := c.Pass("bogus", fsarcamp.BandL); err == nil {
		t.Error("Pass accepted a bad name")
	}
}
