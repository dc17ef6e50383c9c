package fsarcamp

import (
	"math"
	"testing"
)

func TestBandFrequencies(t *testing.T) {
	tests := []struct {
		band Band
		ghz  float64
	}{
		{BandX, 9.6},
		{BandC, 5.3},
		{BandS, 3.25},
		{BandL, 1.325},
		{BandP, 0.35},
	}
	for _, tt := range tests {
		freq, err := CenterFrequency(tt.band)
		if err != nil {
			t.Fatalf("CenterFrequency(%s): %v", tt.band, err)
		}
		if got := freq / 1e9; math.Abs(got-tt.ghz) > 1e-9 {
			t.Errorf("band %s: frequency %.3f GHz, want %.3f", tt.band, got, tt.ghz)
		}
	}
}

func TestWavelength(t *testing.T) {
	// L-band at 1.325 GHz is roughly 22.6 cm.
	wl, err := Wavelength(BandL)
	if err != nil {
		t.Fatal(err)
	}
	if wl < 0.22 || wl > 0.23 {
		t.Errorf("L-band wavelength %.4f m out of expected range", wl)
	}
}

func TestInvalidBand(t *testing.T) {
	if Band("Q").IsValid() {
		t.Error("band Q should not be valid")
	}
	if _, err := CenterFrequency(Band("Q")); err == nil {
		t.Error("CenterFrequency of invalid band should fail")
	}
}
