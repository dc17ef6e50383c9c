package raster

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAmplitudeIntensity(t *testing.T) {
	m, err := ComplexFrom(1, 2, []complex128{3 + 4i, -1})
	if err != nil {
		t.Fatal(err)
	}
	amp := Amplitude(m)
	if got := amp.At(0, 0); math.Abs(got-5) > 1e-12 {
		t.Errorf("amplitude(3+4i) = %v, want 5", got)
	}
	if got := amp.At(0, 1); math.Abs(got-1) > 1e-12 {
		t.Errorf("amplitude(-1) = %v, want 1", got)
	}
	pow := Intensity(m)
	if got := pow.At(0, 0); math.Abs(got-25) > 1e-12 {
		t.Errorf("intensity(3+4i) = %v, want 25", got)
	}
}

func TestMultilook(t *testing.T) {
	f, err := FloatFrom(1, 3, []float64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	got := Multilook(f, 1, 3)

	// Zero padding outside the raster shrinks the averages at the edges.
	want := []float64{(1 + 2) / 3.0, (1 + 2 + 3) / 3.0, (2 + 3) / 3.0}
	if diff := cmp.Diff(want, got.Data, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("multilook mismatch (-want +got):\n%s", diff)
	}
}

func TestPresum(t *testing.T) {
	f, err := FloatFrom(4, 6, make([]float64, 24))
	if err != nil {
		t.Fatal(err)
	}
	for i := range f.Data {
		f.Data[i] = float64(i)
	}
	got := Presum(f, 2, 3)

	if got.Rows != 2 || got.Cols != 2 {
		t.Fatalf("presum shape = %dx%d, want 2x2", got.Rows, got.Cols)
	}
	// Block (0,0) covers samples 0,1,2,6,7,8.
	want := []float64{4, 7, 16, 19}
	if diff := cmp.Diff(want, got.Data, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("presum mismatch (-want +got):\n%s", diff)
	}
}

func TestPresumRaggedEdge(t *testing.T) {
	f, err := FloatFrom(1, 5, []float64{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatal(err)
	}
	got := Presum(f, 1, 2)

	if got.Rows != 1 || got.Cols != 3 {
		t.Fatalf("presum shape = %dx%d, want 1x3", got.Rows, got.Cols)
	}
	// The trailing block covers a single sample and averages only it.
	want := []float64{1.5, 3.5, 5}
	if diff := cmp.Diff(want, got.Data, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("presum mismatch (-want +got):\n%s", diff)
	}
}

func TestMultilookConstantInterior(t *testing.T) {
	f := NewFloat(9, 9)
	for i := range f.Data {
		f.Data[i] = 7
	}
	got := Multilook(f, 3, 3)
	if v := got.At(4, 4); math.Abs(v-7) > 1e-12 {
		t.Errorf("interior of constant raster = %v, want 7", v)
	}
	if v := got.At(0, 0); v >= 7 {
		t.Errorf("corner of constant raster = %v, want < 7", v)
	}
}

func TestCoherenceWithItself(t *testing.T) {
	m := NewComplex(5, 5)
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			m.Set(r, c, complex(float64(r+1), float64(c-2)))
		}
	}
	coh, err := Coherence(m, m, 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	for r := 0; r < coh.Rows; r++ {
		for c := 0; c < coh.Cols; c++ {
			if mag := math.Hypot(real(coh.At(r, c)), imag(coh.At(r, c))); math.Abs(mag-1) > 1e-9 {
				t.Fatalf("|coherence| at (%d,%d) = %v, want 1", r, c, mag)
			}
		}
	}
}

func TestCoherenceShapeMismatch(t *testing.T) {
	a := NewComplex(2, 2)
	b := NewComplex(2, 3)
	if _, err := Coherence(a, b, 3, 3); err == nil {
		t.Fatal("expected shape mismatch error")
	}
}

func TestFromShapeChecks(t *testing.T) {
	if _, err := FloatFrom(2, 2, make([]float64, 3)); err == nil {
		t.Error("FloatFrom accepted short data")
	}
	if _, err := ComplexFrom(2, 2, make([]complex128, 5)); err == nil {
		t.Error("ComplexFrom accepted long data")
	}
}

func TestRDPParams(t *testing.T) {
	p := RDPParams{
		PixelSpacingAz: 0.5,
		PixelSpacingRg: 0.25,
		ResolutionAz:   1.0,
		ResolutionRg:   0.5,
	}

	az, rg := p.MetersToPixels(5, 5)
	if az != 10 || rg != 20 {
		t.Errorf("MetersToPixels(5, 5) = (%d, %d), want (10, 20)", az, rg)
	}
	az, rg = p.MetersToPixels(0.01, 0.01)
	if az != 1 || rg != 1 {
		t.Errorf("MetersToPixels clamp = (%d, %d), want (1, 1)", az, rg)
	}

	mAz, mRg := p.PixelsToMeters(10, 20)
	if mAz != 5 || mRg != 5 {
		t.Errorf("PixelsToMeters(10, 20) = (%v, %v), want (5, 5)", mAz, mRg)
	}

	lAz, lRg := p.PixelsToLooks(10, 20)
	if lAz != 5 || lRg != 10 {
		t.Errorf("PixelsToLooks(10, 20) = (%v, %v), want (5, 10)", lAz, lRg)
	}
	lAz, lRg = p.PixelsToLooks(1, 1)
	if lAz != 1 || lRg != 1 {
		t.Errorf("PixelsToLooks clamp = (%v, %v), want (1, 1)", lAz, lRg)
	}
}
