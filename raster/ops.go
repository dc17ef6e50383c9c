package raster

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Amplitude returns the magnitude of each sample.
func Amplitude(m *Complex) *Float {
	out := NewFloat(m.Rows, m.Cols)
	for i, v := range m.Data {
		out.Data[i] = cmplx.Abs(v)
	}
	return out
}

// Intensity returns the squared magnitude of each sample.
func Intensity(m *Complex) *Float {
	out := NewFloat(m.Rows, m.Cols)
	for i, v := range m.Data {
		out.Data[i] = real(v)*real(v) + imag(v)*imag(v)
	}
	return out
}

// boxcarComplex applies a boxcar (moving average) filter with the given
// window. Samples outside the raster count as zero, matching a
// constant-padded uniform filter.
func boxcarComplex(m *Complex, winRows, winCols int) *Complex {
	out := NewComplex(m.Rows, m.Cols)
	hr, hc := winRows/2, winCols/2
	norm := complex(float64(winRows*winCols), 0)
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			var sum complex128
			for dr := -hr; dr <= winRows-hr-1; dr++ {
				rr := r + dr
				if rr < 0 || rr >= m.Rows {
					continue
				}
				for dc := -hc; dc <= winCols-hc-1; dc++ {
					cc := c + dc
					if cc < 0 || cc >= m.Cols {
						continue
					}
					sum += m.At(rr, cc)
				}
			}
			out.Set(r, c, sum/norm)
		}
	}
	return out
}

// Multilook applies a boxcar filter to a real raster with the given window
// size in rows (azimuth) and columns (range).
func Multilook(f *Float, winRows, winCols int) *Float {
	out := NewFloat(f.Rows, f.Cols)
	hr, hc := winRows/2, winCols/2
	norm := float64(winRows * winCols)
	for r := 0; r < f.Rows; r++ {
		for c := 0; c < f.Cols; c++ {
			var sum float64
			for dr := -hr; dr <= winRows-hr-1; dr++ {
				rr := r + dr
				if rr < 0 || rr >= f.Rows {
					continue
				}
				for dc := -hc; dc <= winCols-hc-1; dc++ {
					cc := c + dc
					if cc < 0 || cc >= f.Cols {
						continue
					}
					sum += f.At(rr, cc)
				}
			}
			out.Set(r, c, sum/norm)
		}
	}
	return out
}

// Presum averages non-overlapping blocks of the given window size and
// returns the decimated raster: the output has ceil(Rows/winRows) rows and
// ceil(Cols/winCols) columns. Edge blocks average over the samples they
// cover. Window sizes below 1 are treated as 1.
func Presum(f *Float, winRows, winCols int) *Float {
	if winRows < 1 {
		winRows = 1
	}
	if winCols < 1 {
		winCols = 1
	}
	outRows := (f.Rows + winRows - 1) / winRows
	outCols := (f.Cols + winCols - 1) / winCols
	out := NewFloat(outRows, outCols)
	for r := 0; r < outRows; r++ {
		for c := 0; c < outCols; c++ {
			var sum float64
			var n int
			for rr := r * winRows; rr < (r+1)*winRows && rr < f.Rows; rr++ {
				for cc := c * winCols; cc < (c+1)*winCols && cc < f.Cols; cc++ {
					sum += f.At(rr, cc)
					n++
				}
			}
			out.Set(r, c, sum/float64(n))
		}
	}
	return out
}

// Coherence estimates the complex coherence of two SLC rasters over a boxcar
// window. The magnitude of the result lies in [0, 1]; the phase is the
// interferometric phase. Window sizes apply to rows (azimuth) and columns
// (range).
func Coherence(a, b *Complex, winRows, winCols int) (*Complex, error) {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return nil, fmt.Errorf("coherence: shape mismatch %dx%d vs %dx%d", a.Rows, a.Cols, b.Rows, b.Cols)
	}
	interf := NewComplex(a.Rows, a.Cols)
	powA := NewComplex(a.Rows, a.Cols)
	powB := NewComplex(a.Rows, a.Cols)
	for i := range a.Data {
		av, bv := a.Data[i], b.Data[i]
		interf.Data[i] = av * cmplx.Conj(bv)
		powA.Data[i] = complex(real(av)*real(av)+imag(av)*imag(av), 0)
		powB.Data[i] = complex(real(bv)*real(bv)+imag(bv)*imag(bv), 0)
	}
	interf = boxcarComplex(interf, winRows, winCols)
	powA = boxcarComplex(powA, winRows, winCols)
	powB = boxcarComplex(powB, winRows, winCols)
	out := NewComplex(a.Rows, a.Cols)
	for i := range out.Data {
		denom := math.Sqrt(real(powA.Data[i]) * real(powB.Data[i]))
		if denom == 0 {
			out.Data[i] = complex(math.NaN(), math.NaN())
			continue
		}
		out.Data[i] = interf.Data[i] / complex(denom, 0)
	}
	return out, nil
}
