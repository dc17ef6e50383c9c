// Package raster holds the in-memory raster types produced by the product
// loaders: complex SLC imagery and real-valued rasters such as incidence
// angles and geocoding lookup tables. Rasters are read-only after load.
package raster

import "fmt"

// Float is a real-valued raster stored row-major.
type Float struct {
	Rows, Cols int
	Data       []float64
}

// Complex is a complex-valued raster (e.g. an SLC image) stored row-major.
// Rows correspond to azimuth, columns to slant range.
type Complex struct {
	Rows, Cols int
	Data       []complex128
}

// NewFloat allocates a zero-filled real raster.
func NewFloat(rows, cols int) *Float {
	return &Float{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
}

// NewComplex allocates a zero-filled complex raster.
func NewComplex(rows, cols int) *Complex {
	return &Complex{Rows: rows, Cols: cols, Data: make([]complex128, rows*cols)}
}

// At returns the sample at row r, column c.
func (f *Float) At(r, c int) float64 { return f.Data[r*f.Cols+c] }

// Set stores v at row r, column c.
func (f *Float) Set(r, c int, v float64) { f.Data[r*f.Cols+c] = v }

// At returns the sample at row r, column c.
func (m *Complex) At(r, c int) complex128 { return m.Data[r*m.Cols+c] }

// Set stores v at row r, column c.
func (m *Complex) Set(r, c int, v complex128) { m.Data[r*m.Cols+c] = v }

// Shape returns rows and columns.
func (f *Float) Shape() (int, int) { return f.Rows, f.Cols }

// Shape returns rows and columns.
func (m *Complex) Shape() (int, int) { return m.Rows, m.Cols }

func checkShape(kind string, rows, cols, n int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%s raster: invalid shape %dx%d", kind, rows, cols)
	}
	if rows*cols != n {
		return fmt.Errorf("%s raster: shape %dx%d does not match %d samples", kind, rows, cols, n)
	}
	return nil
}

// FloatFrom wraps an existing sample slice as a raster, validating the shape.
func FloatFrom(rows, cols int, data []float64) (*Float, error) {
	if err := checkShape("float", rows, cols, len(data)); err != nil {
		return nil, err
	}
	return &Float{Rows: rows, Cols: cols, Data: data}, nil
}

// ComplexFrom wraps an existing sample slice as a raster, validating the shape.
func ComplexFrom(rows, cols int, data []complex128) (*Complex, error) {
	if err := checkShape("complex", rows, cols, len(data)); err != nil {
		return nil, err
	}
	return &Complex{Rows: rows, Cols: cols, Data: data}, nil
}
