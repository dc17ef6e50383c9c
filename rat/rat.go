// Package rat decodes the DLR RAT raster format used for F-SAR data
// products (SLC imagery, incidence angle rasters, geocoding lookup tables).
//
// A RAT file is a small header followed by row-major sample data. Two header
// layouts are in circulation:
//
//	Version 1 (no magic):
//	├── ndim        int32  - number of dimensions
//	├── dims        ndim × int32 - extents, fastest-varying axis first
//	├── var         int32  - IDL variable code of the sample type
//	├── type        int32  - product type tag (unused here)
//	├── reserved    4 × int32
//	└── info        80 bytes - space-padded description
//
//	Version 2:
//	├── magic       4 bytes - "RAT2"
//	├── version     int32  - layout revision
//	├── ndim, dims, var, type, reserved as in version 1
//	└── info        100 bytes - space-padded description
//
// All header integers and all samples are big-endian. For two-dimensional
// products the first extent is the column count (slant range) and the second
// the row count (azimuth), following the column-major heritage of the
// producing system; the decoder returns rasters indexed (azimuth, range).
package rat

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/polinsar/fsarcamp"
	"github.com/polinsar/fsarcamp/raster"
)

// Header layout constants.
const (
	magicV2        = "RAT2" // magic of the version 2 layout
	infoLenV1      = 80     // info field size in version 1
	infoLenV2      = 100    // info field size in version 2
	reservedN      = 4      // reserved int32 words after the type tag
	maxNDim        = 8      // sanity bound while sniffing the layout
	headerVersion2 = 2
)

// SampleType is the IDL variable code describing the on-disk sample format.
type SampleType int32

// Sample types found in F-SAR products.
const (
	TypeByte       SampleType = 1
	TypeInt16      SampleType = 2
	TypeInt32      SampleType = 3
	TypeFloat32    SampleType = 4
	TypeFloat64    SampleType = 5
	TypeComplex64  SampleType = 6
	TypeComplex128 SampleType = 9
	TypeUint16     SampleType = 12
	TypeUint32     SampleType = 13
	TypeInt64      SampleType = 14
	TypeUint64     SampleType = 15
)

// IsComplex reports whether the sample type holds complex values.
func (t SampleType) IsComplex() bool {
	return t == TypeComplex64 || t == TypeComplex128
}

// size returns the on-disk size of one sample in bytes, or 0 if unknown.
func (t SampleType) size() int {
	switch t {
	case TypeByte:
		return 1
	case TypeInt16, TypeUint16:
		return 2
	case TypeInt32, TypeUint32, TypeFloat32:
		return 4
	case TypeFloat64, TypeComplex64, TypeInt64, TypeUint64:
		return 8
	case TypeComplex128:
		return 16
	}
	return 0
}

// Header describes a RAT file.
type Header struct {
	Version int
	Dims    []int // extents, fastest-varying axis first
	Type    SampleType
	Info    string
}

// Rows returns the azimuth extent of a two-dimensional product.
func (h Header) Rows() int { return h.Dims[len(h.Dims)-1] }

// Cols returns the range extent of a two-dimensional product.
func (h Header) Cols() int { return h.Dims[0] }

// samples returns the total sample count.
func (h Header) samples() int {
	n := 1
	for _, d := range h.Dims {
		n *= d
	}
	return n
}

// ReadHeader reads and validates the header of a RAT file.
func ReadHeader(path string) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, fsarcamp.PathError(path, err)
	}
	defer f.Close()
	h, err := decodeHeader(bufio.NewReader(f))
	if err != nil {
		return Header{}, fmt.Errorf("%s: %w", path, err)
	}
	return h, nil
}

func decodeHeader(r io.Reader) (Header, error) {
	var lead [4]byte
	if _, err := io.ReadFull(r, lead[:]); err != nil {
		return Header{}, fsarcamp.Formatf("short RAT header")
	}

	h := Header{Version: 1}
	infoLen := infoLenV1
	ndim := int32(binary.BigEndian.Uint32(lead[:]))
	if string(lead[:]) == magicV2 {
		var version int32
		if err := binary.Read(r, binary.BigEndian, &version); err != nil {
			return Header{}, fsarcamp.Formatf("short RAT2 header")
		}
		if version != headerVersion2 {
			return Header{}, fsarcamp.Formatf("unsupported RAT2 revision %d", version)
		}
		h.Version = int(version)
		infoLen = infoLenV2
		if err := binary.Read(r, binary.BigEndian, &ndim); err != nil {
			return Header{}, fsarcamp.Formatf("short RAT2 header")
		}
	}
	if ndim < 1 || ndim > maxNDim {
		return Header{}, fsarcamp.Formatf("implausible dimension count %d", ndim)
	}
	dims := make([]int32, ndim)
	if err := binary.Read(r, binary.BigEndian, dims); err != nil {
		return Header{}, fsarcamp.Formatf("short RAT header")
	}
	for _, d := range dims {
		if d < 1 {
			return Header{}, fsarcamp.Formatf("invalid extent %d", d)
		}
		h.Dims = append(h.Dims, int(d))
	}

	var varCode, typeTag int32
	var reserved [reservedN]int32
	if err := binary.Read(r, binary.BigEndian, &varCode); err != nil {
		return Header{}, fsarcamp.Formatf("short RAT header")
	}
	if err := binary.Read(r, binary.BigEndian, &typeTag); err != nil {
		return Header{}, fsarcamp.Formatf("short RAT header")
	}
	if err := binary.Read(r, binary.BigEndian, &reserved); err != nil {
		return Header{}, fsarcamp.Formatf("short RAT header")
	}
	h.Type = SampleType(varCode)
	if h.Type.size() == 0 {
		return Header{}, fsarcamp.Formatf("unknown sample type code %d", varCode)
	}

	info := make([]byte, infoLen)
	if _, err := io.ReadFull(r, info); err != nil {
		return Header{}, fsarcamp.Formatf("short RAT header")
	}
	h.Info = strings.TrimRight(string(info), " \x00")
	return h, nil
}

// ReadFloat decodes a two-dimensional real-valued RAT file, widening all
// sample types to float64.
func ReadFloat(path string) (*raster.Float, error) {
	h, data, err := readSamples(path)
	if err != nil {
		return nil, err
	}
	if h.Type.IsComplex() {
		return nil, fsarcamp.Formatf("%s: expected real samples, found %v", path, h.Type)
	}
	out := raster.NewFloat(h.Rows(), h.Cols())
	for i := range out.Data {
		out.Data[i] = decodeReal(h.Type, data, i)
	}
	return out, nil
}

// ReadComplex decodes a two-dimensional complex-valued RAT file (an SLC).
func ReadComplex(path string) (*raster.Complex, error) {
	h, data, err := readSamples(path)
	if err != nil {
		return nil, err
	}
	if !h.Type.IsComplex() {
		return nil, fsarcamp.Formatf("%s: expected complex samples, found %v", path, h.Type)
	}
	out := raster.NewComplex(h.Rows(), h.Cols())
	size := h.Type.size()
	for i := range out.Data {
		off := i * size
		if h.Type == TypeComplex64 {
			re := math.Float32frombits(binary.BigEndian.Uint32(data[off:]))
			im := math.Float32frombits(binary.BigEndian.Uint32(data[off+4:]))
			out.Data[i] = complex(float64(re), float64(im))
		} else {
			re := math.Float64frombits(binary.BigEndian.Uint64(data[off:]))
			im := math.Float64frombits(binary.BigEndian.Uint64(data[off+8:]))
			out.Data[i] = complex(re, im)
		}
	}
	return out, nil
}

// readSamples reads the header and the raw sample bytes of a 2D product.
func readSamples(path string) (Header, []byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, nil, fsarcamp.PathError(path, err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	h, err := decodeHeader(br)
	if err != nil {
		return Header{}, nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(h.Dims) != 2 {
		return Header{}, nil, fsarcamp.Formatf("%s: expected a 2D product, found %d dimensions", path, len(h.Dims))
	}
	data := make([]byte, h.samples()*h.Type.size())
	if _, err := io.ReadFull(br, data); err != nil {
		return Header{}, nil, fsarcamp.Formatf("%s: truncated sample data", path)
	}
	return h, data, nil
}

// decodeReal extracts sample i from the raw big-endian data.
func decodeReal(t SampleType, data []byte, i int) float64 {
	off := i * t.size()
	switch t {
	case TypeByte:
		return float64(data[off])
	case TypeInt16:
		return float64(int16(binary.BigEndian.Uint16(data[off:])))
	case TypeUint16:
		return float64(binary.BigEndian.Uint16(data[off:]))
	case TypeInt32:
		return float64(int32(binary.BigEndian.Uint32(data[off:])))
	case TypeUint32:
		return float64(binary.BigEndian.Uint32(data[off:]))
	case TypeFloat32:
		return float64(math.Float32frombits(binary.BigEndian.Uint32(data[off:])))
	case TypeFloat64:
		return math.Float64frombits(binary.BigEndian.Uint64(data[off:]))
	case TypeInt64:
		return float64(int64(binary.BigEndian.Uint64(data[off:])))
	case TypeUint64:
		return float64(binary.BigEndian.Uint64(data[off:]))
	}
	return math.NaN()
}
