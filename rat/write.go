package rat

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/polinsar/fsarcamp/raster"
)

// WriteFloat encodes a real raster as a version 2 RAT file with the given
// sample type. Samples are narrowed from float64 to the target type.
func WriteFloat(path string, f *raster.Float, typ SampleType, info string) error {
	if typ.IsComplex() || typ.size() == 0 {
		return fmt.Errorf("rat: sample type %v cannot hold real samples", typ)
	}
	return writeFile(path, Header{
		Version: headerVersion2,
		Dims:    []int{f.Cols, f.Rows},
		Type:    typ,
		Info:    info,
	}, func(w *bufio.Writer) error {
		for _, v := range f.Data {
			if err := encodeReal(w, typ, v); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteComplex encodes a complex raster as a version 2 RAT file.
func WriteComplex(path string, m *raster.Complex, typ SampleType, info string) error {
	if !typ.IsComplex() {
		return fmt.Errorf("rat: sample type %v cannot hold complex samples", typ)
	}
	return writeFile(path, Header{
		Version: headerVersion2,
		Dims:    []int{m.Cols, m.Rows},
		Type:    typ,
		Info:    info,
	}, func(w *bufio.Writer) error {
		var buf [16]byte
		for _, v := range m.Data {
			if typ == TypeComplex64 {
				binary.BigEndian.PutUint32(buf[0:], math.Float32bits(float32(real(v))))
				binary.BigEndian.PutUint32(buf[4:], math.Float32bits(float32(imag(v))))
				if _, err := w.Write(buf[:8]); err != nil {
					return err
				}
				continue
			}
			binary.BigEndian.PutUint64(buf[0:], math.Float64bits(real(v)))
			binary.BigEndian.PutUint64(buf[8:], math.Float64bits(imag(v)))
			if _, err := w.Write(buf[:16]); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeFile(path string, h Header, body func(*bufio.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("rat: %w", err)
	}
	w := bufio.NewWriter(f)
	if err := encodeHeader(w, h); err != nil {
		f.Close()
		return err
	}
	if err := body(w); err != nil {
		f.Close()
		return fmt.Errorf("rat: %w", err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("rat: %w", err)
	}
	return f.Close()
}

func encodeHeader(w *bufio.Writer, h Header) error {
	if _, err := w.WriteString(magicV2); err != nil {
		return err
	}
	ints := []int32{headerVersion2, int32(len(h.Dims))}
	for _, d := range h.Dims {
		ints = append(ints, int32(d))
	}
	ints = append(ints, int32(h.Type), 0) // var code, product type tag
	ints = append(ints, make([]int32, reservedN)...)
	if err := binary.Write(w, binary.BigEndian, ints); err != nil {
		return err
	}
	info := make([]byte, infoLenV2)
	for i := range info {
		info[i] = ' '
	}
	copy(info, h.Info)
	_, err := w.Write(info)
	return err
}

func encodeReal(w *bufio.Writer, typ SampleType, v float64) error {
	var buf [8]byte
	switch typ {
	case TypeByte:
		buf[0] = byte(v)
	case TypeInt16:
		binary.BigEndian.PutUint16(buf[:], uint16(int16(v)))
	case TypeUint16:
		binary.BigEndian.PutUint16(buf[:], uint16(v))
	case TypeInt32:
		binary.BigEndian.PutUint32(buf[:], uint32(int32(v)))
	case TypeUint32:
		binary.BigEndian.PutUint32(buf[:], uint32(v))
	case TypeFloat32:
		binary.BigEndian.PutUint32(buf[:], math.Float32bits(float32(v)))
	case TypeFloat64:
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(v))
	case TypeInt64:
		binary.BigEndian.PutUint64(buf[:], uint64(int64(v)))
	case TypeUint64:
		binary.BigEndian.PutUint64(buf[:], uint64(v))
	}
	_, err := w.Write(buf[:typ.size()])
	return err
}
