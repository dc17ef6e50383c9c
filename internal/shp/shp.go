// Package shp reads the subset of the ESRI shapefile format used by the
// campaign field maps: polygon records from the .shp geometry file and the
// attribute table from the companion .dbf file.
//
// Shapefile geometry layout (all offsets in bytes):
//
//	┌──────────────┬──────────────────────────────────────────────┐
//	│ 0   int32 BE │ file code, always 9994                       │
//	│ 24  int32 BE │ file length in 16-bit words                  │
//	│ 28  int32 LE │ version, always 1000                         │
//	│ 32  int32 LE │ shape type                                   │
//	│ 36  8 x f64  │ bounding box                                 │
//	│ 100 ...      │ records                                      │
//	└──────────────┴──────────────────────────────────────────────┘
//
// Each record starts with a big-endian header (record number, content length
// in 16-bit words) followed by little-endian content. Polygon content holds
// the shape type, a bounding box, part offsets and the ring points.
package shp

import (
	"encoding/binary"
	"math"
	"os"

	"github.com/paulmach/orb"

	"github.com/polinsar/fsarcamp"
)

const (
	fileCode     = 9994
	headerLen    = 100
	recHeaderLen = 8

	shapeNull    = 0
	shapePolygon = 5
)

// ReadPolygons decodes all polygon records of a .shp file. Ring winding is
// preserved as stored, each part becomes one ring of the record's polygon.
// Null shapes yield empty polygons so record indices stay aligned with the
// attribute table.
func ReadPolygons(path string) ([]orb.Polygon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fsarcamp.PathError(path, err)
	}
	if len(data) < headerLen {
		return nil, fsarcamp.Formatf("%s: truncated shapefile header", path)
	}
	if code := binary.BigEndian.Uint32(data[0:4]); code != fileCode {
		return nil, fsarcamp.Formatf("%s: bad shapefile code %d", path, code)
	}
	fileWords := int(binary.BigEndian.Uint32(data[24:28]))
	if fileWords*2 > len(data) {
		return nil, fsarcamp.Formatf("%s: shapefile shorter than declared length", path)
	}

	var polys []orb.Polygon
	off := headerLen
	for off+recHeaderLen <= fileWords*2 {
		contentWords := int(binary.BigEndian.Uint32(data[off+4 : off+8]))
		start := off + recHeaderLen
		end := start + contentWords*2
		if end > len(data) {
			return nil, fsarcamp.Formatf("%s: truncated record at offset %d", path, off)
		}
		poly, err := decodePolygon(data[start:end])
		if err != nil {
			return nil, fsarcamp.Formatf("%s: record at offset %d: %v", path, off, err)
		}
		polys = append(polys, poly)
		off = end
	}
	return polys, nil
}

func decodePolygon(content []byte) (orb.Polygon, error) {
	if len(content) < 4 {
		return nil, fsarcamp.Formatf("truncated record content")
	}
	switch shapeType := binary.LittleEndian.Uint32(content[0:4]); shapeType {
	case shapeNull:
		return orb.Polygon{}, nil
	case shapePolygon:
	default:
		return nil, fsarcamp.Formatf("unsupported shape type %d", shapeType)
	}
	// shape type + box + part count + point count
	if len(content) < 4+32+4+4 {
		return nil, fsarcamp.Formatf("truncated polygon record")
	}
	numParts := int(binary.LittleEndian.Uint32(content[36:40]))
	numPoints := int(binary.LittleEndian.Uint32(content[40:44]))
	partsOff := 44
	pointsOff := partsOff + numParts*4
	if numParts < 0 || numPoints < 0 || pointsOff+numPoints*16 > len(content) {
		return nil, fsarcamp.Formatf("polygon record too short for %d parts, %d points", numParts, numPoints)
	}
	parts := make([]int, numParts+1)
	for i := 0; i < numParts; i++ {
		parts[i] = int(binary.LittleEndian.Uint32(content[partsOff+i*4 : partsOff+i*4+4]))
	}
	parts[numParts] = numPoints

	poly := make(orb.Polygon, 0, numParts)
	for i := 0; i < numParts; i++ {
		first, last := parts[i], parts[i+1]
		if first > last || last > numPoints {
			return nil, fsarcamp.Formatf("invalid part offsets %d..%d", first, last)
		}
		ring := make(orb.Ring, 0, last-first)
		for p := first; p < last; p++ {
			base := pointsOff + p*16
			x := math.Float64frombits(binary.LittleEndian.Uint64(content[base : base+8]))
			y := math.Float64frombits(binary.LittleEndian.Uint64(content[base+8 : base+16]))
			ring = append(ring, orb.Point{x, y})
		}
		poly = append(poly, ring)
	}
	return poly, nil
}
