package shp

import (
	"os"
	"strings"

	"github.com/polinsar/fsarcamp"
)

// dBASE III layout: a 32-byte file header, 32-byte field descriptors
// terminated by 0x0D, then fixed-width ASCII records prefixed with a
// deletion flag byte.
const (
	dbfHeaderLen = 32
	dbfFieldLen  = 32
	dbfFieldTerm = 0x0d
)

// Field describes one attribute column.
type Field struct {
	Name   string
	Type   byte
	Length int
}

// Table is a decoded attribute table. Records preserve file order, deleted
// records are skipped. Values are trimmed strings, numeric parsing is left
// to the caller.
type Table struct {
	Fields  []Field
	Records []map[string]string
}

// ReadTable decodes a .dbf attribute table.
func ReadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fsarcamp.PathError(path, err)
	}
	if len(data) < dbfHeaderLen {
		return nil, fsarcamp.Formatf("%s: truncated dbf header", path)
	}
	numRecords := int(uint32(data[4]) | uint32(data[5])<<8 | uint32(data[6])<<16 | uint32(data[7])<<24)
	headerSize := int(uint16(data[8]) | uint16(data[9])<<8)
	recordSize := int(uint16(data[10]) | uint16(data[11])<<8)
	if headerSize > len(data) || recordSize <= 0 {
		return nil, fsarcamp.Formatf("%s: bad dbf header sizes", path)
	}

	var fields []Field
	off := dbfHeaderLen
	for off < headerSize && data[off] != dbfFieldTerm {
		if off+dbfFieldLen > len(data) {
			return nil, fsarcamp.Formatf("%s: truncated field descriptor", path)
		}
		desc := data[off : off+dbfFieldLen]
		name := strings.TrimRight(string(desc[0:11]), "\x00")
		fields = append(fields, Field{Name: name, Type: desc[11], Length: int(desc[16])})
		off += dbfFieldLen
	}

	table := &Table{Fields: fields}
	for i := 0; i < numRecords; i++ {
		start := headerSize + i*recordSize
		if start+recordSize > len(data) {
			return nil, fsarcamp.Formatf("%s: truncated record %d", path, i)
		}
		rec := data[start : start+recordSize]
		if rec[0] == '*' {
			continue // deleted
		}
		values := make(map[string]string, len(fields))
		pos := 1
		for _, f := range fields {
			if pos+f.Length > len(rec) {
				return nil, fsarcamp.Formatf("%s: record %d shorter than field layout", path, i)
			}
			values[f.Name] = strings.TrimSpace(string(rec[pos : pos+f.Length]))
			pos += f.Length
		}
		table.Records = append(table.Records, values)
	}
	return table, nil
}
