package pruning

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// magic identifies a pruning-table bundle file; version allows the
// packed layout to change without silently misreading an old file.
var magic = [8]byte{'C', 'U', 'B', 'E', 'T', 'B', 'L', 0}

const formatVersion uint32 = 1

// NamedTable pairs a pruning table with the coordinate identifier that
// selects which encoder built it, for the multi-table bundle a solver
// saves in one file.
type NamedTable struct {
	CoordID uint32
	Table   *Table
}

// SaveBundle writes tables to path in the documented format: an 8-byte
// magic, a 4-byte little-endian version, a 4-byte table count, then for
// each table a 4-byte domain size, a 4-byte coordinate id, and the
// nibble-packed body — followed by an 8-byte xxhash checksum of
// everything written before it.
//
// Grounded on internal/book.go's encoding/binary fixed-width record
// writer; the checksum trailer is this repo's own addition (section 2 of
// SPEC_FULL.md), generalizing internal/engine/transposition.go's
// per-entry hash verification to the whole file.
func SaveBundle(path string, tables []NamedTable) error {
	f, err := os.Create(path)
	if err != nil {
		return &TableSaveError{Path: path, Err: err}
	}
	defer f.Close()

	h := xxhash.New()
	w := bufio.NewWriter(io.MultiWriter(f, h))

	if _, err := w.Write(magic[:]); err != nil {
		return &TableSaveError{Path: path, Err: err}
	}
	if err := binary.Write(w, binary.LittleEndian, formatVersion); err != nil {
		return &TableSaveError{Path: path, Err: err}
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(tables))); err != nil {
		return &TableSaveError{Path: path, Err: err}
	}

	for _, nt := range tables {
		if err := binary.Write(w, binary.LittleEndian, uint32(nt.Table.Size)); err != nil {
			return &TableSaveError{Path: path, Err: err}
		}
		if err := binary.Write(w, binary.LittleEndian, nt.CoordID); err != nil {
			return &TableSaveError{Path: path, Err: err}
		}
		body := packBody(nt.Table)
		if _, err := w.Write(body); err != nil {
			return &TableSaveError{Path: path, Err: err}
		}
	}

	if err := w.Flush(); err != nil {
		return &TableSaveError{Path: path, Err: err}
	}

	if err := binary.Write(f, binary.LittleEndian, h.Sum64()); err != nil {
		return &TableSaveError{Path: path, Err: err}
	}
	return nil
}

// LoadBundle reads a file written by SaveBundle, verifying its trailing
// checksum before trusting any table body.
func LoadBundle(path string) ([]NamedTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &TableLoadError{Path: path, Err: err}
	}
	if len(raw) < 8 {
		return nil, &TableLoadError{Path: path, Err: fmt.Errorf("file too short")}
	}

	body, sumBytes := raw[:len(raw)-8], raw[len(raw)-8:]
	want := binary.LittleEndian.Uint64(sumBytes)
	got := xxhash.Sum64(body)
	if want != got {
		return nil, &TableLoadError{Path: path, Err: fmt.Errorf("checksum mismatch: file is corrupt")}
	}

	r := newReader(body)
	var gotMagic [8]byte
	if err := r.read(gotMagic[:]); err != nil || gotMagic != magic {
		return nil, &TableLoadError{Path: path, Err: fmt.Errorf("not a pruning-table bundle")}
	}
	version, err := r.readUint32()
	if err != nil {
		return nil, &TableLoadError{Path: path, Err: err}
	}
	if version != formatVersion {
		return nil, &TableLoadError{Path: path, Err: fmt.Errorf("unsupported format version %d", version)}
	}
	count, err := r.readUint32()
	if err != nil {
		return nil, &TableLoadError{Path: path, Err: err}
	}

	tables := make([]NamedTable, 0, count)
	for i := uint32(0); i < count; i++ {
		size, err := r.readUint32()
		if err != nil {
			return nil, &TableLoadError{Path: path, Err: err}
		}
		coordID, err := r.readUint32()
		if err != nil {
			return nil, &TableLoadError{Path: path, Err: err}
		}
		bodyLen := (int(size) + 1) / 2
		packed := make([]byte, bodyLen)
		if err := r.read(packed); err != nil {
			return nil, &TableLoadError{Path: path, Err: err}
		}
		tables = append(tables, NamedTable{CoordID: coordID, Table: unpackBody(int(size), packed)})
	}
	return tables, nil
}

func packBody(t *Table) []byte {
	out := make([]byte, (t.Size+1)/2)
	for i := 0; i < t.Size; i++ {
		v := byte(t.Get(i))
		if i%2 == 0 {
			out[i/2] |= v
		} else {
			out[i/2] |= v << 4
		}
	}
	return out
}

func unpackBody(size int, packed []byte) *Table {
	t := NewTable(size)
	for i := 0; i < size; i++ {
		var v int
		if i%2 == 0 {
			v = int(packed[i/2] & 0xF)
		} else {
			v = int(packed[i/2] >> 4)
		}
		t.trySet(i, v)
	}
	return t
}

type reader struct {
	buf []byte
	pos int
}

func newReader(buf []byte) *reader { return &reader{buf: buf} }

func (r *reader) read(dst []byte) error {
	if r.pos+len(dst) > len(r.buf) {
		return fmt.Errorf("unexpected end of file")
	}
	copy(dst, r.buf[r.pos:r.pos+len(dst)])
	r.pos += len(dst)
	return nil
}

func (r *reader) readUint32() (uint32, error) {
	var b [4]byte
	if err := r.read(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}
