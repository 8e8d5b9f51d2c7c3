package pruning

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadBundleRoundTrip(t *testing.T) {
	a := NewTable(10)
	a.trySet(0, 0)
	a.trySet(1, 2)
	a.trySet(9, 5)

	b := NewTable(5)
	b.trySet(3, 1)

	path := filepath.Join(t.TempDir(), "tables.bin")
	if err := SaveBundle(path, []NamedTable{{CoordID: 1, Table: a}, {CoordID: 2, Table: b}}); err != nil {
		t.Fatalf("SaveBundle failed: %v", err)
	}

	loaded, err := LoadBundle(path)
	if err != nil {
		t.Fatalf("LoadBundle failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("LoadBundle returned %d tables, want 2", len(loaded))
	}

	byID := make(map[uint32]*Table, 2)
	for _, nt := range loaded {
		byID[nt.CoordID] = nt.Table
	}

	for i := 0; i < a.Size; i++ {
		if got := byID[1].Get(i); got != a.Get(i) {
			t.Errorf("table 1 coordinate %d = %d, want %d", i, got, a.Get(i))
		}
	}
	for i := 0; i < b.Size; i++ {
		if got := byID[2].Get(i); got != b.Get(i) {
			t.Errorf("table 2 coordinate %d = %d, want %d", i, got, b.Get(i))
		}
	}
}

func TestLoadBundleMissingFile(t *testing.T) {
	_, err := LoadBundle(filepath.Join(t.TempDir(), "does-not-exist.bin"))
	if err == nil {
		t.Fatal("LoadBundle on a missing file should return an error")
	}
	var loadErr *TableLoadError
	if !isTableLoadError(err, &loadErr) {
		t.Errorf("LoadBundle on a missing file should return *TableLoadError, got %T", err)
	}
}

func TestLoadBundleDetectsCorruption(t *testing.T) {
	a := NewTable(20)
	for i := 0; i < 20; i++ {
		a.trySet(i, i%15)
	}

	path := filepath.Join(t.TempDir(), "tables.bin")
	if err := SaveBundle(path, []NamedTable{{CoordID: 1, Table: a}}); err != nil {
		t.Fatalf("SaveBundle failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back the saved file failed: %v", err)
	}
	raw[len(raw)/2] ^= 0xFF // flip a byte in the middle of the file
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("rewriting the corrupted file failed: %v", err)
	}

	_, err = LoadBundle(path)
	if err == nil {
		t.Fatal("LoadBundle should detect a flipped byte via the xxhash trailer")
	}
	var loadErr *TableLoadError
	if !isTableLoadError(err, &loadErr) {
		t.Errorf("corruption should surface as *TableLoadError, got %T", err)
	}
}

func isTableLoadError(err error, target **TableLoadError) bool {
	le, ok := err.(*TableLoadError)
	if ok {
		*target = le
	}
	return ok
}
