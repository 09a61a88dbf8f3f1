package hasher

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestContentHash(t *testing.T) {
	data := []byte("favicon.ico")
	full := ContentHash(data, 0)
	if len(full) != 16 {
		t.Fatalf("full hash length: got %d, want 16", len(full))
	}
	if short := ContentHash(data, 8); short != full[:8] {
		t.Errorf("truncated hash: got %s, want %s", short, full[:8])
	}
	if ContentHash([]byte("og-image.jpg"), 0) == full {
		t.Error("different inputs hashed equal")
	}
}

func TestContentHash_Empty(t *testing.T) {
	// xxhash64 of the empty input with seed 0.
	if got := ContentHash(nil, 0); got != "ef46db3751d8e999" {
		t.Errorf("empty hash: got %s", got)
	}
}

func TestContentHashReader_MatchesBytes(t *testing.T) {
	data := bytes.Repeat([]byte{0x1e, 0x40, 0xaf}, 10000)
	got, err := ContentHashReader(bytes.NewReader(data), 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := ContentHash(data, 0); got != want {
		t.Errorf("reader hash %s != bytes hash %s", got, want)
	}
}

func TestFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.png")
	data := []byte("not really a png")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := FileHash(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != ContentHash(data, 0) {
		t.Errorf("file hash: got %s", got)
	}
	if _, err := FileHash(filepath.Join(t.TempDir(), "missing"), 0); err == nil {
		t.Error("missing file: expected error")
	}
}
