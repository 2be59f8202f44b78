package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"texlog/internal/source"
)

func TestFileSetAddVirtual(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.log", []byte("one\ntwo\n"))
	f := fs.Get(id)
	if f == nil {
		t.Fatal("Get() returned nil for a fresh id")
	}
	if f.Flags&source.FileVirtual == 0 {
		t.Error("AddVirtual should mark the file virtual")
	}
	if got, ok := fs.Lookup("test.log"); !ok || got.ID != id {
		t.Error("Lookup should find the file by path")
	}
}

func TestFileSetLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	if err := os.WriteFile(path, []byte("a\r\nb\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "a\nb\n" {
		t.Errorf("Content = %q, want normalized newlines", f.Content)
	}
	if f.Flags&source.FileNormalizedCRLF == 0 {
		t.Error("Load should flag CRLF normalization")
	}
}

func TestFileSetPosition(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.log", []byte("ab\ncdef\n"))

	tests := []struct {
		off  uint32
		want source.LineCol
	}{
		{0, source.LineCol{Line: 1, Col: 1}},
		{1, source.LineCol{Line: 1, Col: 2}},
		{3, source.LineCol{Line: 2, Col: 1}},
		{6, source.LineCol{Line: 2, Col: 4}},
	}
	for _, tt := range tests {
		if got := fs.Position(id, tt.off); got != tt.want {
			t.Errorf("Position(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
}

func TestSpanCover(t *testing.T) {
	a := source.Span{File: 1, Start: 5, End: 10}
	b := source.Span{File: 1, Start: 8, End: 20}
	got := a.Cover(b)
	if got.Start != 5 || got.End != 20 {
		t.Errorf("Cover() = %v", got)
	}
	other := source.Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover() across files = %v, want unchanged", got)
	}
}
