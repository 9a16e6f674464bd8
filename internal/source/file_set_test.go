package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.cs", []byte("class A {}"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}
	id2 := fs.Add("test.cs", []byte("class B {}"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	latestID, ok := fs.GetLatest("test.cs")
	if !ok || latestID != id2 {
		t.Fatalf("GetLatest = %d, %v; want %d, true", latestID, ok, id2)
	}
	if got := string(fs.Get(id1).Content); got != "class A {}" {
		t.Errorf("old version content = %q", got)
	}
	if fs.Get(FileID(42)) != nil {
		t.Errorf("Get on unknown id must return nil")
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.cs")
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("using A;\r\nusing B;\r\n")...)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "using A;\nusing B;\n" {
		t.Fatalf("content not normalized: %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("flags = %b, want BOM and CRLF bits", f.Flags)
	}
	if len(f.LineIdx) != 2 {
		t.Fatalf("LineIdx = %v, want 2 entries", f.LineIdx)
	}
}

func TestResolveSpan(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("v.cs", []byte("ab\ncd\n"))
	start, end := fs.Resolve(Span{File: id, Start: 3, End: 5})
	if start != (LineCol{Line: 2, Col: 1}) || end != (LineCol{Line: 2, Col: 3}) {
		t.Fatalf("Resolve = %v..%v", start, end)
	}
}
