package source

import "testing"

func newTestFile(content string) *File {
	fs := NewFileSet()
	return fs.Get(fs.AddVirtual("lines.cs", []byte(content)))
}

func TestLine(t *testing.T) {
	f := newTestFile("a\nbb\n\nc")
	tests := []struct {
		off  uint32
		want int
	}{
		{0, 0},
		{1, 0}, // the '\n' itself
		{2, 1},
		{4, 1},
		{5, 2},
		{6, 3},
		{7, 3}, // end of content
	}
	for _, tt := range tests {
		if got := f.Line(tt.off); got != tt.want {
			t.Errorf("Line(%d) = %d, want %d", tt.off, got, tt.want)
		}
	}
}

func TestLineDifference(t *testing.T) {
	f := newTestFile("x;\n\n  y;\nz")
	tests := []struct {
		name     string
		from, to uint32
		want     int
	}{
		{"same line", 0, 1, 0},
		{"blank line between", 2, 6, 2},
		{"next line", 7, 9, 1},
		{"reversed", 10, 0, 0},
		{"equal", 4, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.LineDifference(tt.from, tt.to); got != tt.want {
				t.Fatalf("LineDifference(%d, %d) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIndentationAndGetLine(t *testing.T) {
	f := newTestFile("class C\n{\n\t  int x;\n}")
	if got := f.Indentation(12); got != "\t  " {
		t.Fatalf("Indentation = %q", got)
	}
	if got := f.Indentation(0); got != "" {
		t.Fatalf("Indentation of first line = %q", got)
	}
	if got := f.GetLine(3); got != "\t  int x;" {
		t.Fatalf("GetLine(3) = %q", got)
	}
	if got := f.GetLine(4); got != "}" {
		t.Fatalf("GetLine(4) = %q", got)
	}
	if got := f.GetLine(9); got != "" {
		t.Fatalf("GetLine(9) = %q", got)
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	if got := a.Cover(b); got != (Span{File: 1, Start: 2, End: 8}) {
		t.Fatalf("Cover = %v", got)
	}
	if got := a.Cover(Span{File: 2, Start: 0, End: 100}); got != a {
		t.Fatalf("Cover across files = %v", got)
	}
	if !a.Cover(b).Contains(a) {
		t.Fatalf("cover must contain its input")
	}
}
