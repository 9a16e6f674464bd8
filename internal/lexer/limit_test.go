package lexer

import (
	"strings"
	"testing"

	"cslines/internal/diag"
	"cslines/internal/source"
	"cslines/internal/token"
)

func TestTokenTooLongTriggersDiagnosticAndStops(t *testing.T) {
	content := strings.Repeat("a", maxTokenLength+1) + " b"
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("long.cs", []byte(content)))

	bag := diag.NewBag(4)
	lx := New(file, Options{Reporter: diag.BagReporter{Bag: bag}})

	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected invalid token, got %v", tok.Kind)
	}
	items := bag.Items()
	if len(items) == 0 || items[0].Code != diag.LexTokenTooLong {
		t.Fatalf("expected LexTokenTooLong, got %+v", items)
	}
	if next := lx.Next(); next.Kind != token.EOF {
		t.Fatalf("expected EOF after long token, got %v", next.Kind)
	}
}

func TestCursorLineStart(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("c.cs", []byte("a\n  #x")))
	c := NewCursor(file)
	if !c.AtLineStart() {
		t.Fatalf("offset 0 is a line start")
	}
	c.Off = 1
	if c.AtLineStart() {
		t.Fatalf("offset 1 follows 'a'")
	}
	c.Off = 4
	if !c.AtLineStart() || c.Peek() != '#' {
		t.Fatalf("offset 4 should be an indented line start at '#'")
	}
	if c.PeekAt(5) != 0 {
		t.Fatalf("PeekAt past end must be 0")
	}
}
