package diag

import (
	"testing"

	"cslines/internal/source"
)

func TestBagLimitAndErrors(t *testing.T) {
	bag := NewBag(2)
	r := BagReporter{Bag: bag}
	r.Report(SynExpectSemicolon, SevWarning, source.Span{}, "w", nil)
	if bag.HasErrors() {
		t.Fatalf("warning must not count as error")
	}
	r.Report(SynExpectRBrace, SevError, source.Span{}, "e", nil)
	r.Report(SynExpectRParen, SevError, source.Span{}, "dropped", nil)
	if bag.Len() != 2 {
		t.Fatalf("bag must respect its limit, got %d items", bag.Len())
	}
	if !bag.HasErrors() {
		t.Fatalf("expected HasErrors after an error report")
	}
}

func TestCodeID(t *testing.T) {
	cases := map[Code]string{
		LexUnknownChar:     "LEX1001",
		SynExpectSemicolon: "SYN2002",
		IOLoadFileError:    "IO4001",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Fatalf("ID(%d) = %q, want %q", code, got, want)
		}
	}
	if Code(9999).Title() != "Unknown error" {
		t.Fatalf("unknown codes must fall back to the generic title")
	}
}

func TestFormatShortSortsAndPositions(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.cs", []byte("using A\nclass C {"))
	bag := NewBag(0)
	bag.Add(Diagnostic{Severity: SevError, Code: SynExpectRBrace, Message: "expected '}'", Primary: source.Span{File: id, Start: 17, End: 17}})
	bag.Add(Diagnostic{Severity: SevError, Code: SynExpectSemicolon, Message: "expected ';'", Primary: source.Span{File: id, Start: 7, End: 7}})
	bag.Sort()

	got := FormatShort(bag.Items(), fs)
	want := "a.cs:1:8: ERROR SYN2002: expected ';'\n" +
		"a.cs:2:10: ERROR SYN2003: expected '}'\n"
	if got != want {
		t.Fatalf("FormatShort mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestBagCountsDropped(t *testing.T) {
	bag := NewBag(1)
	bag.Add(Diagnostic{Severity: SevWarning})
	bag.Add(Diagnostic{Severity: SevError})
	bag.Add(Diagnostic{Severity: SevError})
	if bag.Len() != 1 || bag.Dropped() != 2 {
		t.Fatalf("len=%d dropped=%d, want 1 and 2", bag.Len(), bag.Dropped())
	}
	if bag.Count(SevWarning) != 1 || bag.Count(SevError) != 0 {
		t.Fatalf("counts: warning+=%d error=%d", bag.Count(SevWarning), bag.Count(SevError))
	}
	if NewBag(-5).Cap() != 0 {
		t.Fatal("negative limit must mean unbounded")
	}
}

func TestSeverityText(t *testing.T) {
	for sev, want := range map[Severity]string{SevInfo: "INFO", SevWarning: "WARNING", SevError: "ERROR", Severity(9): "UNKNOWN"} {
		text, err := sev.MarshalText()
		if err != nil || string(text) != want {
			t.Errorf("MarshalText(%d) = %q, %v; want %q", sev, text, err, want)
		}
	}
}
