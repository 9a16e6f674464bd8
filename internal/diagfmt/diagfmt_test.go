package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"cslines/internal/diag"
	"cslines/internal/lexer"
	"cslines/internal/source"
	"cslines/internal/testkit"
)

func TestPrettyExcerpt(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("/src/a.cs", []byte("class C {\n\tint x\n}\n"))
	diags := []diag.Diagnostic{{
		Severity: diag.SevError,
		Code:     diag.SynExpectSemicolon,
		Message:  "expected ';'",
		Primary:  source.Span{File: id, Start: 15, End: 16},
		Notes:    []diag.Note{{Span: source.Span{File: id, Start: 0, End: 5}, Msg: "in this class"}},
	}}

	var buf bytes.Buffer
	if err := Pretty(&buf, diags, fs, PrettyOpts{Context: 1, ShowNotes: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"/src/a.cs:2:6: ERROR SYN2002: expected ';'",
		" 1 | class C {",
		" 2 |     int x",
		"   |         ^",
		" 3 | }",
		"note: /src/a.cs:1:1: in this class",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrettyWithoutFile(t *testing.T) {
	var buf bytes.Buffer
	diags := []diag.Diagnostic{{Severity: diag.SevWarning, Code: diag.IOLoadFileError, Message: "nope"}}
	if err := Pretty(&buf, diags, nil, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "WARNING IO4001: nope\n" {
		t.Fatalf("got %q", got)
	}
}

func TestJSONLocations(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.cs", []byte("x\nyz\n"))
	diags := []diag.Diagnostic{{Severity: diag.SevError, Code: diag.LexUnknownChar, Message: "bad", Primary: source.Span{File: id, Start: 3, End: 4}}}

	var buf bytes.Buffer
	if err := JSON(&buf, diags, fs); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 1 {
		t.Fatalf("count = %d", out.Count)
	}
	loc := out.Diagnostics[0].Location
	if loc.File != "a.cs" || loc.StartLine != 2 || loc.StartCol != 2 || loc.EndCol != 3 {
		t.Fatalf("location = %+v", loc)
	}
	if out.Diagnostics[0].Code != "LEX1001" {
		t.Fatalf("code = %s", out.Diagnostics[0].Code)
	}
}

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("a.cs", []byte("// hi\nclass C { }")))
	toks := lexer.New(file, lexer.Options{}).All()

	var pretty bytes.Buffer
	if err := FormatTokensPretty(&pretty, toks, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(pretty.String()), "\n")
	if len(lines) != len(toks) {
		t.Fatalf("%d lines for %d tokens:\n%s", len(lines), len(toks), pretty.String())
	}
	if !strings.Contains(lines[0], `"class"`) || !strings.Contains(lines[0], "leading:") {
		t.Errorf("first line %q lacks text or trivia", lines[0])
	}
	if !strings.Contains(lines[len(lines)-1], "EOF") || !strings.Contains(lines[len(lines)-1], "width 0") {
		t.Errorf("last line %q", lines[len(lines)-1])
	}

	var js bytes.Buffer
	if err := FormatTokensJSON(&js, toks); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(js.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != len(toks) || out[0].Width != 5 {
		t.Fatalf("json tokens = %+v", out)
	}
}

func TestFormatTree(t *testing.T) {
	tree, _, err := testkit.Parse("class C { }")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := FormatTree(&buf, tree, TreeOpts{}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "CompilationUnit") || !strings.Contains(out, "─ ClassDecl") {
		t.Fatalf("unexpected outline:\n%s", out)
	}

	buf.Reset()
	if err := FormatTree(&buf, tree, TreeOpts{Tokens: true}); err != nil {
		t.Fatal(err)
	}
	out = buf.String()
	for _, want := range []string{`class "class"`, `Ident "C"`, "EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("outline with tokens missing %q:\n%s", want, out)
		}
	}
}

func TestFormatTreeMarksMissing(t *testing.T) {
	tree, _, err := testkit.Parse("using System")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := FormatTree(&buf, tree, TreeOpts{Tokens: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "; <missing>") {
		t.Fatalf("synthesized ';' not marked:\n%s", buf.String())
	}
}
