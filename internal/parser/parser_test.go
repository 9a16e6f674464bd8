package parser

import (
	"testing"

	"cslines/internal/diag"
	"cslines/internal/source"
	"cslines/internal/syntax"
	"cslines/internal/token"
)

const sampleSource = `using System;
using static System.Math;
using IO = System.IO;

namespace App
{
    [Serializable]
    public partial class Widget<T> : Base, IFoo where T : class
    {
        private int _count = 0, _other;
        public event EventHandler Changed;
        public int Count { get; private set; } = 1;
        public string Name { get => _name; set { _name = value; } }
        public T this[int i] => default;
        public Widget(int n) : base(n) { _count = n; }
        public static Widget<T> operator +(Widget<T> a, Widget<T> b) => a;
        public async Task<List<int>> LoadAsync<U>(U arg) where U : new()
        {
            if (arg == null) { return null; } else { throw new X(); }
            var list = new List<int>();
            return list;
        }
        ~Widget() { }
    }

    public enum Color { Red, Green = 2, Blue }
    public delegate void Handler(object sender);
    record Point(int X, int Y);
}
`

func TestParseDeclarations(t *testing.T) {
	tree := parseClean(t, sampleSource)
	root := tree.Root()

	counts := []struct {
		kind syntax.NodeKind
		want int
	}{
		{syntax.NodeUsingDirective, 3},
		{syntax.NodeNamespaceDecl, 1},
		{syntax.NodeAttributeList, 1},
		{syntax.NodeClassDecl, 1},
		{syntax.NodeFieldDecl, 1},
		{syntax.NodeEventFieldDecl, 1},
		{syntax.NodePropertyDecl, 2},
		{syntax.NodeIndexerDecl, 1},
		{syntax.NodeConstructorDecl, 1},
		{syntax.NodeMethodDecl, 3},
		{syntax.NodeEnumDecl, 1},
		{syntax.NodeEnumMember, 3},
		{syntax.NodeDelegateDecl, 1},
		{syntax.NodeRecordDecl, 1},
		{syntax.NodeAccessorDecl, 4},
		{syntax.NodeSkippedTokens, 0},
	}
	for _, c := range counts {
		if got := len(nodesOf(root, c.kind)); got != c.want {
			t.Errorf("%s: got %d nodes, want %d", c.kind, got, c.want)
		}
	}

	last := tree.Token(syntax.TokenID(tree.TokenCount()))
	if last.Kind() != token.EOF || last.Parent().Kind() != syntax.NodeCompilationUnit {
		t.Fatalf("last token must be EOF owned by the compilation unit, got %s in %s", last.Kind(), last.Parent().Kind())
	}
	if len(missingTokens(tree)) != 0 {
		t.Fatalf("clean source must not synthesize tokens")
	}
}

func TestContextualKeywordsAreRetagged(t *testing.T) {
	tree := parseClean(t, "class C { int get; int P { get; init; } partial void M(); }")
	var kinds []token.Kind
	for id := syntax.TokenID(1); int(id) <= tree.TokenCount(); id++ {
		tok := tree.Token(id)
		if tok.Text() == "get" || tok.Text() == "init" || tok.Text() == "partial" {
			kinds = append(kinds, tok.Kind())
		}
	}
	want := []token.Kind{token.Ident, token.KwGet, token.KwInit, token.KwPartial}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestAngleBracketsInTypesAreRetagged(t *testing.T) {
	tree := parseClean(t, "class C { Dictionary<string, List<int>> map; bool b = x < y; }")
	angles, plain := 0, 0
	for id := syntax.TokenID(1); int(id) <= tree.TokenCount(); id++ {
		switch tree.Token(id).Kind() {
		case token.LAngle, token.RAngle:
			angles++
		case token.Lt, token.Gt:
			plain++
		}
	}
	if angles != 4 || plain != 1 {
		t.Fatalf("angles=%d plain=%d, want 4 and 1", angles, plain)
	}
	if got := len(nodesOf(tree.Root(), syntax.NodeTypeArgumentList)); got != 2 {
		t.Fatalf("type argument lists = %d, want 2", got)
	}
}

func TestMissingSemicolonIsPlacedOnNextLine(t *testing.T) {
	src := "using System\nnamespace N { }\n"
	tree, bag := parseSource(t, src)
	if !hasCode(bag, diag.SynExpectSemicolon) {
		t.Fatalf("expected SynExpectSemicolon, got %s", diagnosticsSummary(bag))
	}
	missing := missingTokens(tree)
	if len(missing) != 1 {
		t.Fatalf("got %d missing tokens, want 1", len(missing))
	}
	semi := missing[0]
	if semi.Kind() != token.Semicolon || semi.Width() != 0 {
		t.Fatalf("missing token = %s width %d", semi.Kind(), semi.Width())
	}
	if semi.Span().Start != 13 {
		t.Fatalf("missing semicolon at %d, want 13 (start of the next line)", semi.Span().Start)
	}
	if semi.Parent().Kind() != syntax.NodeUsingDirective {
		t.Fatalf("missing semicolon belongs to %s", semi.Parent().Kind())
	}
	if got := tree.LineDifference(semi.PrevReal(), semi); got != 1 {
		t.Fatalf("line difference to synthesized semicolon = %d, want 1", got)
	}
	if semi.Next().Kind() != token.KwNamespace || tree.LineDifference(semi, semi.Next()) != 0 {
		t.Fatalf("namespace keyword must share the line of the synthesized semicolon")
	}
}

func TestMissingSemicolonSameLine(t *testing.T) {
	tree, _ := parseSource(t, "class C { int x }")
	missing := missingTokens(tree)
	if len(missing) != 1 || missing[0].Kind() != token.Semicolon {
		t.Fatalf("expected one missing semicolon, got %d", len(missing))
	}
	// сразу после 'x'
	if missing[0].Span().Start != 15 {
		t.Fatalf("missing semicolon at %d, want 15", missing[0].Span().Start)
	}
}

func TestMissingBracesAtEOF(t *testing.T) {
	src := "class C {\n  void M() {\n"
	tree, bag := parseSource(t, src)
	missing := missingTokens(tree)
	if len(missing) != 2 {
		t.Fatalf("got %d missing tokens, want 2: %s", len(missing), diagnosticsSummary(bag))
	}
	for _, m := range missing {
		if m.Kind() != token.RBrace {
			t.Fatalf("missing %s, want '}'", m.Kind())
		}
		if int(m.Span().Start) != len(src) {
			t.Fatalf("missing brace at %d, want %d", m.Span().Start, len(src))
		}
	}
	if missing[0].Parent().Kind() != syntax.NodeBlock || missing[1].Parent().Kind() != syntax.NodeClassDecl {
		t.Fatalf("missing braces belong to %s and %s", missing[0].Parent().Kind(), missing[1].Parent().Kind())
	}
	if !hasCode(bag, diag.SynExpectRBrace) {
		t.Fatalf("expected SynExpectRBrace, got %s", diagnosticsSummary(bag))
	}
}

func TestMissingCloseParen(t *testing.T) {
	tree, bag := parseSource(t, "void M(int x {\n}\n")
	missing := missingTokens(tree)
	if len(missing) != 1 || missing[0].Kind() != token.RParen {
		t.Fatalf("expected a missing ')', got %d tokens: %s", len(missing), diagnosticsSummary(bag))
	}
	if missing[0].Span().Start != 12 {
		t.Fatalf("missing ')' at %d, want 12", missing[0].Span().Start)
	}
	if missing[0].Parent().Kind() != syntax.NodeParameterList {
		t.Fatalf("missing ')' belongs to %s", missing[0].Parent().Kind())
	}
	if n := nodesOf(tree.Root(), syntax.NodeMethodDecl); len(n) != 1 || n[0].Parent().Kind() != syntax.NodeCompilationUnit {
		t.Fatalf("expected one global method")
	}
}

func TestTopLevelStatementsAndGlobalMembers(t *testing.T) {
	tree := parseClean(t, "Console.WriteLine(\"hi\");\nint Add(int a, int b) => a + b;\nif (x) { y(); }\n")
	kids := tree.Root().Children()
	want := []syntax.NodeKind{syntax.NodeStatement, syntax.NodeMethodDecl, syntax.NodeStatement}
	if len(kids) != len(want) {
		t.Fatalf("got %d children, want %d", len(kids), len(want))
	}
	for i, k := range want {
		if kids[i].Kind() != k {
			t.Errorf("child %d: got %s, want %s", i, kids[i].Kind(), k)
		}
	}
}

func TestFileScopedNamespace(t *testing.T) {
	tree := parseClean(t, "namespace N;\n\nusing X;\n\nclass C { }\n")
	ns := tree.Root().Child(syntax.NodeFileScopedNamespaceDecl)
	if !ns.Valid() {
		t.Fatalf("file-scoped namespace not found")
	}
	if !ns.Child(syntax.NodeUsingDirective).Valid() || !ns.Child(syntax.NodeClassDecl).Valid() {
		t.Fatalf("using and class must be nested in the file-scoped namespace")
	}
	last := tree.Token(syntax.TokenID(tree.TokenCount()))
	if last.Parent().Kind() != syntax.NodeCompilationUnit {
		t.Fatalf("EOF must stay in the compilation unit")
	}
}

func TestFileScopedNamespaceMissingSemicolon(t *testing.T) {
	tree, bag := parseSource(t, "namespace N\nclass C { }\n")
	if !hasCode(bag, diag.SynExpectSemicolon) || hasCode(bag, diag.SynExpectLBrace) {
		t.Fatalf("want only a missing semicolon, got %s", diagnosticsSummary(bag))
	}
	ns := tree.Root().Child(syntax.NodeFileScopedNamespaceDecl)
	if !ns.Valid() || !ns.Child(syntax.NodeClassDecl).Valid() {
		t.Fatalf("class must be nested in a file-scoped namespace")
	}
	missing := missingTokens(tree)
	if len(missing) != 1 || missing[0].Kind() != token.Semicolon {
		t.Fatalf("got %d missing tokens, want one ';'", len(missing))
	}
	if missing[0].Parent().Kind() != syntax.NodeFileScopedNamespaceDecl {
		t.Fatalf("';' belongs to %s", missing[0].Parent().Kind())
	}
}

func TestNamespaceMissingBrace(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"same line", "namespace N class C { } }\n"},
		{"nested", "namespace A {\nnamespace B\nclass C { }\n}\n}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, bag := parseSource(t, tt.src)
			if !hasCode(bag, diag.SynExpectLBrace) {
				t.Fatalf("expected SynExpectLBrace, got %s", diagnosticsSummary(bag))
			}
			if len(nodesOf(tree.Root(), syntax.NodeFileScopedNamespaceDecl)) != 0 {
				t.Fatalf("unexpected file-scoped namespace")
			}
			missing := missingTokens(tree)
			if len(missing) != 1 || missing[0].Kind() != token.LBrace {
				t.Fatalf("got %d missing tokens, want one '{'", len(missing))
			}
		})
	}
}

func TestSkippedTokens(t *testing.T) {
	tree, bag := parseSource(t, "class C { ) int x; }")
	skipped := nodesOf(tree.Root(), syntax.NodeSkippedTokens)
	if len(skipped) != 1 || skipped[0].FirstToken().Kind() != token.RParen {
		t.Fatalf("expected ')' to be skipped, got %d nodes", len(skipped))
	}
	if !hasCode(bag, diag.SynUnexpectedToken) {
		t.Fatalf("expected SynUnexpectedToken, got %s", diagnosticsSummary(bag))
	}
	if len(nodesOf(tree.Root(), syntax.NodeFieldDecl)) != 1 {
		t.Fatalf("parser must recover and parse the field")
	}
}

func TestMaxErrors(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("e.cs", []byte("using A\nusing B\nusing C\n")))
	bag := diag.NewBag(0)
	res, err := ParseFile(file, Options{MaxErrors: 1, Reporter: diag.BagReporter{Bag: bag}})
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if bag.Len() != 1 {
		t.Fatalf("bag holds %d diagnostics, want 1", bag.Len())
	}
	if res.Errors != 3 {
		t.Fatalf("Errors = %d, want 3", res.Errors)
	}
}

func TestAccessorBodies(t *testing.T) {
	tree := parseClean(t, "class C { int P { get { return 1; } set => x = value; } }")
	accessors := nodesOf(tree.Root(), syntax.NodeAccessorDecl)
	if len(accessors) != 2 {
		t.Fatalf("got %d accessors", len(accessors))
	}
	if !accessors[0].Child(syntax.NodeBlock).Valid() {
		t.Fatalf("get accessor must have a block body")
	}
	if !accessors[1].Child(syntax.NodeArrowExpression).Valid() {
		t.Fatalf("set accessor must have an expression body")
	}
}

func TestLexerErrorsAreCounted(t *testing.T) {
	tree, bag := parseSource(t, "class C { string s = \"open\n; }")
	if !hasCode(bag, diag.LexUnterminatedString) {
		t.Fatalf("expected lexer diagnostic, got %s", diagnosticsSummary(bag))
	}
	if tree == nil {
		t.Fatalf("tree must be produced despite lexer errors")
	}
}
