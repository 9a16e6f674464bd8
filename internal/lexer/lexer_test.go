package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"cslines/internal/diag"
	"cslines/internal/lexer"
	"cslines/internal/source"
	"cslines/internal/token"
)

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.cs", []byte(input)))
	bag := diag.NewBag(0)
	return lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}}), bag
}

func kindsOf(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		out = append(out, tok.Kind)
	}
	return out
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// expectTokens проверяет последовательность токенов без EOF
func expectTokens(t *testing.T, input string, expected ...token.Kind) {
	t.Helper()
	lx, bag := makeTestLexer(input)
	tokens := lx.All()
	got := kindsOf(tokens)
	if len(got) != len(expected) {
		t.Fatalf("input %q: expected %d tokens, got %d: %s (diags %d)",
			input, len(expected), len(got), tokensToString(tokens), bag.Len())
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Errorf("input %q: token %d: expected %v, got %v (%q)", input, i, expected[i], got[i], tokens[i].Text)
		}
	}
}

func expectSingle(t *testing.T, input string, kind token.Kind, text string) {
	t.Helper()
	lx, bag := makeTestLexer(input)
	tok := lx.Next()
	if tok.Kind != kind || tok.Text != text {
		t.Fatalf("input %q: got %v(%q), want %v(%q)", input, tok.Kind, tok.Text, kind, text)
	}
	if kind != token.Invalid && bag.HasErrors() {
		t.Fatalf("input %q: unexpected diagnostics %+v", input, bag.Items())
	}
	if next := lx.Next(); next.Kind != token.EOF {
		t.Fatalf("input %q: expected EOF after single token, got %v(%q)", input, next.Kind, next.Text)
	}
}

func expectDiag(t *testing.T, input string, code diag.Code) {
	t.Helper()
	lx, bag := makeTestLexer(input)
	lx.All()
	for _, d := range bag.Items() {
		if d.Code == code {
			return
		}
	}
	t.Fatalf("input %q: expected %s, got %+v", input, code.ID(), bag.Items())
}

func TestKeywordsAndContextualIdentifiers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"namespace", token.KwNamespace},
		{"using", token.KwUsing},
		{"class", token.KwClass},
		{"public", token.KwPublic},
		{"override", token.KwOverride},
		{"return", token.KwReturn},
		{"null", token.KwNull},
		// контекстные остаются идентификаторами
		{"get", token.Ident},
		{"set", token.Ident},
		{"record", token.Ident},
		{"global", token.Ident},
		{"int", token.Ident},
		{"Namespace", token.Ident},
		{"_", token.Ident},
		{"@class", token.Ident},
		{"имя", token.Ident},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingle(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"0", token.IntLit},
		{"1_000", token.IntLit},
		{"0xFF", token.IntLit},
		{"0b1010", token.IntLit},
		{"10UL", token.IntLit},
		{"1.5", token.RealLit},
		{".5", token.RealLit},
		{"1e-3", token.RealLit},
		{"2f", token.RealLit},
		{"3.0m", token.RealLit},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingle(t, tt.input, tt.kind, tt.input)
		})
	}
	expectTokens(t, "1.ToString()", token.IntLit, token.Dot, token.Ident, token.LParen, token.RParen)
	expectDiag(t, "0x", diag.LexBadNumber)
	expectDiag(t, "1e+", diag.LexBadNumber)
	expectDiag(t, "12abc", diag.LexBadNumber)
}

func TestStringsAndChars(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{`"hello"`, token.StringLit},
		{`"a\"b"`, token.StringLit},
		{`@"C:\path"`, token.StringLit},
		{"@\"two\nlines\"", token.StringLit},
		{`@"say ""hi"""`, token.StringLit},
		{`$"x = {x}"`, token.InterpolatedStringLit},
		{`$"{{literal}}"`, token.InterpolatedStringLit},
		{`$"{(a ? "}" : "{")}"`, token.InterpolatedStringLit},
		{`$@"{a}\"`, token.InterpolatedStringLit},
		{`@$"{a}"`, token.InterpolatedStringLit},
		{`'a'`, token.CharLit},
		{`'\n'`, token.CharLit},
		{`'\''`, token.CharLit},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingle(t, tt.input, tt.kind, tt.input)
		})
	}
	expectDiag(t, `"open`, diag.LexUnterminatedString)
	expectDiag(t, "\"line\nbreak\"", diag.LexUnterminatedString)
	expectDiag(t, `@"never`, diag.LexUnterminatedString)
	expectDiag(t, `$"{a`, diag.LexUnterminatedString)
	expectDiag(t, `'x`, diag.LexUnterminatedChar)
}

func TestOperators(t *testing.T) {
	expectTokens(t, "a += b << c <<= d",
		token.Ident, token.PlusAssign, token.Ident, token.Shl, token.Ident, token.ShlAssign, token.Ident)
	expectTokens(t, "x => y ?? z?.w",
		token.Ident, token.FatArrow, token.Ident, token.QuestionQuestion, token.Ident, token.Question, token.Dot, token.Ident)
	// '>>' never forms a single token
	expectTokens(t, "List<List<int>>",
		token.Ident, token.Lt, token.Ident, token.Lt, token.Ident, token.Gt, token.Gt)
	expectTokens(t, "a >>= 1", token.Ident, token.Gt, token.GtEq, token.IntLit)
	expectTokens(t, "{ } ( ) [ ] ; , : ::",
		token.LBrace, token.RBrace, token.LParen, token.RParen, token.LBracket, token.RBracket,
		token.Semicolon, token.Comma, token.Colon, token.ColonColon)
	expectDiag(t, "a ` b", diag.LexUnknownChar)
	expectDiag(t, "@ 1", diag.LexUnknownChar)
}

func TestLeadingTrivia(t *testing.T) {
	input := "#region X\n  // note\n/// <summary/>\n/* block\n */ class\n"
	lx, bag := makeTestLexer(input)
	tok := lx.Next()
	if tok.Kind != token.KwClass {
		t.Fatalf("expected class, got %v(%q)", tok.Kind, tok.Text)
	}
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	want := []token.TriviaKind{
		token.TriviaPreprocessor, token.TriviaNewline,
		token.TriviaSpace, token.TriviaLineComment, token.TriviaNewline,
		token.TriviaDocLine, token.TriviaNewline,
		token.TriviaBlockComment, token.TriviaSpace,
	}
	if len(tok.Leading) != len(want) {
		t.Fatalf("got %d trivia, want %d: %+v", len(tok.Leading), len(want), tok.Leading)
	}
	for i, tr := range tok.Leading {
		if tr.Kind != want[i] {
			t.Errorf("trivia %d: got %v, want %v (%q)", i, tr.Kind, want[i], tr.Text)
		}
	}
	if tok.Leading[0].Text != "#region X" {
		t.Fatalf("preprocessor text = %q", tok.Leading[0].Text)
	}

	eof := lx.Next()
	if eof.Kind != token.EOF || len(eof.Leading) != 1 || eof.Leading[0].Kind != token.TriviaNewline {
		t.Fatalf("trailing newline must attach to EOF, got %v %+v", eof.Kind, eof.Leading)
	}
	if eof.Width() != 0 || int(eof.Span.Start) != len(input) {
		t.Fatalf("EOF span = %v", eof.Span)
	}
}

func TestHashInsideLineIsNotDirective(t *testing.T) {
	expectDiag(t, "a #b", diag.LexUnknownChar)
	expectDiag(t, "/* never closed", diag.LexUnterminatedBlockComment)
}

func TestSpansCoverText(t *testing.T) {
	input := "namespace N {\n  class C { int x; }\n}\n"
	lx, _ := makeTestLexer(input)
	for _, tok := range lx.All() {
		if got := input[tok.Span.Start:tok.Span.End]; got != tok.Text {
			t.Fatalf("token %v: span text %q != %q", tok.Kind, got, tok.Text)
		}
		for _, tr := range tok.Leading {
			if tr.Span.End > tok.Span.Start {
				t.Fatalf("trivia %v ends after its token starts", tr.Kind)
			}
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("a b")
	if p := lx.Peek(); p.Text != "a" {
		t.Fatalf("Peek = %q", p.Text)
	}
	if n := lx.Next(); n.Text != "a" {
		t.Fatalf("Next after Peek = %q", n.Text)
	}
	if n := lx.Next(); n.Text != "b" {
		t.Fatalf("second Next = %q", n.Text)
	}
	for range 3 {
		if n := lx.Next(); n.Kind != token.EOF {
			t.Fatalf("expected sticky EOF, got %v", n.Kind)
		}
	}
}

func TestUnicodeIdentifiers(t *testing.T) {
	cases := []string{
		"caf\u00e9",
		"e\u0301t\u00e9", // combining acute accent
		"\u216Bth",       // letter number start
		"a\u200Db",       // format character inside
		"\u540D\u524D",
		"x\u0663", // Arabic-Indic digit
	}
	for _, input := range cases {
		expectSingle(t, input, token.Ident, input)
	}
}
