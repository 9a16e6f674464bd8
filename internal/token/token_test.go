package token_test

import (
	"testing"

	"cslines/internal/source"
	"cslines/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestDelimiterClassification(t *testing.T) {
	open := []token.Kind{token.LBrace, token.LBracket, token.LParen, token.LAngle}
	closing := []token.Kind{token.RBrace, token.RBracket, token.RParen, token.RAngle}
	for _, k := range open {
		if !k.IsOpenDelimiter() || k.IsCloseDelimiter() || !k.IsDelimiter() {
			t.Fatalf("%v should be an opening delimiter", k)
		}
	}
	for _, k := range closing {
		if !k.IsCloseDelimiter() || k.IsOpenDelimiter() || !k.IsDelimiter() {
			t.Fatalf("%v should be a closing delimiter", k)
		}
	}
	// plain comparison operators are not delimiters until the parser re-tags them
	for _, k := range []token.Kind{token.Lt, token.Gt, token.Semicolon, token.Comma} {
		if k.IsDelimiter() {
			t.Fatalf("%v must NOT be a delimiter", k)
		}
	}
}

func TestKeywordRanges(t *testing.T) {
	for _, k := range []token.Kind{token.KwNamespace, token.KwAs, token.KwGet, token.KwGlobal} {
		if !tok(k).IsKeyword() {
			t.Fatalf("%v should be keyword", k)
		}
	}
	for _, k := range []token.Kind{token.Ident, token.IntLit, token.LBrace, token.EOF} {
		if tok(k).IsKeyword() {
			t.Fatalf("%v must NOT be keyword", k)
		}
	}
	if !tok(token.Semicolon).IsPunctOrOp() || tok(token.Ident).IsPunctOrOp() {
		t.Fatalf("punctuation range is wrong")
	}
}

func TestLookup(t *testing.T) {
	if k, ok := token.LookupKeyword("namespace"); !ok || k != token.KwNamespace {
		t.Fatalf("LookupKeyword(namespace) = %v, %v", k, ok)
	}
	if _, ok := token.LookupKeyword("get"); ok {
		t.Fatalf("get is contextual and must not be reserved")
	}
	if k, ok := token.LookupContextual("get"); !ok || k != token.KwGet {
		t.Fatalf("LookupContextual(get) = %v, %v", k, ok)
	}
	if _, ok := token.LookupKeyword("Namespace"); ok {
		t.Fatalf("keywords are case sensitive")
	}
}

func TestWidth(t *testing.T) {
	solid := token.Token{Kind: token.Ident, Span: source.Span{Start: 3, End: 7}, Text: "Name"}
	if solid.Width() != 4 {
		t.Fatalf("Width = %d, want 4", solid.Width())
	}
	missing := token.Token{Kind: token.Semicolon, Span: source.Span{Start: 9, End: 9}, Missing: true}
	if missing.Width() != 0 {
		t.Fatalf("missing token must be zero width")
	}
}

func TestKindString(t *testing.T) {
	cases := map[token.Kind]string{
		token.RBrace: "}", token.KwGet: "get", token.EOF: "EOF", token.LAngle: "<",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("String(%d) = %q, want %q", k, got, want)
		}
	}
}
