package testkit

import (
	"fmt"

	"cslines/internal/diag"
	"cslines/internal/parser"
	"cslines/internal/source"
	"cslines/internal/syntax"
	"cslines/internal/token"
)

// Parse builds a tree from in-memory source. Diagnostics land in the returned bag.
func Parse(src string) (*syntax.Tree, *diag.Bag, error) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.cs", []byte(src)))
	bag := diag.NewBag(0)
	res, err := parser.ParseFile(file, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if err != nil {
		return nil, bag, err
	}
	return res.Tree, bag, nil
}

// Tokens returns the tree's tokens in document order.
func Tokens(tree *syntax.Tree) []syntax.Token {
	out := make([]syntax.Token, 0, tree.TokenCount())
	for id := syntax.TokenID(1); int(id) <= tree.TokenCount(); id++ {
		out = append(out, tree.Token(id))
	}
	return out
}

// Nth returns the n-th (0-based) token of kind with the given text; text "" matches any.
func Nth(tree *syntax.Tree, kind token.Kind, text string, n int) (syntax.Token, error) {
	for _, tok := range Tokens(tree) {
		if tok.Kind() != kind || (text != "" && tok.Text() != text) {
			continue
		}
		if n == 0 {
			return tok, nil
		}
		n--
	}
	return syntax.Token{}, fmt.Errorf("no token %s %q", kind, text)
}

// Missing returns the synthesized tokens of the tree.
func Missing(tree *syntax.Tree) []syntax.Token {
	var out []syntax.Token
	for _, tok := range Tokens(tree) {
		if tok.IsMissing() {
			out = append(out, tok)
		}
	}
	return out
}
