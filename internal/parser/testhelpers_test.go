package parser

import (
	"fmt"
	"strings"
	"testing"

	"cslines/internal/diag"
	"cslines/internal/source"
	"cslines/internal/syntax"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func parseSource(t *testing.T, src string) (*syntax.Tree, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.cs", []byte(src)))
	bag := diag.NewBag(0)
	res, err := ParseFile(file, Options{Reporter: diag.BagReporter{Bag: bag}})
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	return res.Tree, bag
}

func parseClean(t *testing.T, src string) *syntax.Tree {
	t.Helper()
	tree, bag := parseSource(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	return tree
}

// nodesOf walks the tree in pre-order and returns every node of kind.
func nodesOf(root syntax.Node, kind syntax.NodeKind) []syntax.Node {
	var out []syntax.Node
	var walk func(n syntax.Node)
	walk = func(n syntax.Node) {
		if n.Kind() == kind {
			out = append(out, n)
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(root)
	return out
}

func missingTokens(tree *syntax.Tree) []syntax.Token {
	var out []syntax.Token
	for id := syntax.TokenID(1); int(id) <= tree.TokenCount(); id++ {
		if tok := tree.Token(id); tok.IsMissing() {
			out = append(out, tok)
		}
	}
	return out
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}
