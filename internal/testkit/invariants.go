package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"cslines/internal/source"
	"cslines/internal/syntax"
	"cslines/internal/token"
)

// CheckTreeInvariants runs the structural invariants every finished tree must hold:
// 1) tokens are in document order, within content bounds, and all have a parent
// 2) the last token is EOF
// 3) every node's token range lies inside its parent's range
// 4) ancestor lookup is inclusive of the node itself
func CheckTreeInvariants(tree *syntax.Tree) error {
	if tree == nil {
		return fmt.Errorf("nil tree")
	}
	sf := tree.File()
	if sf == nil {
		return fmt.Errorf("tree has no file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	n := tree.TokenCount()
	if n == 0 {
		return fmt.Errorf("tree has no tokens")
	}

	// 1) document order
	var prevEnd uint32
	for id := syntax.TokenID(1); int(id) <= n; id++ {
		tok := tree.Token(id)
		sp := tok.Span()
		if sp.File != sf.ID {
			return fmt.Errorf("token %d span file mismatch: got=%d want=%d", id, sp.File, sf.ID)
		}
		if sp.End < sp.Start || sp.End > lenContent {
			return fmt.Errorf("token %d span %v out of bounds (content %d)", id, sp, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d (%s) starts at %d before previous end %d", id, tok.Kind(), sp.Start, prevEnd)
		}
		prevEnd = sp.End
		if !tok.Parent().Valid() {
			return fmt.Errorf("token %d (%s) has no parent", id, tok.Kind())
		}
		if tok.IsMissing() && tok.Width() != 0 {
			return fmt.Errorf("missing token %d (%s) has width %d", id, tok.Kind(), tok.Width())
		}
	}

	// 2) EOF last
	if last := tree.Token(syntax.TokenID(n)); last.Kind() != token.EOF {
		return fmt.Errorf("last token is %s, want EOF", last.Kind())
	}

	// 3) + 4)
	var walk func(nd syntax.Node) error
	walk = func(nd syntax.Node) error {
		if got := nd.AncestorFunc(func(k syntax.NodeKind) bool { return k == nd.Kind() }); got.ID() != nd.ID() {
			return fmt.Errorf("ancestor of node %d (%s) is not inclusive", nd.ID(), nd.Kind())
		}
		toks := nd.Tokens()
		for _, c := range nd.Children() {
			if c.Parent().ID() != nd.ID() {
				return fmt.Errorf("child %d of node %d reports parent %d", c.ID(), nd.ID(), c.Parent().ID())
			}
			ct := c.Tokens()
			if len(ct) > 0 && (!nd.Contains(ct[0]) || !nd.Contains(ct[len(ct)-1])) {
				return fmt.Errorf("child %d (%s) escapes parent %d (%s)", c.ID(), c.Kind(), nd.ID(), nd.Kind())
			}
			if err := walk(c); err != nil {
				return err
			}
		}
		for _, tok := range toks {
			if !tok.Parent().Contains(tok) {
				return fmt.Errorf("token %d not inside its parent %d", tok.ID(), tok.Parent().ID())
			}
		}
		return nil
	}
	return walk(tree.Root())
}

// CheckSpan reports whether sp lies inside sf's content.
func CheckSpan(sf *source.File, sp source.Span) error {
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if sp.File != sf.ID || sp.End < sp.Start || sp.End > lenContent {
		return fmt.Errorf("span %v outside file %d (len %d)", sp, sf.ID, lenContent)
	}
	return nil
}
