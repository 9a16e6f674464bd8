package syntax

import (
	"cslines/internal/source"
)

// Node is a read-only handle onto a node of a Tree.
type Node struct {
	tree *Tree
	id   NodeID
}

// Valid reports whether the handle refers to a node.
func (n Node) Valid() bool { return n.tree != nil && n.id.IsValid() }

func (n Node) ID() NodeID { return n.id }

func (n Node) Kind() NodeKind {
	if !n.Valid() {
		return NodeInvalid
	}
	return n.tree.node(n.id).kind
}

// Parent returns the enclosing node; the root's parent is invalid.
func (n Node) Parent() Node {
	if !n.Valid() {
		return Node{}
	}
	return Node{tree: n.tree, id: n.tree.node(n.id).parent}
}

// Children returns the direct child nodes in source order.
func (n Node) Children() []Node {
	if !n.Valid() {
		return nil
	}
	ids := n.tree.node(n.id).children
	out := make([]Node, len(ids))
	for i, id := range ids {
		out[i] = Node{tree: n.tree, id: id}
	}
	return out
}

// Child returns the first direct child of the given kind.
func (n Node) Child(kind NodeKind) Node {
	if !n.Valid() {
		return Node{}
	}
	for _, id := range n.tree.node(n.id).children {
		if n.tree.node(id).kind == kind {
			return Node{tree: n.tree, id: id}
		}
	}
	return Node{}
}

// Tokens returns every token the node covers, zero-width tokens included.
func (n Node) Tokens() []Token {
	if !n.Valid() {
		return nil
	}
	nd := n.tree.node(n.id)
	if !nd.firstTok.IsValid() {
		return nil
	}
	out := make([]Token, 0, nd.lastTok-nd.firstTok+1)
	for id := nd.firstTok; id <= nd.lastTok; id++ {
		out = append(out, Token{tree: n.tree, id: id})
	}
	return out
}

// OwnTokens returns the tokens whose direct parent is n.
func (n Node) OwnTokens() []Token {
	var out []Token
	for _, tok := range n.Tokens() {
		if tok.tree.tok(tok.id).parent == n.id {
			out = append(out, tok)
		}
	}
	return out
}

// FirstToken returns the first token of the node that has a non-zero width.
// Synthesized tokens are skipped, so a node made only of them has no first token.
func (n Node) FirstToken() Token {
	if !n.Valid() {
		return Token{}
	}
	nd := n.tree.node(n.id)
	if !nd.firstTok.IsValid() {
		return Token{}
	}
	for id := nd.firstTok; id <= nd.lastTok; id++ {
		if n.tree.tok(id).tok.Width() > 0 {
			return Token{tree: n.tree, id: id}
		}
	}
	return Token{}
}

// LastToken returns the last token of the node that has a non-zero width.
func (n Node) LastToken() Token {
	if !n.Valid() {
		return Token{}
	}
	nd := n.tree.node(n.id)
	if !nd.firstTok.IsValid() {
		return Token{}
	}
	for id := nd.lastTok; id >= nd.firstTok; id-- {
		if n.tree.tok(id).tok.Width() > 0 {
			return Token{tree: n.tree, id: id}
		}
	}
	return Token{}
}

// Contains reports whether tok lies within the node's token range.
func (n Node) Contains(tok Token) bool {
	if !n.Valid() || !tok.Valid() || n.tree != tok.tree {
		return false
	}
	nd := n.tree.node(n.id)
	return nd.firstTok.IsValid() && tok.id >= nd.firstTok && tok.id <= nd.lastTok
}

// Span covers the node's tokens.
func (n Node) Span() source.Span {
	if !n.Valid() {
		return source.Span{}
	}
	nd := n.tree.node(n.id)
	if !nd.firstTok.IsValid() {
		return source.Span{File: n.tree.file.ID}
	}
	return n.tree.tok(nd.firstTok).tok.Span.Cover(n.tree.tok(nd.lastTok).tok.Span)
}

// Ancestor returns the nearest node, n itself included, whose kind is in set.
func (n Node) Ancestor(set *KindSet) Node {
	return n.AncestorFunc(set.Has)
}

// AncestorFunc returns the nearest node, n itself included, satisfying match.
func (n Node) AncestorFunc(match func(NodeKind) bool) Node {
	for cur := n; cur.Valid(); cur = cur.Parent() {
		if match(cur.Kind()) {
			return cur
		}
	}
	return Node{}
}
