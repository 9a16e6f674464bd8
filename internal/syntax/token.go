package syntax

import (
	"cslines/internal/source"
	"cslines/internal/token"
)

// Token is a read-only handle onto a token of a Tree.
type Token struct {
	tree *Tree
	id   TokenID
}

// Valid reports whether the handle refers to a token.
func (t Token) Valid() bool { return t.tree != nil && t.id.IsValid() }

func (t Token) ID() TokenID { return t.id }
func (t Token) Tree() *Tree { return t.tree }

// Raw returns a copy of the underlying lexical token.
func (t Token) Raw() token.Token {
	if !t.Valid() {
		return token.Token{}
	}
	return t.tree.tok(t.id).tok
}

func (t Token) Kind() token.Kind {
	if !t.Valid() {
		return token.Invalid
	}
	return t.tree.tok(t.id).tok.Kind
}

// Width is zero for synthesized, EOF and otherwise empty tokens.
func (t Token) Width() int {
	if !t.Valid() {
		return 0
	}
	return t.tree.tok(t.id).tok.Width()
}

func (t Token) Span() source.Span {
	if !t.Valid() {
		return source.Span{}
	}
	return t.tree.tok(t.id).tok.Span
}

func (t Token) Text() string {
	if !t.Valid() {
		return ""
	}
	return t.tree.tok(t.id).tok.Text
}

// IsMissing reports whether the parser synthesized the token.
func (t Token) IsMissing() bool {
	return t.Valid() && t.tree.tok(t.id).tok.Missing
}

// Parent returns the node that directly contains the token.
func (t Token) Parent() Node {
	if !t.Valid() {
		return Node{}
	}
	return Node{tree: t.tree, id: t.tree.tok(t.id).parent}
}

// Prev returns the preceding token in document order, or an invalid handle.
func (t Token) Prev() Token {
	if !t.Valid() || t.id == 1 {
		return Token{}
	}
	return Token{tree: t.tree, id: t.id - 1}
}

// Next returns the following token in document order, or an invalid handle.
func (t Token) Next() Token {
	if !t.Valid() || int(t.id) >= len(t.tree.tokens) {
		return Token{}
	}
	return Token{tree: t.tree, id: t.id + 1}
}

// PrevReal returns the nearest preceding token with a non-zero width.
func (t Token) PrevReal() Token {
	for p := t.Prev(); p.Valid(); p = p.Prev() {
		if p.Width() > 0 {
			return p
		}
	}
	return Token{}
}

// RealOrPrev returns t when it has text, otherwise its nearest real predecessor.
// A zero-width token with no real predecessor is returned unchanged.
func (t Token) RealOrPrev() Token {
	if t.Width() > 0 {
		return t
	}
	if p := t.PrevReal(); p.Valid() {
		return p
	}
	return t
}

// Ancestor returns the nearest node containing the token whose kind is in set.
func (t Token) Ancestor(set *KindSet) Node {
	return t.Parent().Ancestor(set)
}
