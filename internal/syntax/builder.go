package syntax

import (
	"errors"
	"fmt"

	"cslines/internal/source"
	"cslines/internal/token"
)

var (
	ErrUnclosedNode  = errors.New("syntax: unclosed node")
	ErrOrphanToken   = errors.New("syntax: token outside of any node")
	ErrNoRoot        = errors.New("syntax: no compilation unit")
	ErrMissingEOF    = errors.New("syntax: tree does not end with EOF")
	ErrTokenOrdering = errors.New("syntax: token spans out of order")
)

// Builder assembles a Tree in one forward pass. Tokens must be appended in
// document order; nodes nest by Open/Close.
type Builder struct {
	file   *source.File
	tokens []tokenData
	nodes  []nodeData
	stack  []NodeID
	root   NodeID
	err    error
}

// NewBuilder starts a tree over file; hint pre-sizes the token arena.
func NewBuilder(file *source.File, hint int) *Builder {
	if hint < 0 {
		hint = 0
	}
	return &Builder{
		file:   file,
		tokens: make([]tokenData, 0, hint),
		nodes:  make([]nodeData, 0, hint/3+1),
	}
}

// Open starts a node as a child of the innermost open node.
func (b *Builder) Open(kind NodeKind) NodeID {
	b.nodes = append(b.nodes, nodeData{kind: kind, parent: b.top()})
	id := NodeID(len(b.nodes))
	if parent := b.top(); parent.IsValid() {
		pd := &b.nodes[parent-1]
		pd.children = append(pd.children, id)
	} else if b.root.IsValid() {
		b.fail(fmt.Errorf("syntax: second root %s", kind))
	} else {
		b.root = id
	}
	b.stack = append(b.stack, id)
	return id
}

// SetKind changes the kind of a node, open or closed. Declarations whose
// shape is only known after their header are opened with a provisional kind.
func (b *Builder) SetKind(id NodeID, kind NodeKind) {
	b.nodes[id-1].kind = kind
}

// Kind returns the current kind of a node under construction.
func (b *Builder) Kind(id NodeID) NodeKind {
	return b.nodes[id-1].kind
}

// Token appends tok to the innermost open node.
func (b *Builder) Token(tok token.Token) TokenID {
	parent := b.top()
	if !parent.IsValid() {
		b.fail(fmt.Errorf("%w: %s at %d", ErrOrphanToken, tok.Kind, tok.Span.Start))
	}
	if n := len(b.tokens); n > 0 && b.tokens[n-1].tok.Span.End > tok.Span.Start {
		b.fail(fmt.Errorf("%w: %s at %d", ErrTokenOrdering, tok.Kind, tok.Span.Start))
	}
	b.tokens = append(b.tokens, tokenData{tok: tok, parent: parent})
	id := TokenID(len(b.tokens))
	for _, nid := range b.stack {
		nd := &b.nodes[nid-1]
		if !nd.firstTok.IsValid() {
			nd.firstTok = id
		}
		nd.lastTok = id
	}
	return id
}

// Missing appends a synthesized zero-width token of kind at offset.
func (b *Builder) Missing(kind token.Kind, offset uint32) TokenID {
	return b.Token(token.Token{
		Kind:    kind,
		Span:    source.Span{File: b.file.ID, Start: offset, End: offset},
		Missing: true,
	})
}

// Retag changes the kind of an already appended token. The parser uses it
// for contextual keywords and for angle brackets of type argument lists.
func (b *Builder) Retag(id TokenID, kind token.Kind) {
	b.tokens[id-1].tok.Kind = kind
}

// LastToken returns the most recently appended token id.
func (b *Builder) LastToken() TokenID {
	return TokenID(len(b.tokens))
}

// Close ends the innermost open node.
func (b *Builder) Close() NodeID {
	if len(b.stack) == 0 {
		panic("syntax: Close without open node")
	}
	id := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return id
}

// Depth is the number of open nodes.
func (b *Builder) Depth() int { return len(b.stack) }

// Finish validates the assembled tree and returns it. The builder must not
// be used afterwards.
func (b *Builder) Finish() (*Tree, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.stack) != 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnclosedNode, b.nodes[b.stack[len(b.stack)-1]-1].kind)
	}
	if !b.root.IsValid() {
		return nil, ErrNoRoot
	}
	if n := len(b.tokens); n == 0 || b.tokens[n-1].tok.Kind != token.EOF {
		return nil, ErrMissingEOF
	}
	t := &Tree{
		file:   b.file,
		tokens: b.tokens,
		nodes:  b.nodes,
		root:   b.root,
	}
	b.tokens, b.nodes = nil, nil
	return t, nil
}

func (b *Builder) top() NodeID {
	if len(b.stack) == 0 {
		return NoNodeID
	}
	return b.stack[len(b.stack)-1]
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
