package syntax

import (
	"fmt"

	"cslines/internal/source"
	"cslines/internal/token"
)

type (
	// TokenID is a 1-based index into the token arena, in document order.
	TokenID uint32
	// NodeID is a 1-based index into the node arena.
	NodeID uint32
)

const (
	NoTokenID TokenID = 0
	NoNodeID  NodeID  = 0
)

func (id TokenID) IsValid() bool { return id != NoTokenID }
func (id NodeID) IsValid() bool  { return id != NoNodeID }

type tokenData struct {
	tok    token.Token
	parent NodeID
}

type nodeData struct {
	kind     NodeKind
	parent   NodeID
	firstTok TokenID // inclusive; NoTokenID for a node without tokens
	lastTok  TokenID // inclusive
	children []NodeID
}

// Tree is an immutable syntax tree over one source file.
type Tree struct {
	file   *source.File
	tokens []tokenData
	nodes  []nodeData
	root   NodeID
}

// File returns the source file the tree's spans refer to.
func (t *Tree) File() *source.File { return t.file }

// Root returns the compilation unit.
func (t *Tree) Root() Node { return Node{tree: t, id: t.root} }

// TokenCount returns the number of tokens, EOF and synthesized tokens included.
func (t *Tree) TokenCount() int { return len(t.tokens) }

// Token returns the handle for id, or an invalid handle when id is out of range.
func (t *Tree) Token(id TokenID) Token {
	if !id.IsValid() || int(id) > len(t.tokens) {
		return Token{}
	}
	return Token{tree: t, id: id}
}

// FirstToken returns the first token of the document (possibly zero-width).
func (t *Tree) FirstToken() Token { return t.Token(1) }

// LineDifference reports how many line breaks separate the end of a from the start of b.
func (t *Tree) LineDifference(a, b Token) int {
	if !a.Valid() || !b.Valid() {
		return 0
	}
	return t.file.LineDifference(a.Span().End, b.Span().Start)
}

// Relayout returns a tree with the same structure whose tokens carry the given
// spans inside file. spans is indexed by TokenID-1 and must cover every token.
func (t *Tree) Relayout(file *source.File, spans []source.Span) (*Tree, error) {
	if file == nil {
		return nil, fmt.Errorf("relayout: nil file")
	}
	if len(spans) != len(t.tokens) {
		return nil, fmt.Errorf("relayout: %d spans for %d tokens", len(spans), len(t.tokens))
	}
	tokens := make([]tokenData, len(t.tokens))
	for i, td := range t.tokens {
		sp := spans[i]
		sp.File = file.ID
		if sp.Len() != td.tok.Span.Len() {
			return nil, fmt.Errorf("relayout: token %d (%s) width changed from %d to %d",
				i+1, td.tok.Kind, td.tok.Span.Len(), sp.Len())
		}
		if int(sp.End) > len(file.Content) {
			return nil, fmt.Errorf("relayout: token %d span %v beyond content", i+1, sp)
		}
		td.tok.Span = sp
		td.tok.Leading = nil
		tokens[i] = td
	}
	return &Tree{
		file:   file,
		tokens: tokens,
		nodes:  t.nodes,
		root:   t.root,
	}, nil
}

func (t *Tree) tok(id TokenID) *tokenData {
	return &t.tokens[id-1]
}

func (t *Tree) node(id NodeID) *nodeData {
	return &t.nodes[id-1]
}
