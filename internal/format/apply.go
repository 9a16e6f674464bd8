package format

import (
	"bytes"
	"fmt"

	"fortio.org/safecast"

	"cslines/internal/source"
	"cslines/internal/syntax"
	"cslines/internal/token"
)

// Result is a rendered document.
type Result struct {
	Output []byte
	// Spans holds the new span of every token, indexed by TokenID-1.
	Spans   []source.Span
	Changed bool
	// Rebuilt counts the gaps that were rewritten.
	Rebuilt   int
	Decisions []Decision
}

// Apply renders tree with the given decisions, one per adjacent token pair.
func Apply(tree *syntax.Tree, decisions []Decision) (Result, error) {
	n := tree.TokenCount()
	if n == 0 {
		return Result{}, fmt.Errorf("apply: empty tree")
	}
	if len(decisions) != n-1 {
		return Result{}, fmt.Errorf("apply: %d decisions for %d tokens", len(decisions), n)
	}
	sf := tree.File()
	w := NewWriter(sf)
	spans := make([]source.Span, n)

	first := tree.FirstToken()
	w.CopyRange(0, int(first.Span().Start))
	if err := writeToken(w, first, spans); err != nil {
		return Result{}, err
	}

	res := Result{Decisions: decisions}
	// line breaks squeezed out before a zero-width token move past it
	carry := 0
	for i, d := range decisions {
		// decision i covers tokens i+1 and i+2
		if d.Prev.Tree() != tree || int(d.Prev.ID()) != i+1 || d.Prev.ID()+1 != d.Curr.ID() {
			return Result{}, fmt.Errorf("apply: decision %d is for tokens %d,%d, want %d,%d", i, d.Prev.ID(), d.Curr.ID(), i+1, i+2)
		}
		gap := gapBytes(d.Prev, d.Curr)
		lines := d.Lines
		pending := carry
		carry = 0

		switch {
		case d.Verbatim:
			if pending > 0 && d.Existing == 0 {
				w.Newlines(pending, indentFor(d, gap))
				w.WriteString(string(bytes.TrimLeft(gap, " \t")))
				res.Rebuilt++
			} else {
				w.WriteString(string(gap))
			}
		case pending > lines:
			w.Newlines(pending, indentFor(d, gap))
			res.Rebuilt++
		case lines == d.Existing:
			w.WriteString(string(gap))
		case lines == 0:
			if d.Curr.Width() == 0 {
				carry = d.Existing
			}
			if !tight(d.Prev, d.Curr) {
				w.Space()
			}
			res.Rebuilt++
		default:
			w.Newlines(lines, indentFor(d, gap))
			res.Rebuilt++
		}

		if err := writeToken(w, d.Curr, spans); err != nil {
			return Result{}, err
		}
	}

	res.Output = w.Bytes()
	res.Spans = spans
	res.Changed = !bytes.Equal(res.Output, sf.Content)
	return res, nil
}

func writeToken(w *Writer, tok syntax.Token, spans []source.Span) error {
	start, err := safecast.Conv[uint32](w.Len())
	if err != nil {
		return fmt.Errorf("apply: output offset overflow: %w", err)
	}
	w.CopySpan(tok.Span())
	end, err := safecast.Conv[uint32](w.Len())
	if err != nil {
		return fmt.Errorf("apply: output offset overflow: %w", err)
	}
	spans[tok.ID()-1] = source.Span{Start: start, End: end}
	return nil
}

// indentFor: отступ после последнего перевода строки в промежутке, иначе
// отступ строки предыдущего токена; перед EOF без отступа.
func indentFor(d Decision, gap []byte) string {
	if d.Curr.Kind() == token.EOF {
		return ""
	}
	if i := bytes.LastIndexByte(gap, '\n'); i >= 0 && !hasText(gap) {
		return string(gap[i+1:])
	}
	return d.Curr.Tree().File().Indentation(d.Prev.Span().Start)
}

// tight pairs join without a space when their line break is removed.
func tight(prev, curr syntax.Token) bool {
	if prev.Width() == 0 || curr.Width() == 0 {
		return true
	}
	switch curr.Kind() {
	case token.Semicolon, token.Comma, token.Dot, token.RParen, token.RBracket:
		return true
	}
	switch prev.Kind() {
	case token.LParen, token.LBracket, token.Dot:
		return true
	}
	return false
}
