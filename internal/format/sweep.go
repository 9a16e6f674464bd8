package format

import (
	"cslines/internal/linebreak"
	"cslines/internal/syntax"
	"cslines/internal/token"
)

// Decision is the line-break outcome of one adjacent token pair.
type Decision struct {
	Prev, Curr syntax.Token
	Adjustment linebreak.Adjustment
	Rule       linebreak.RuleID
	// Existing is the number of line breaks in the source gap.
	Existing int
	// Lines is the number of line breaks the gap resolves to.
	Lines int
	// Verbatim gaps hold comments or directives and are never rebuilt.
	Verbatim bool
}

// Changed reports whether the gap will be rewritten.
func (d Decision) Changed() bool { return !d.Verbatim && d.Lines != d.Existing }

// Sweep evaluates every adjacent token pair of tree in document order.
func Sweep(tree *syntax.Tree, opts Options) []Decision {
	n := tree.TokenCount()
	if n < 2 {
		return nil
	}
	out := make([]Decision, 0, n-1)
	prev := tree.FirstToken()
	for curr := prev.Next(); curr.Valid(); prev, curr = curr, curr.Next() {
		out = append(out, decide(prev, curr, opts))
	}
	return out
}

func decide(prev, curr syntax.Token, opts Options) Decision {
	fallback := func() linebreak.Adjustment { return DefaultPolicy(prev, curr, opts) }
	adj, rule := linebreak.Explain(prev, curr, opts.Reason, fallback)
	d := Decision{
		Prev:       prev,
		Curr:       curr,
		Adjustment: adj,
		Rule:       rule,
		Existing:   curr.Tree().LineDifference(prev, curr),
		Verbatim:   hasText(gapBytes(prev, curr)),
	}
	d.Lines = d.Existing
	if !d.Verbatim {
		d.Lines = adj.Resolve(d.Existing)
	}
	return d
}

// DefaultPolicy is the fallback used when no engine rule decides.
func DefaultPolicy(prev, curr syntax.Token, opts Options) linebreak.Adjustment {
	if curr.Kind() == token.EOF {
		if !opts.FinalNewline {
			return linebreak.None
		}
		// the break may already sit above synthesized tokens at the end
		if real := prev.RealOrPrev(); real.ID() != prev.ID() && curr.Tree().LineDifference(real, prev) > 0 {
			return linebreak.Force(0)
		}
		return linebreak.Force(1)
	}
	if opts.MaxBlankLines >= 0 {
		limit := opts.MaxBlankLines + 1
		if curr.Tree().LineDifference(prev, curr) > limit {
			return linebreak.Force(limit)
		}
	}
	return linebreak.None
}

func gapBytes(prev, curr syntax.Token) []byte {
	content := curr.Tree().File().Content
	start, end := prev.Span().End, curr.Span().Start
	if end <= start || int(end) > len(content) {
		return nil
	}
	return content[start:end]
}

func hasText(gap []byte) bool {
	for _, b := range gap {
		switch b {
		case ' ', '\t', '\r', '\n', '\f', '\v':
		default:
			return true
		}
	}
	return false
}
