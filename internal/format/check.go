package format

import (
	"context"
	"errors"
	"fmt"

	"cslines/internal/linebreak"
	"cslines/internal/syntax"
)

// ErrNoFixedPoint is returned when formatting keeps changing the document.
var ErrNoFixedPoint = errors.New("format: no fixed point")

// Violation is a Force decision that a formatted document still disagrees with.
type Violation struct {
	Offset     uint32
	Pair       string
	Rule       linebreak.RuleID
	Adjustment linebreak.Adjustment
	Existing   int
}

func (v Violation) String() string {
	return fmt.Sprintf("@%d %s: %s by %s, laid out %d", v.Offset, v.Pair, v.Adjustment, v.Rule, v.Existing)
}

// CheckIdempotent formats tree once and reports every Force decision of the
// re-laid-out document whose line count differs from what is on the page.
func CheckIdempotent(tree *syntax.Tree, opts Options) ([]Violation, error) {
	res, err := FormatTree(context.Background(), tree, opts)
	if err != nil {
		return nil, err
	}
	next, err := Relayout(tree, res)
	if err != nil {
		return nil, fmt.Errorf("format: relayout: %w", err)
	}
	var out []Violation
	for _, d := range Sweep(next, opts) {
		if d.Adjustment.Mode != linebreak.ModeForce || !d.Changed() {
			continue
		}
		out = append(out, Violation{
			Offset:     d.Curr.Span().Start,
			Pair:       d.Prev.Kind().String() + " " + d.Curr.Kind().String(),
			Rule:       d.Rule,
			Adjustment: d.Adjustment,
			Existing:   d.Existing,
		})
	}
	return out, nil
}

// CheckConverges formats repeatedly until the output stops changing and
// returns the number of passes that changed something.
func CheckConverges(tree *syntax.Tree, opts Options) (int, *syntax.Tree, error) {
	opts = opts.withDefaults()
	cur := tree
	for pass := 0; pass <= opts.MaxPasses; pass++ {
		res, err := FormatTree(context.Background(), cur, opts)
		if err != nil {
			return pass, cur, err
		}
		if !res.Changed {
			return pass, cur, nil
		}
		if cur, err = Relayout(cur, res); err != nil {
			return pass, nil, fmt.Errorf("format: relayout: %w", err)
		}
	}
	return opts.MaxPasses, cur, fmt.Errorf("%w after %d passes", ErrNoFixedPoint, opts.MaxPasses)
}
