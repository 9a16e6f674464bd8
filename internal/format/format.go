package format

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"fortio.org/safecast"

	"cslines/internal/diag"
	"cslines/internal/linebreak"
	"cslines/internal/parser"
	"cslines/internal/source"
	"cslines/internal/syntax"
	"cslines/internal/trace"
)

// ErrParse marks a file rejected because of parse errors under StrictParse.
var ErrParse = errors.New("format: parse errors present")

// FileResult is FormatFile's outcome.
type FileResult struct {
	Result
	Tree        *syntax.Tree
	ParseErrors uint
	Diagnostics []diag.Diagnostic
}

// FormatFile lexes, parses and formats sf.
func FormatFile(ctx context.Context, sf *source.File, opts Options) (FileResult, error) {
	if sf == nil {
		return FileResult{}, errors.New("format: nil source file")
	}
	opts = opts.withDefaults()

	bag := diag.NewBag(opts.MaxDiagnostics)
	maxErrors, err := safecast.Conv[uint](bag.Cap())
	if err != nil {
		maxErrors = 0
	}
	_, span := trace.StartSpan(ctx, trace.ScopePass, "parse")
	parsed, err := parser.ParseFile(sf, parser.Options{Reporter: diag.BagReporter{Bag: bag}, MaxErrors: maxErrors})
	span.WithExtra("errors", strconv.FormatUint(uint64(parsed.Errors), 10)).End("")
	if err != nil {
		return FileResult{}, fmt.Errorf("format: parse %s: %w", sf.Path, err)
	}
	bag.Sort()
	out := FileResult{Tree: parsed.Tree, ParseErrors: parsed.Errors, Diagnostics: bag.Items()}
	if opts.StrictParse && parsed.Errors > 0 {
		return out, fmt.Errorf("%w: %s: %d error(s)", ErrParse, sf.Path, parsed.Errors)
	}

	res, err := FormatTree(ctx, parsed.Tree, opts)
	if err != nil {
		return out, err
	}
	out.Result = res
	return out, nil
}

// FormatTree sweeps and renders an already built tree.
func FormatTree(ctx context.Context, tree *syntax.Tree, opts Options) (Result, error) {
	if tree == nil {
		return Result{}, errors.New("format: nil tree")
	}
	_, span := trace.StartSpan(ctx, trace.ScopePass, "sweep")
	decisions := Sweep(tree, opts)
	span.WithExtra("pairs", strconv.Itoa(len(decisions))).End("")
	traceForced(ctx, decisions)

	_, span = trace.StartSpan(ctx, trace.ScopePass, "apply")
	res, err := Apply(tree, decisions)
	span.WithExtra("rebuilt", strconv.Itoa(res.Rebuilt)).End("")
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

func traceForced(ctx context.Context, decisions []Decision) {
	if !trace.FromContext(ctx).Level().ShouldEmit(trace.ScopePair) {
		return
	}
	for _, d := range decisions {
		if d.Adjustment.Mode != linebreak.ModeForce {
			continue
		}
		trace.Point(ctx, trace.ScopePair, "force", d.Rule.String(), map[string]string{
			"pair":     d.Prev.Kind().String() + " " + d.Curr.Kind().String(),
			"offset":   strconv.FormatUint(uint64(d.Curr.Span().Start), 10),
			"lines":    strconv.Itoa(d.Lines),
			"existing": strconv.Itoa(d.Existing),
		})
	}
}

// Relayout returns the tree re-anchored on res.Output, as if it had been parsed from it.
func Relayout(tree *syntax.Tree, res Result) (*syntax.Tree, error) {
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual(tree.File().Path, res.Output))
	return tree.Relayout(sf, res.Spans)
}
