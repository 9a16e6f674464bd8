package driver

import (
	"context"
	"fmt"
	"strconv"

	"cslines/internal/format"
	"cslines/internal/trace"
)

// ExplainResult is the per-pair decision list for one file.
type ExplainResult struct {
	*ParseResult
	Decisions []format.Decision
}

// Explain parses path and sweeps it without rendering.
func Explain(ctx context.Context, path string, opts format.Options) (*ExplainResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("explain: %w", err)
	}

	ctx, span := trace.StartFile(ctx, path)
	defer span.End("")

	parsed, err := Parse(ctx, path, opts.MaxDiagnostics)
	if err != nil {
		return nil, fmt.Errorf("explain: %w", err)
	}

	_, sweep := trace.StartSpan(ctx, trace.ScopePass, "sweep")
	decisions := format.Sweep(parsed.Tree, opts)
	sweep.WithExtra("pairs", strconv.Itoa(len(decisions))).End("")

	return &ExplainResult{ParseResult: parsed, Decisions: decisions}, nil
}
