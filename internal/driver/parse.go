package driver

import (
	"context"
	"fmt"

	"cslines/internal/diag"
	"cslines/internal/parser"
	"cslines/internal/source"
	"cslines/internal/syntax"
	"cslines/internal/trace"
)

type ParseResult struct {
	FileSet     *source.FileSet
	File        *source.File
	Tree        *syntax.Tree
	ParseErrors uint
	Bag         *diag.Bag
}

// Parse loads path and builds its syntax tree. Diagnostics land in Bag,
// sorted by position.
func Parse(ctx context.Context, path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	_, span := trace.StartSpan(ctx, trace.ScopePass, "parse")
	defer span.End("")

	bag := diag.NewBag(maxDiagnostics)
	parsed, err := parser.ParseFile(file, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	bag.Sort()
	return &ParseResult{
		FileSet:     fs,
		File:        file,
		Tree:        parsed.Tree,
		ParseErrors: parsed.Errors,
		Bag:         bag,
	}, nil
}
