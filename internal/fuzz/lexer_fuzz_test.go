package fuzztests

import (
	"testing"

	"cslines/internal/diag"
	"cslines/internal/lexer"
	"cslines/internal/source"
	"cslines/internal/testkit"
	"cslines/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.cs", input))

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		toks := lx.All()
		if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
			t.Fatalf("token stream does not end with EOF")
		}
		var prevEnd uint32
		for i, tok := range toks {
			if err := testkit.CheckSpan(file, tok.Span); err != nil {
				t.Fatalf("token %d (%s): %v", i, tok.Kind, err)
			}
			if tok.Span.Start < prevEnd {
				t.Fatalf("token %d (%s) starts at %d before previous end %d", i, tok.Kind, tok.Span.Start, prevEnd)
			}
			prevEnd = tok.Span.End
		}
	})
}
