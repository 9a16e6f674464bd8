package fuzztests

import (
	"context"
	"testing"
	"time"

	"cslines/internal/diag"
	"cslines/internal/parser"
	"cslines/internal/source"
	"cslines/internal/testkit"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

// FuzzParserNoHang checks that the parser terminates on any input and that
// the recovered tree keeps its structural invariants.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	// Add specific edge cases for error recovery
	f.Add([]byte("class C { void M() { x = 1\ny = 2; } }")) // missing semicolon
	f.Add([]byte("class C { int P { get set } }"))          // accessors without terminators
	f.Add([]byte("namespace N { namespace M { class"))      // truncated declarations
	f.Add([]byte("class C { { { { } } } }"))                // stray nested blocks
	f.Add([]byte("using ;;;; using"))                       // empty usings
	f.Add([]byte("}}}}class C{"))                           // leading closers

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		type outcome struct {
			res parser.Result
			err error
		}
		done := make(chan outcome, 1)
		go func() {
			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("fuzz.cs", input))
			bag := diag.NewBag(128)
			res, err := parser.ParseFile(file, parser.Options{Reporter: diag.BagReporter{Bag: bag}, MaxErrors: 128})
			done <- outcome{res: res, err: err}
		}()

		select {
		case out := <-done:
			if out.err != nil {
				t.Fatalf("parse failed: %v", out.err)
			}
			if err := testkit.CheckTreeInvariants(out.res.Tree); err != nil {
				t.Fatalf("tree invariants: %v\ninput: %q", err, truncateForLog(input, 200))
			}
		case <-ctx.Done():
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
