package main

import (
	"fmt"
	"io"
	"os"

	"cslines/internal/diag"
	"cslines/internal/diagfmt"
	"cslines/internal/source"
)

// printDiagnostics renders the bag to w and notes how many were cut by
// --max-diagnostics.
func printDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, context int) error {
	if bag == nil || bag.Len()+bag.Dropped() == 0 {
		return nil
	}
	opts := diagfmt.PrettyOpts{Color: useColor(os.Stderr), Context: context, ShowNotes: true}
	if err := diagfmt.Pretty(w, bag.Items(), fs, opts); err != nil {
		return err
	}
	if n := bag.Dropped(); n > 0 {
		_, err := fmt.Fprintf(w, "... %d more diagnostic(s) not shown (raise --max-diagnostics)\n", n)
		return err
	}
	return nil
}
