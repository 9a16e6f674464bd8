package diag

import (
	"fmt"
	"strings"

	"cslines/internal/source"
)

// FormatShort renders diagnostics one per line as path:line:col: SEV CODE: message.
// Diagnostics whose file is unknown to fs are rendered without a position.
func FormatShort(diags []Diagnostic, fs *source.FileSet) string {
	if len(diags) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, d := range diags {
		var f *source.File
		if fs != nil {
			f = fs.Get(d.Primary.File)
		}
		if f != nil {
			pos := f.LineCol(d.Primary.Start)
			fmt.Fprintf(&sb, "%s:%d:%d: ", f.Path, pos.Line, pos.Col)
		}
		fmt.Fprintf(&sb, "%s %s: %s\n", d.Severity, d.Code.ID(), d.Message)
	}
	return sb.String()
}
