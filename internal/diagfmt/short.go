package diagfmt

import (
	"fmt"
	"strings"

	"rcdiag/internal/diag"
	"rcdiag/internal/source"
)

// FormatShort renders diagnostics into a stable, single-line-per-entry
// representation suitable for golden files and CLI short output. Records stay
// in insertion order; hints and wordless (kind, severity) pairs are dropped
// exactly as in the full renderer.
func FormatShort(store *diag.Store, file *source.File) string {
	var b strings.Builder
	first := true
	for _, rec := range store.Records() {
		if rec.Severity == diag.SevHint {
			continue
		}
		msg, ok := message(rec, store, file.Content)
		if !ok {
			continue
		}
		lineStart := file.LineStart(rec.Token.Start)
		col := countDisplayCodepoints(file.Content, rec.CodePage, lineStart, rec.Token.Start) + 1
		if !first {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s",
			rec.Severity, rec.Kind.ID(), file.FormatPath("basename", ""), rec.Token.Line, col, msg)
		first = false
	}
	return b.String()
}
