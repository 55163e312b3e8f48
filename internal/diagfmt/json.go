package diagfmt

import (
	"encoding/json"
	"io"

	"rcdiag/internal/diag"
	"rcdiag/internal/source"
)

// LocationJSON is a rendered source location.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	Line      uint32 `json:"line,omitempty"`
	Col       uint32 `json:"col,omitempty"`
}

// DiagnosticJSON is one record in JSON form.
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Kind     string       `json:"kind"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticsOutput is the root JSON structure.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// BuildDiagnosticsOutput assembles the JSON structure without serializing it.
// Hints and records whose (kind, severity) pair has no wording are skipped,
// mirroring the text renderer.
func BuildDiagnosticsOutput(store *diag.Store, file *source.File, opts JSONOpts) DiagnosticsOutput {
	diagnostics := make([]DiagnosticJSON, 0, store.Len())
	path := file.FormatPath(opts.PathMode.modeString(), opts.BaseDir)

	for _, rec := range store.Records() {
		if opts.Max > 0 && len(diagnostics) >= opts.Max {
			break
		}
		if rec.Severity == diag.SevHint {
			continue
		}
		msg, ok := message(rec, store, file.Content)
		if !ok {
			continue
		}
		loc := LocationJSON{
			File:      path,
			StartByte: rec.Token.Start,
			EndByte:   rec.Token.End,
		}
		if opts.IncludePositions {
			lineStart := file.LineStart(rec.Token.Start)
			loc.Line = rec.Token.Line
			loc.Col = countDisplayCodepoints(file.Content, rec.CodePage, lineStart, rec.Token.Start) + 1
		}
		diagnostics = append(diagnostics, DiagnosticJSON{
			Severity: rec.Severity.String(),
			Kind:     rec.Kind.ID(),
			Message:  msg,
			Location: loc,
		})
	}

	return DiagnosticsOutput{Diagnostics: diagnostics, Count: len(diagnostics)}
}

// JSON renders the store as indented JSON.
func JSON(w io.Writer, store *diag.Store, file *source.File, opts JSONOpts) error {
	output := BuildDiagnosticsOutput(store, file, opts)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
