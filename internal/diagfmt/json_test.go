package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"rcdiag/internal/codepage"
	"rcdiag/internal/diag"
	"rcdiag/internal/source"
	"rcdiag/internal/token"
)

func jsonTestStore(t *testing.T) (*diag.Store, *source.File) {
	t.Helper()
	file := source.NewFile("test.rc", []byte("one\ntwo\nfoo \"hello"))
	store := diag.NewStore()
	store.Append(diag.New(diag.LexUnfinishedStringLiteral, diag.SevError,
		token.Token{Start: 13, End: 18, Line: 3, Kind: token.QuotedASCIIString}, codepage.UTF8))
	store.Append(diag.New(diag.SynEmptyMenu, diag.SevWarning,
		token.Token{Start: 4, End: 7, Line: 2, Kind: token.Literal}, codepage.UTF8))
	store.Append(diag.New(diag.LexCodePagePragmaInIncludedFile, diag.SevHint,
		token.Token{Start: 0, End: 3, Line: 1, Kind: token.Literal}, codepage.UTF8))
	return store, file
}

func TestBuildDiagnosticsOutput(t *testing.T) {
	store, file := jsonTestStore(t)

	out := BuildDiagnosticsOutput(store, file, JSONOpts{IncludePositions: true, PathMode: PathModeBasename})
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Fatalf("Count = %d, len = %d; want 2 rendered records", out.Count, len(out.Diagnostics))
	}

	first := out.Diagnostics[0]
	if first.Severity != "error" || first.Kind != "LEX1001" {
		t.Errorf("first = %+v", first)
	}
	if first.Message != "unfinished string literal at 'hello', expected closing '\"'" {
		t.Errorf("message = %q", first.Message)
	}
	if first.Location.File != "test.rc" || first.Location.StartByte != 13 || first.Location.EndByte != 18 {
		t.Errorf("location = %+v", first.Location)
	}
	if first.Location.Line != 3 || first.Location.Col != 6 {
		t.Errorf("position = %d:%d, want 3:6", first.Location.Line, first.Location.Col)
	}

	if out.Diagnostics[1].Kind != "SYN2017" || out.Diagnostics[1].Severity != "warning" {
		t.Errorf("second = %+v", out.Diagnostics[1])
	}
}

func TestBuildDiagnosticsOutputWithoutPositions(t *testing.T) {
	store, file := jsonTestStore(t)
	out := BuildDiagnosticsOutput(store, file, JSONOpts{})
	if out.Diagnostics[0].Location.Line != 0 || out.Diagnostics[0].Location.Col != 0 {
		t.Errorf("positions should be omitted, got %+v", out.Diagnostics[0].Location)
	}
}

func TestBuildDiagnosticsOutputMax(t *testing.T) {
	store, file := jsonTestStore(t)
	out := BuildDiagnosticsOutput(store, file, JSONOpts{Max: 1})
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Errorf("Max=1 gave %d diagnostics", len(out.Diagnostics))
	}
}

func TestJSONEncodes(t *testing.T) {
	store, file := jsonTestStore(t)
	var buf bytes.Buffer
	if err := JSON(&buf, store, file, JSONOpts{}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	var decoded DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Count != 2 {
		t.Errorf("decoded count = %d, want 2", decoded.Count)
	}
}
