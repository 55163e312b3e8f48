package diagfmt

import (
	"testing"

	"rcdiag/internal/codepage"
	"rcdiag/internal/diag"
	"rcdiag/internal/source"
	"rcdiag/internal/token"
)

func TestFormatShort(t *testing.T) {
	file := source.NewFile("dir/test.rc", []byte("FONT 2\nFONT 2"))
	store := diag.NewStore()
	store.Append(diag.New(diag.CmpFontIdAlreadyDefined, diag.SevWarning,
		token.Token{Start: 12, End: 13, Line: 2, Kind: token.Number}, codepage.UTF8).
		WithExtra(diag.ExtraNumber{Value: 2}))
	store.Append(diag.New(diag.CmpFontIdAlreadyDefined, diag.SevNote,
		token.Token{Start: 5, End: 6, Line: 1, Kind: token.Number}, codepage.UTF8).
		WithExtra(diag.ExtraNumber{Value: 2}))
	store.Append(diag.New(diag.LexCodePagePragmaInIncludedFile, diag.SevHint,
		token.Token{Start: 0, End: 4, Line: 1, Kind: token.Literal}, codepage.UTF8))

	want := "warning CMP3002 test.rc:2:6 skipped duplicate font with id 2\n" +
		"note CMP3002 test.rc:1:6 previous definition of font with id 2 here"
	if got := FormatShort(store, file); got != want {
		t.Errorf("FormatShort:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatShortEmptyStore(t *testing.T) {
	file := source.NewFile("test.rc", nil)
	if got := FormatShort(diag.NewStore(), file); got != "" {
		t.Errorf("FormatShort of empty store = %q", got)
	}
}
