package diag

import (
	"errors"
	"testing"

	"rcdiag/internal/codepage"
	"rcdiag/internal/token"
)

func testToken() token.Token {
	return token.Token{Start: 0, End: 4, Line: 1, Kind: token.Literal}
}

func TestAppendKeepsInsertionOrder(t *testing.T) {
	s := NewStore()
	s.Append(New(LexUnfinishedStringLiteral, SevError, testToken(), codepage.UTF8))
	s.Append(New(CmpFontIdAlreadyDefined, SevError, testToken(), codepage.UTF8).
		WithExtra(ExtraNumber{Value: 2}))
	s.Append(New(SynEmptyMenu, SevWarning, testToken(), codepage.UTF8))

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	want := []Kind{LexUnfinishedStringLiteral, CmpFontIdAlreadyDefined, SynEmptyMenu}
	for i, rec := range s.Records() {
		if rec.Kind != want[i] {
			t.Errorf("Records()[%d].Kind = %s, want %s", i, rec.Kind.ID(), want[i].ID())
		}
	}
}

func TestAppendPanicsOnShapeMismatch(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
	}{
		{
			"kind not in catalog",
			New(UnknownKind, SevError, testToken(), codepage.UTF8),
		},
		{
			"nil payload",
			Record{Kind: SynEmptyMenu, Severity: SevWarning, Token: testToken()},
		},
		{
			"wrong shape for kind",
			New(CmpFontIdAlreadyDefined, SevError, testToken(), codepage.UTF8),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Append should panic")
				}
			}()
			NewStore().Append(tt.rec)
		})
	}
}

func TestContains(t *testing.T) {
	s := NewStore()
	s.Append(New(LexNumberWithExponent, SevWarning, testToken(), codepage.UTF8))

	if !s.Contains(LexNumberWithExponent) {
		t.Error("Contains should find the appended kind")
	}
	if s.Contains(SynEmptyMenu) {
		t.Error("Contains should not find an absent kind")
	}
	if !s.ContainsAny(SynEmptyMenu, LexNumberWithExponent) {
		t.Error("ContainsAny should find one of the kinds")
	}
	if s.ContainsAny(SynEmptyMenu, GenFileTooLarge) {
		t.Error("ContainsAny should find none of the kinds")
	}
}

func TestHasErrors(t *testing.T) {
	s := NewStore()
	s.Append(New(SynEmptyMenu, SevWarning, testToken(), codepage.UTF8))
	if s.HasErrors() {
		t.Error("warnings alone are not errors")
	}
	s.Append(New(LexUnfinishedStringLiteral, SevError, testToken(), codepage.UTF8))
	if !s.HasErrors() {
		t.Error("HasErrors should report the error record")
	}
}

func TestPutString(t *testing.T) {
	s := NewStore()

	src := []byte("shell32.dll")
	idx, err := s.PutString(src)
	if err != nil {
		t.Fatalf("PutString() error: %v", err)
	}
	src[0] = 'X'
	if got := string(s.String(idx)); got != "shell32.dll" {
		t.Errorf("String(%d) = %q, want an owned copy", idx, got)
	}

	idx2, err := s.PutString([]byte("user32.dll"))
	if err != nil {
		t.Fatal(err)
	}
	if idx2 != idx+1 {
		t.Errorf("second index = %d, want %d", idx2, idx+1)
	}
	if s.String(StringIndex(99)) != nil {
		t.Error("String(out of range) should return nil")
	}
}

func TestPutStringExhaustion(t *testing.T) {
	s := NewStore()
	s.maxStrings = 2

	if _, err := s.PutString([]byte("a")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.PutString([]byte("b")); err != nil {
		t.Fatal(err)
	}
	_, err := s.PutString([]byte("c"))
	if !errors.Is(err, ErrIndexSpaceExhausted) {
		t.Fatalf("third PutString error = %v, want ErrIndexSpaceExhausted", err)
	}
	if s.StringTableLen() != 2 {
		t.Errorf("StringTableLen() = %d, want 2", s.StringTableLen())
	}
}

func TestPutUint64Roundtrip(t *testing.T) {
	s := NewStore()
	const v = uint64(5_000_000_000)
	idx, err := s.PutUint64(v)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Uint64(idx); got != v {
		t.Errorf("Uint64(%d) = %d, want %d", idx, got, v)
	}

	short, _ := s.PutString([]byte("xyz"))
	if got := s.Uint64(short); got != 0 {
		t.Errorf("Uint64 of a non-count entry = %d, want 0", got)
	}
}

func TestIndexWidthDerivation(t *testing.T) {
	if StringIndexBits != 29 {
		t.Errorf("StringIndexBits = %d, want 29", StringIndexBits)
	}
	if MaxStringTableLen != 1<<29 {
		t.Errorf("MaxStringTableLen = %d, want 1<<29", MaxStringTableLen)
	}
}
