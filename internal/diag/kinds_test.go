package diag

import "testing"

func TestKindID(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{LexUnfinishedStringLiteral, "LEX1001"},
		{SynExpectedToken, "SYN2001"},
		{CmpFontIdAlreadyDefined, "CMP3002"},
		{LitStringLiteralTooLong, "LIT4001"},
		{GenFileTooLarge, "GEN5005"},
		{UnknownKind, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.kind.ID(); got != tt.want {
			t.Errorf("Kind(%d).ID() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindGroup(t *testing.T) {
	tests := []struct {
		kind Kind
		want Group
	}{
		{LexIllegalByte, GroupLexer},
		{SynEmptyMenu, GroupParser},
		{CmpFileOpenError, GroupCompiler},
		{LitTabInStringLiteral, GroupLiteral},
		{GenInvalidCodePage, GroupGeneral},
		{UnknownKind, GroupUnknown},
	}
	for _, tt := range tests {
		if got := tt.kind.Group(); got != tt.want {
			t.Errorf("Kind(%d).Group() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestGroupFromName(t *testing.T) {
	for _, name := range []string{"lexer", "parser", "compiler", "literal", "general"} {
		g, ok := GroupFromName(name)
		if !ok || g.String() != name {
			t.Errorf("GroupFromName(%q) = %v, %v", name, g, ok)
		}
	}
	if _, ok := GroupFromName("linker"); ok {
		t.Error("GroupFromName should reject unknown names")
	}
}

func TestCatalogComplete(t *testing.T) {
	kinds := AllKinds()
	if len(kinds) < 60 {
		t.Fatalf("catalog has %d kinds, expected the full set", len(kinds))
	}
	for _, k := range kinds {
		if k.Title() == kindTitles[UnknownKind] {
			t.Errorf("kind %s has no title", k.ID())
		}
		if _, ok := ShapeForKind(k); !ok {
			t.Errorf("kind %s has no payload shape", k.ID())
		}
		if k.Group() == GroupUnknown {
			t.Errorf("kind %s has no group", k.ID())
		}
	}

	// ascending order
	for i := 1; i < len(kinds); i++ {
		if kinds[i] <= kinds[i-1] {
			t.Fatalf("AllKinds not ascending at %d: %v then %v", i, kinds[i-1], kinds[i])
		}
	}
}

func TestKindFromID(t *testing.T) {
	for _, k := range AllKinds() {
		got, ok := KindFromID(k.ID())
		if !ok || got != k {
			t.Errorf("KindFromID(%q) = %v, %v; want %v", k.ID(), got, ok, k)
		}
	}
	if _, ok := KindFromID("ZZZ9999"); ok {
		t.Error("KindFromID should reject unknown ids")
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{SevError, "error"},
		{SevWarning, "warning"},
		{SevNote, "note"},
		{SevHint, "hint"},
	}
	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.sev, got, tt.want)
		}
	}
}
