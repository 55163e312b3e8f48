package diagfmt

import (
	"strings"
	"testing"

	"rcdiag/internal/codepage"
)

func TestDisplayRune(t *testing.T) {
	tests := []struct {
		name    string
		cp      codepage.Codepoint
		want    rune
		visible bool
	}{
		{"plain ascii", codepage.Codepoint{Value: 'A', Len: 1}, 'A', true},
		{"carriage return invisible", codepage.Codepoint{Value: '\r', Len: 1}, 0, false},
		{"tab becomes space", codepage.Codepoint{Value: '\t', Len: 1}, ' ', true},
		{"vertical tab becomes space", codepage.Codepoint{Value: '\v', Len: 1}, ' ', true},
		{"form feed becomes space", codepage.Codepoint{Value: '\f', Len: 1}, ' ', true},
		{"control byte replaced", codepage.Codepoint{Value: 0x01, Len: 1}, '�', true},
		{"delete replaced", codepage.Codepoint{Value: 0x7f, Len: 1}, '�', true},
		{"invalid replaced", codepage.Codepoint{Value: 'x', Len: 1, Invalid: true}, '�', true},
		{"bom replaced", codepage.Codepoint{Value: codepage.ByteOrderMark, Len: 3}, '�', true},
		{"private use sentinel replaced", codepage.Codepoint{Value: codepage.PrivateUseSentinel, Len: 3}, '�', true},
		{"non-ascii kept", codepage.Codepoint{Value: 'é', Len: 2}, 'é', true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, visible := displayRune(tt.cp)
			if visible != tt.visible {
				t.Fatalf("visible = %v, want %v", visible, tt.visible)
			}
			if visible && r != tt.want {
				t.Errorf("rune = %q, want %q", r, tt.want)
			}
		})
	}
}

func TestBuildDisplayLine(t *testing.T) {
	tests := []struct {
		name          string
		line          string
		want          string
		wantTruncated bool
	}{
		{"plain line", "foo \"hello", "foo \"hello", false},
		{"cr dropped", "abc\r", "abc", false},
		{"tab to space", "a\tb", "a b", false},
		{"control filtered", "a\x01b", "a�b", false},
		{"exactly window width", strings.Repeat("a", 120), strings.Repeat("a", 120), false},
		{"one past window width", strings.Repeat("a", 121), strings.Repeat("a", 120) + "<...>", true},
		{
			"invisible bytes do not count against the window",
			strings.Repeat("a\r", 120),
			strings.Repeat("a", 120),
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := buildDisplayLine([]byte(tt.line), codepage.UTF8)
			if got != tt.want {
				t.Errorf("text = %q, want %q", got, tt.want)
			}
			if truncated != tt.wantTruncated {
				t.Errorf("truncated = %v, want %v", truncated, tt.wantTruncated)
			}
		})
	}
}

func TestCountDisplayCodepoints(t *testing.T) {
	tests := []struct {
		name     string
		buf      string
		cp       codepage.ID
		from, to uint32
		want     uint32
	}{
		{"ascii range", "foo \"hello", codepage.UTF8, 0, 5, 5},
		{"cr not counted", "ab\r\ncd", codepage.UTF8, 0, 4, 3},
		{"multi-byte counts once", "é \"a", codepage.UTF8, 0, 4, 3},
		{"single-byte page", "\x80 x", codepage.Windows1252, 0, 2, 2},
		{"empty range", "abc", codepage.UTF8, 1, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := countDisplayCodepoints([]byte(tt.buf), tt.cp, tt.from, tt.to)
			if got != tt.want {
				t.Errorf("countDisplayCodepoints(%q, %d, %d) = %d, want %d",
					tt.buf, tt.from, tt.to, got, tt.want)
			}
		})
	}
}
