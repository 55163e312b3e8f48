package diagfmt

import (
	"strings"
	"unicode"

	"rcdiag/internal/codepage"
)

const (
	// maxDisplayCodepoints is the display window: a source line longer than
	// this is cut and marked truncated.
	maxDisplayCodepoints = 120

	// maxDisplayBytes bounds buffers that collect line bytes before
	// filtering (4 bytes per codepoint worst case).
	maxDisplayBytes = maxDisplayCodepoints * 4

	truncationMarker = "<...>"
)

// displayRune maps one decoded codepoint to what the terminal shows.
// The second return value is false when the codepoint produces no output at
// all (carriage return is compiler-invisible).
func displayRune(cp codepage.Codepoint) (rune, bool) {
	if cp.Value == '\r' {
		return 0, false
	}
	switch cp.Value {
	case '\t', '\v', '\f':
		return ' ', true
	}
	if cp.Invalid || cp.Value == codepage.ByteOrderMark || cp.Value == codepage.PrivateUseSentinel {
		return '�', true
	}
	if cp.Value < 0x20 || cp.Value == 0x7f || unicode.Is(unicode.Cf, cp.Value) {
		return '�', true
	}
	return cp.Value, true
}

// buildDisplayLine filters the bytes of one source line into terminal-safe
// text, stopping after maxDisplayCodepoints displayable codepoints. When more
// displayable input remains, truncated is true and the marker is appended.
func buildDisplayLine(line []byte, cp codepage.ID) (text string, truncated bool) {
	var b strings.Builder
	emitted := 0
	var off uint32
	for {
		c, ok := cp.CodepointAt(line, off)
		if !ok {
			break
		}
		off += uint32(c.Len)
		r, visible := displayRune(c)
		if !visible {
			continue
		}
		if emitted == maxDisplayCodepoints {
			b.WriteString(truncationMarker)
			return b.String(), true
		}
		b.WriteRune(r)
		emitted++
	}
	return b.String(), false
}

// countDisplayCodepoints counts the codepoints that would be displayed
// between byte offsets [from, to) of buf. Tabs count as one; carriage
// returns count as zero. Offsets that land inside a codepoint resolve to the
// codepoint's start, matching how the lexer assigns token bounds.
func countDisplayCodepoints(buf []byte, cp codepage.ID, from, to uint32) uint32 {
	var n uint32
	off := from
	for off < to {
		c, ok := cp.CodepointAt(buf, off)
		if !ok {
			break
		}
		off += uint32(c.Len)
		if _, visible := displayRune(c); visible {
			n++
		}
	}
	return n
}
