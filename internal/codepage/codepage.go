// Package codepage implements the code-page classifier used for
// codepoint-accurate column and width math. Resource scripts are interpreted
// under whatever code page is active at a given location (set by
// #pragma code_page), so byte offsets cannot be mapped to columns without
// knowing the encoding.
package codepage

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ID is a Windows code-page identifier.
type ID uint16

const (
	// UTF8 is code page 65001.
	UTF8 ID = 65001

	// Single-byte pages with full classifier support.

	IBM437      ID = 437
	IBM850      ID = 850
	IBM852      ID = 852
	IBM866      ID = 866
	Windows874  ID = 874
	Windows1250 ID = 1250
	Windows1251 ID = 1251
	Windows1252 ID = 1252
	Windows1253 ID = 1253
	Windows1254 ID = 1254
	Windows1255 ID = 1255
	Windows1256 ID = 1256
	Windows1257 ID = 1257
	Windows1258 ID = 1258
	KOI8R       ID = 20866
	ISO8859_1   ID = 28591
	ISO8859_2   ID = 28592
	ISO8859_5   ID = 28595
	ISO8859_7   ID = 28597
	Macintosh   ID = 10000

	// Multi-byte pages the legacy compiler accepts in #pragma code_page but
	// this tool has no classifier for.

	ShiftJIS    ID = 932
	GBK         ID = 936
	UHC         ID = 949
	Big5        ID = 950
)

// PrivateUseSentinel is the codepoint the preprocessor substitutes for bytes
// it cannot represent. The renderer filters it out of display lines.
const PrivateUseSentinel rune = ''

// ByteOrderMark is filtered out of display lines like a control character.
const ByteOrderMark rune = '\uFEFF'

// Codepoint is one decoded unit of source text.
type Codepoint struct {
	Value   rune
	Len     uint8 // byte length consumed
	Invalid bool  // undecodable under the code page
}

var singleByte = map[ID]*charmap.Charmap{
	IBM437:      charmap.CodePage437,
	IBM850:      charmap.CodePage850,
	IBM852:      charmap.CodePage852,
	IBM866:      charmap.CodePage866,
	Windows874:  charmap.Windows874,
	Windows1250: charmap.Windows1250,
	Windows1251: charmap.Windows1251,
	Windows1252: charmap.Windows1252,
	Windows1253: charmap.Windows1253,
	Windows1254: charmap.Windows1254,
	Windows1255: charmap.Windows1255,
	Windows1256: charmap.Windows1256,
	Windows1257: charmap.Windows1257,
	Windows1258: charmap.Windows1258,
	KOI8R:       charmap.KOI8R,
	ISO8859_1:   charmap.ISO8859_1,
	ISO8859_2:   charmap.ISO8859_2,
	ISO8859_5:   charmap.ISO8859_5,
	ISO8859_7:   charmap.ISO8859_7,
	Macintosh:   charmap.Macintosh,
}

var multiByteNames = map[ID]string{
	ShiftJIS: "windows-932 (Japanese, Shift-JIS)",
	GBK:      "windows-936 (Simplified Chinese, GBK)",
	UHC:      "windows-949 (Korean, Unified Hangul Code)",
	Big5:     "windows-950 (Traditional Chinese, Big5)",
}

// CodepointAt decodes the codepoint starting at byte offset off. The second
// return value is false once off is at or past the end of buf.
func (id ID) CodepointAt(buf []byte, off uint32) (Codepoint, bool) {
	if int(off) >= len(buf) {
		return Codepoint{}, false
	}
	rest := buf[off:]

	if id == UTF8 {
		r, size := utf8.DecodeRune(rest)
		if r == utf8.RuneError && size <= 1 {
			// Invalid sequence: consume exactly one byte so rendering
			// resynchronizes on the next unit.
			return Codepoint{Value: utf8.RuneError, Len: 1, Invalid: true}, true
		}
		return Codepoint{Value: r, Len: uint8(size)}, true
	}

	cm, ok := singleByte[id]
	if !ok {
		// Unknown or unsupported page: treat every byte as undecodable
		// rather than guessing at boundaries.
		return Codepoint{Value: utf8.RuneError, Len: 1, Invalid: true}, true
	}
	r := cm.DecodeByte(rest[0])
	if r == utf8.RuneError {
		return Codepoint{Value: utf8.RuneError, Len: 1, Invalid: true}, true
	}
	return Codepoint{Value: r, Len: 1}, true
}

// Supported reports whether the classifier can decode text in this code page.
func (id ID) Supported() bool {
	if id == UTF8 {
		return true
	}
	_, ok := singleByte[id]
	return ok
}

// Known reports whether the code page is a valid #pragma code_page argument,
// even when no classifier exists for it.
func (id ID) Known() bool {
	if id.Supported() {
		return true
	}
	_, ok := multiByteNames[id]
	return ok
}

func (id ID) String() string {
	if id == UTF8 {
		return "utf-8 (65001)"
	}
	if cm, ok := singleByte[id]; ok {
		return cm.String()
	}
	if name, ok := multiByteNames[id]; ok {
		return name
	}
	return "unknown"
}
