package token

// Token is an opaque reference into source text, produced and owned by the
// lexer. The byte range is [Start, End); Line is 1-based. Diagnostics hold
// tokens by value and never mutate them.
type Token struct {
	Start uint32
	End   uint32
	Line  uint32
	Kind  Kind
}

// Text returns the raw source bytes the token covers.
func (t Token) Text(src []byte) []byte {
	if t.Start >= t.End || int(t.End) > len(src) {
		return nil
	}
	return src[t.Start:t.End]
}

// NameForDisplay returns the text used when interpolating the token into a
// diagnostic message: the raw slice, or "<eof>" for the end-of-file token.
func (t Token) NameForDisplay(src []byte) string {
	if t.Kind == EOF {
		return "<eof>"
	}
	return string(t.Text(src))
}

// Len returns the byte length of the token.
func (t Token) Len() uint32 {
	if t.End < t.Start {
		return 0
	}
	return t.End - t.Start
}
