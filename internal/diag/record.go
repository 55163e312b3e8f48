package diag

import (
	"rcdiag/internal/codepage"
	"rcdiag/internal/token"
)

// Record is one emitted compiler message. Records are cheap to copy; the only
// indirection is through string table indices held by the Extra payload.
type Record struct {
	Kind     Kind
	Severity Severity
	Token    token.Token
	CodePage codepage.ID

	// SpanStart/SpanEnd optionally widen the underlined range beyond Token.
	SpanStart *token.Token
	SpanEnd   *token.Token

	PrintSourceLine bool
	Extra           Extra
}

// New builds a record with the default payload for kinds that carry none.
func New(kind Kind, sev Severity, tok token.Token, cp codepage.ID) Record {
	return Record{
		Kind:            kind,
		Severity:        sev,
		Token:           tok,
		CodePage:        cp,
		PrintSourceLine: true,
		Extra:           ExtraNone{},
	}
}

// WithExtra returns a copy of the record carrying the given payload.
func (r Record) WithExtra(extra Extra) Record {
	r.Extra = extra
	return r
}

// WithSpan returns a copy of the record with a widened underline range.
func (r Record) WithSpan(start, end *token.Token) Record {
	r.SpanStart = start
	r.SpanEnd = end
	return r
}

// PointCaret reports whether the kind always renders a single-point caret.
// These kinds denote exactly one offending unit regardless of byte width, so
// underlining a span would be misleading.
func (r Record) PointCaret() bool {
	switch r.Kind {
	case LexIllegalByte, LexIllegalByteOutsideStrings,
		LexIllegalCodepointOutsideStrings, LexIllegalByteOrderMark,
		LexIllegalPrivateUseCharacter:
		return true
	}
	return false
}
