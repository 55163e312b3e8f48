package token

// Kind represents the category of a resource-script token.
type Kind uint8

const (
	// InvalidChar indicates a byte sequence the lexer could not classify.
	InvalidChar Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Literal represents an unquoted literal (identifier, keyword, filename).
	Literal
	// Number represents a numeric literal.
	Number
	// QuotedASCIIString represents a "..." string literal.
	QuotedASCIIString
	// QuotedWideString represents an L"..." string literal.
	QuotedWideString

	// OpenBrace represents '{' or the BEGIN keyword.
	OpenBrace
	// CloseBrace represents '}' or the END keyword.
	CloseBrace
	// OpenParen represents '('.
	OpenParen
	// CloseParen represents ')'.
	CloseParen
	// Comma represents ','.
	Comma
	// Operator represents an arithmetic operator in a number expression.
	Operator
)

// NameForDisplay returns the human-readable name used in "expected X" messages.
func (k Kind) NameForDisplay() string {
	switch k {
	case InvalidChar:
		return "invalid character"
	case EOF:
		return "<eof>"
	case Literal:
		return "literal"
	case Number:
		return "number"
	case QuotedASCIIString:
		return "quoted string literal"
	case QuotedWideString:
		return "quoted wide string literal"
	case OpenBrace:
		return "'{' or BEGIN"
	case CloseBrace:
		return "'}' or END"
	case OpenParen:
		return "'('"
	case CloseParen:
		return "')'"
	case Comma:
		return "','"
	case Operator:
		return "operator"
	}
	return "unknown"
}
