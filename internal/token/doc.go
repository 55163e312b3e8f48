// Package token defines the lexical token model consumed by the diagnostics
// engine. Tokens carry a byte range into the preprocessed source buffer plus
// the 1-based line they start on; the diagnostics code treats them as
// immutable location handles.
package token
