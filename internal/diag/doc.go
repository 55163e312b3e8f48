// Package diag defines the diagnostic record model and store for the
// resource-script compiler.
//
// # Purpose
//
//   - Provide a compact, serialisable representation of every error, warning,
//     note, and hint the compiler stages can emit.
//   - Bind each diagnostic kind to exactly one payload shape so that the
//     pairing is checked by construction rather than by convention.
//   - Own the append-only string table that payloads reference for data too
//     large to carry inline (file names, 64-bit counts).
//
// # Scope
//
// Package diag does not perform any formatting or IO. Rendering lives in
// internal/diagfmt; persistence lives in internal/dump.
//
// # Data model
//
// Record is the central type. It carries:
//
//   - Kind – catalog identifier with stable string form (kinds.go).
//   - Severity – error, warning, note, or hint. Hints are never rendered but
//     remain queryable through Contains/ContainsAny.
//   - Token – the primary location, plus optional SpanStart/SpanEnd widening
//     the underline.
//   - CodePage – the encoding active at the token, used for codepoint math.
//   - Extra – the kind-specific payload (extra.go).
//
// Insertion order is part of the observable contract: records render in
// exactly the order they were appended, reflecting compilation order.
package diag
