package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevError aborts the compilation that produced it.
	SevError Severity = iota
	// SevWarning is for suspicious but compilable constructs.
	SevWarning
	// SevNote is a follow-up to a preceding error or warning.
	SevNote
	// SevHint is recorded but never rendered; it exists for tooling queries.
	SevHint
)

func (s Severity) String() string {
	switch s {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	case SevNote:
		return "note"
	case SevHint:
		return "hint"
	}
	return "unknown"
}
