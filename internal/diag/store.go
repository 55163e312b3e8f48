package diag

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// StringIndex addresses an entry in a Store's string table.
type StringIndex uint32

const (
	// fileOpenErrKindBits is the width the legacy packed layout gave
	// FileOpenErrorKind, the widest companion enum of any
	// string-referencing payload shape.
	fileOpenErrKindBits = 3

	// StringIndexBits is the narrowest index width among payload shapes
	// that reference strings.
	StringIndexBits = 32 - fileOpenErrKindBits

	// MaxStringTableLen is the hard cap on string table entries. Exceeding
	// it is resource exhaustion, never silent truncation.
	MaxStringTableLen = 1 << StringIndexBits
)

// ErrIndexSpaceExhausted is returned by PutString once the table can no
// longer hand out indices representable by every payload shape.
var ErrIndexSpaceExhausted = errors.New("diagnostic string table index space exhausted")

// Store is the append-only sequence of diagnostic records plus the owned
// string table their payloads reference. Single-writer: compilation stages
// append synchronously, rendering happens afterwards on one goroutine.
type Store struct {
	records []Record
	strings [][]byte

	// maxStrings exists so tests can exercise exhaustion without 2^29
	// appends; NewStore always sets it to MaxStringTableLen.
	maxStrings int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{maxStrings: MaxStringTableLen}
}

// Append inserts the record at the end. The record's Extra payload must have
// the shape its Kind documents; a mismatch is a producer-side programming
// error and panics.
func (s *Store) Append(r Record) {
	want, ok := kindShapes[r.Kind]
	if !ok {
		panic(fmt.Errorf("diag: kind %s is not in the catalog", r.Kind.ID()))
	}
	if r.Extra == nil {
		panic(fmt.Errorf("diag: record %s has nil extra payload", r.Kind.ID()))
	}
	if got := r.Extra.Shape(); got != want {
		panic(fmt.Errorf("diag: record %s has payload shape %d, kind documents %d", r.Kind.ID(), got, want))
	}
	s.records = append(s.records, r)
}

// PutString duplicates bytes into owned storage, appends the copy, and
// returns its index. Indices are stable for the store's lifetime.
func (s *Store) PutString(bytes []byte) (StringIndex, error) {
	if len(s.strings) >= s.maxStrings {
		return 0, ErrIndexSpaceExhausted
	}
	owned := make([]byte, len(bytes))
	copy(owned, bytes)
	idx := StringIndex(len(s.strings))
	s.strings = append(s.strings, owned)
	return idx, nil
}

// PutUint64 stores a 64-bit count as 8 raw little-endian bytes and returns
// the entry's index.
func (s *Store) PutUint64(v uint64) (StringIndex, error) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return s.PutString(buf[:])
}

// String returns the bytes stored at idx. The returned slice is owned by the
// store; callers must not mutate it.
func (s *Store) String(idx StringIndex) []byte {
	if int(idx) >= len(s.strings) {
		return nil
	}
	return s.strings[idx]
}

// Uint64 reads back a count stored with PutUint64.
func (s *Store) Uint64(idx StringIndex) uint64 {
	b := s.String(idx)
	if len(b) != 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// Contains reports whether any appended record has the given kind.
func (s *Store) Contains(kind Kind) bool {
	for i := range s.records {
		if s.records[i].Kind == kind {
			return true
		}
	}
	return false
}

// ContainsAny reports whether any appended record has one of the kinds.
func (s *Store) ContainsAny(kinds ...Kind) bool {
	for _, k := range kinds {
		if s.Contains(k) {
			return true
		}
	}
	return false
}

// HasErrors reports whether any record carries error severity.
func (s *Store) HasErrors() bool {
	for i := range s.records {
		if s.records[i].Severity == SevError {
			return true
		}
	}
	return false
}

// Len returns the number of appended records.
func (s *Store) Len() int {
	return len(s.records)
}

// Records returns the records in insertion order. The slice is owned by the
// store.
func (s *Store) Records() []Record {
	return s.records
}

// StringTableLen returns the number of string table entries.
func (s *Store) StringTableLen() int {
	return len(s.strings)
}
