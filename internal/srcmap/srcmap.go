// Package srcmap holds the line-mapping table produced by the preprocessing
// stage: for each line of the preprocessed buffer, the originating file and
// the span of original lines that produced it. The diagnostics renderer
// consumes it read-only to print "this line originated from ..." notes.
package srcmap

import (
	"fmt"

	"fortio.org/safecast"
)

// FileID identifies an original file inside one Mappings table.
type FileID uint32

// Span is the original-file line range a preprocessed line came from.
// Lines are 1-based and the range is inclusive.
type Span struct {
	File      FileID
	StartLine uint32
	EndLine   uint32
}

// Mappings maps preprocessed line numbers to original-file spans.
// Built once per compilation, then read-only.
type Mappings struct {
	spans map[uint32]Span
	files []string
}

// NewMappings returns an empty table.
func NewMappings() *Mappings {
	return &Mappings{spans: make(map[uint32]Span)}
}

// AddFile registers an original file name and returns its ID. Names are not
// deduplicated; the preprocessor emits each file once.
func (m *Mappings) AddFile(name string) FileID {
	lenFiles, err := safecast.Conv[uint32](len(m.files))
	if err != nil {
		panic(fmt.Errorf("len mapping files overflow: %w", err))
	}
	m.files = append(m.files, name)
	return FileID(lenFiles)
}

// Set records the span for a preprocessed line, replacing any previous entry.
func (m *Mappings) Set(line uint32, sp Span) {
	m.spans[line] = sp
}

// CorrespondingSpan returns the original span for a preprocessed line.
// ok is false when the line has no mapping.
func (m *Mappings) CorrespondingSpan(line uint32) (Span, bool) {
	if m == nil {
		return Span{}, false
	}
	sp, ok := m.spans[line]
	return sp, ok
}

// FileName resolves a FileID to the registered original file name.
func (m *Mappings) FileName(id FileID) string {
	if int(id) >= len(m.files) {
		return ""
	}
	return m.files[id]
}

// Files returns the registered file names in registration order.
func (m *Mappings) Files() []string {
	return m.files
}

// Lines returns every mapped preprocessed line number, unordered.
func (m *Mappings) Lines() []uint32 {
	out := make([]uint32, 0, len(m.spans))
	for line := range m.spans {
		out = append(out, line)
	}
	return out
}
