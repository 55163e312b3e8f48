// Package source holds the preprocessed source buffer diagnostics point into,
// plus line-boundary scanning and path display helpers.
package source

import (
	"fmt"
	"os"

	"fortio.org/safecast"
)

// File is one source buffer. Content is kept exactly as the preprocessor
// produced it: no CRLF normalization, no BOM stripping. The renderer decides
// per code page how bytes are displayed.
type File struct {
	Path    string
	Content []byte
}

// NewFile wraps an in-memory buffer (tests, stdin).
func NewFile(path string, content []byte) *File {
	return &File{Path: normalizePath(path), Content: content}
}

// Load reads a file from disk without normalizing its bytes.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return NewFile(path, content), nil
}

// Len returns the content length as uint32, the offset type used everywhere.
func (f *File) Len() uint32 {
	n, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return n
}

// LineStart scans backward from off to the byte after the previous '\n'
// (or the start of the buffer).
func (f *File) LineStart(off uint32) uint32 {
	if off > f.Len() {
		off = f.Len()
	}
	for off > 0 && f.Content[off-1] != '\n' {
		off--
	}
	return off
}

// LineEnd scans forward from off to the next '\n' (exclusive) or the end of
// the buffer.
func (f *File) LineEnd(off uint32) uint32 {
	n := f.Len()
	for off < n && f.Content[off] != '\n' {
		off++
	}
	return off
}

// Line returns the bounds [start, end) of the line containing off.
func (f *File) Line(off uint32) (start, end uint32) {
	start = f.LineStart(off)
	return start, f.LineEnd(off)
}
