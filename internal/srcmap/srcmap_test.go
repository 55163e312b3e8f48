package srcmap

import (
	"sort"
	"testing"
)

func TestMappings(t *testing.T) {
	m := NewMappings()

	root := m.AddFile("app.rc")
	inc := m.AddFile("inc/strings.rc")
	if root != 0 || inc != 1 {
		t.Fatalf("AddFile ids = %d, %d; want 0, 1", root, inc)
	}
	if got := m.FileName(inc); got != "inc/strings.rc" {
		t.Errorf("FileName(%d) = %q", inc, got)
	}
	if got := m.FileName(FileID(99)); got != "" {
		t.Errorf("FileName(unknown) = %q, want empty", got)
	}

	m.Set(1, Span{File: root, StartLine: 1, EndLine: 1})
	m.Set(2, Span{File: inc, StartLine: 10, EndLine: 12})
	m.Set(2, Span{File: inc, StartLine: 10, EndLine: 14})

	sp, ok := m.CorrespondingSpan(2)
	if !ok || sp != (Span{File: inc, StartLine: 10, EndLine: 14}) {
		t.Errorf("CorrespondingSpan(2) = %+v, %v; want replaced span", sp, ok)
	}
	if _, ok := m.CorrespondingSpan(3); ok {
		t.Error("CorrespondingSpan(3) should report no mapping")
	}

	lines := m.Lines()
	sort.Slice(lines, func(i, j int) bool { return lines[i] < lines[j] })
	if len(lines) != 2 || lines[0] != 1 || lines[1] != 2 {
		t.Errorf("Lines() = %v, want [1 2]", lines)
	}

	files := m.Files()
	if len(files) != 2 || files[0] != "app.rc" || files[1] != "inc/strings.rc" {
		t.Errorf("Files() = %v", files)
	}
}

func TestNilMappings(t *testing.T) {
	var m *Mappings
	if _, ok := m.CorrespondingSpan(1); ok {
		t.Error("nil Mappings should have no spans")
	}
}
