package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLineBounds(t *testing.T) {
	f := NewFile("test.rc", []byte("first\nsecond\r\nthird"))

	tests := []struct {
		name      string
		off       uint32
		wantStart uint32
		wantEnd   uint32
	}{
		{"start of first line", 0, 0, 5},
		{"middle of first line", 3, 0, 5},
		{"start of second line", 6, 6, 13},
		{"cr stays on its line", 12, 6, 13},
		{"last line without newline", 15, 14, 19},
		{"offset past end clamps", 100, 14, 19},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := f.Line(tt.off)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("Line(%d) = [%d, %d), want [%d, %d)",
					tt.off, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestContentKeptVerbatim(t *testing.T) {
	raw := []byte("a\r\nb\xef\xbb\xbfc")
	f := NewFile("raw.rc", raw)
	if string(f.Content) != string(raw) {
		t.Fatalf("Content = %q, want %q without normalization", f.Content, raw)
	}
	if f.Len() != uint32(len(raw)) {
		t.Fatalf("Len() = %d, want %d", f.Len(), len(raw))
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "res.rc")
	if err := os.WriteFile(path, []byte("STRINGTABLE\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if string(f.Content) != "STRINGTABLE\n" {
		t.Errorf("Content = %q", f.Content)
	}

	if _, err := Load(filepath.Join(dir, "missing.rc")); err == nil {
		t.Error("Load(missing) should fail")
	}
}

func TestFormatPath(t *testing.T) {
	f := NewFile("sub/dir/app.rc", nil)

	if got := f.FormatPath("basename", ""); got != "app.rc" {
		t.Errorf("basename = %q", got)
	}
	if got := f.FormatPath("auto", ""); got != "sub/dir/app.rc" {
		t.Errorf("auto = %q", got)
	}
	if got := f.FormatPath("", ""); got != "sub/dir/app.rc" {
		t.Errorf("unknown mode = %q", got)
	}

	rel := f.FormatPath("relative", "sub")
	if rel != "dir/app.rc" {
		t.Errorf("relative = %q, want %q", rel, "dir/app.rc")
	}

	abs := f.FormatPath("absolute", "")
	if !filepath.IsAbs(filepath.FromSlash(abs)) {
		t.Errorf("absolute = %q, want an absolute path", abs)
	}
}
