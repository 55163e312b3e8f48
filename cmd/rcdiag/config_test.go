package main

import (
	"os"
	"path/filepath"
	"testing"

	"rcdiag/internal/diagfmt"
)

func TestReadColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    colorMode
		wantErr bool
	}{
		{"", colorModeAuto, false},
		{"auto", colorModeAuto, false},
		{"on", colorModeOn, false},
		{"OFF", colorModeOff, false},
		{" on ", colorModeOn, false},
		{"yes", "", true},
	}
	for _, tt := range tests {
		got, err := readColorMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("readColorMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("readColorMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReadPathMode(t *testing.T) {
	tests := []struct {
		in      string
		want    diagfmt.PathMode
		wantErr bool
	}{
		{"auto", diagfmt.PathModeAuto, false},
		{"", diagfmt.PathModeAuto, false},
		{"absolute", diagfmt.PathModeAbsolute, false},
		{"relative", diagfmt.PathModeRelative, false},
		{"basename", diagfmt.PathModeBasename, false},
		{"full", 0, true},
	}
	for _, tt := range tests {
		got, err := readPathMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("readPathMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("readPathMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFindToolToml(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(root, "rcdiag.toml")
	if err := os.WriteFile(cfgPath, []byte("[render]\ncolor = \"off\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	path, ok, err := findToolToml(nested)
	if err != nil {
		t.Fatalf("findToolToml() error: %v", err)
	}
	if !ok || path != cfgPath {
		t.Errorf("findToolToml() = %q, %v; want %q from ancestor walk", path, ok, cfgPath)
	}
}

func TestLoadToolConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		dir := t.TempDir()
		content := "[render]\ncolor = \"off\"\npath_mode = \"basename\"\n"
		if err := os.WriteFile(filepath.Join(dir, "rcdiag.toml"), []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
		cfg, err := loadToolConfig(dir)
		if err != nil {
			t.Fatalf("loadToolConfig() error: %v", err)
		}
		if cfg == nil || cfg.Render.Color != "off" || cfg.Render.PathMode != "basename" {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("invalid color value", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "rcdiag.toml"), []byte("[render]\ncolor = \"purple\"\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := loadToolConfig(dir); err == nil {
			t.Error("loadToolConfig should reject an invalid color mode")
		}
	})

	t.Run("malformed toml", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "rcdiag.toml"), []byte("[render\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := loadToolConfig(dir); err == nil {
			t.Error("loadToolConfig should reject malformed TOML")
		}
	})
}
