package source

import (
	"os"
	"path/filepath"
)

func normalizePath(p string) string {
	// one canonical form for cross-platform diffs
	return filepath.ToSlash(filepath.Clean(p))
}

// AbsolutePath returns the absolute form of path.
func AbsolutePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return normalizePath(abs), nil
}

// RelativePath returns path relative to baseDir.
func RelativePath(path, baseDir string) (string, error) {
	rel, err := filepath.Rel(baseDir, path)
	if err != nil {
		return "", err
	}
	return normalizePath(rel), nil
}

// BaseName returns the final path element.
func BaseName(path string) string {
	return filepath.Base(path)
}

// FormatPath renders the file path for display.
// mode: "absolute", "relative", "basename", "auto"
// baseDir: base directory for relative paths (ignored by the other modes)
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := AbsolutePath(f.Path); err == nil {
			return abs
		}
		return f.Path

	case "relative":
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := RelativePath(f.Path, baseDir); err == nil {
			return rel
		}
		return f.Path

	case "basename":
		return BaseName(f.Path)

	case "auto":
		// short or relative paths as-is, long absolute ones as basename
		if len(f.Path) < 40 || !filepath.IsAbs(f.Path) {
			return f.Path
		}
		return BaseName(f.Path)

	default:
		return f.Path
	}
}
