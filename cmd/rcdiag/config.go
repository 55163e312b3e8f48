package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// toolConfig is the optional rcdiag.toml discovered by walking up from the
// working directory. It only provides render defaults; explicit flags win.
type toolConfig struct {
	Render renderConfig `toml:"render"`
}

type renderConfig struct {
	Color    string `toml:"color"`     // auto|on|off
	PathMode string `toml:"path_mode"` // auto|absolute|relative|basename
}

func findToolToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "rcdiag.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadToolConfig(startDir string) (*toolConfig, error) {
	path, ok, err := findToolToml(startDir)
	if err != nil || !ok {
		return nil, err
	}
	var cfg toolConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if meta.IsDefined("render", "color") {
		if _, err := readColorMode(cfg.Render.Color); err != nil {
			return nil, fmt.Errorf("%s: [render].color: %w", path, err)
		}
	}
	if meta.IsDefined("render", "path_mode") {
		if _, err := readPathMode(cfg.Render.PathMode); err != nil {
			return nil, fmt.Errorf("%s: [render].path_mode: %w", path, err)
		}
	}
	return &cfg, nil
}
