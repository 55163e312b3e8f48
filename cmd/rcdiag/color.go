package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

type colorMode string

const (
	colorModeAuto colorMode = "auto"
	colorModeOn   colorMode = "on"
	colorModeOff  colorMode = "off"
)

func readColorMode(value string) (colorMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return colorModeAuto, nil
	case "on":
		return colorModeOn, nil
	case "off":
		return colorModeOff, nil
	default:
		return "", fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

func shouldColor(mode colorMode) bool {
	switch mode {
	case colorModeOn:
		return true
	case colorModeOff:
		return false
	default:
		return isTerminal(os.Stdout)
	}
}

// resolveColor reads the persistent --color flag, falling back to the config
// default when the flag was not set explicitly.
func resolveColor(cmd *cobra.Command, cfg *toolConfig) (bool, error) {
	value, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	if !cmd.Root().PersistentFlags().Changed("color") && cfg != nil && cfg.Render.Color != "" {
		value = cfg.Render.Color
	}
	mode, err := readColorMode(value)
	if err != nil {
		return false, err
	}
	return shouldColor(mode), nil
}
