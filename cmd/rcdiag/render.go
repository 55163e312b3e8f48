package main

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"rcdiag/internal/diag"
	"rcdiag/internal/diagfmt"
	"rcdiag/internal/dump"
	"rcdiag/internal/observ"
	"rcdiag/internal/ui"
)

func init() {
	renderCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	renderCmd.Flags().String("paths", "", "path display mode (auto|absolute|relative|basename)")
	renderCmd.Flags().Int("jobs", runtime.NumCPU(), "number of dumps to load in parallel")
	renderCmd.Flags().String("ui", "off", "interactive diagnostics browser (auto|on|off)")
}

var renderCmd = &cobra.Command{
	Use:   "render [flags] <dump>...",
	Short: "Render diagnostic dumps as human-readable text",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRender,
}

type renderedDump struct {
	path     string
	text     string
	errCount int
}

func readPathMode(value string) (diagfmt.PathMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return diagfmt.PathModeAuto, nil
	case "absolute":
		return diagfmt.PathModeAbsolute, nil
	case "relative":
		return diagfmt.PathModeRelative, nil
	case "basename":
		return diagfmt.PathModeBasename, nil
	default:
		return diagfmt.PathModeAuto, fmt.Errorf("invalid path mode %q (expected auto|absolute|relative|basename)", value)
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	timer := observ.NewTimer()

	cfg, err := loadToolConfig(".")
	if err != nil {
		return err
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "short":
	default:
		return fmt.Errorf("unsupported format %q (must be pretty, json, or short)", format)
	}

	pathsFlag, err := cmd.Flags().GetString("paths")
	if err != nil {
		return fmt.Errorf("failed to get paths flag: %w", err)
	}
	if pathsFlag == "" && cfg != nil {
		pathsFlag = cfg.Render.PathMode
	}
	pathMode, err := readPathMode(pathsFlag)
	if err != nil {
		return err
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs < 1 {
		jobs = 1
	}

	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	useTUI := shouldUseTUI(mode)
	if useTUI && !isTerminal(os.Stdout) {
		return fmt.Errorf("--ui on requires a terminal")
	}

	useColor, err := resolveColor(cmd, cfg)
	if err != nil {
		return err
	}
	if useTUI {
		// The browser renders into its own viewport; ANSI sequences from
		// the text renderer pass through it fine, but keep colors off so
		// copied text stays clean.
		useColor = false
	}

	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	opts := diagfmt.Options{Color: useColor, PathMode: pathMode}

	// Load and render in parallel, emit strictly in argument order.
	phase := timer.Begin("load+render")
	results := make([]renderedDump, len(args))
	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(min(jobs, len(args)))
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			store, file, mappings, err := dump.Load(path)
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			switch format {
			case "pretty":
				if err := diagfmt.RenderAll(&buf, store, file, mappings, opts); err != nil {
					return err
				}
			case "json":
				jsonOpts := diagfmt.JSONOpts{IncludePositions: true, PathMode: pathMode}
				if err := diagfmt.JSON(&buf, store, file, jsonOpts); err != nil {
					return err
				}
			case "short":
				if out := diagfmt.FormatShort(store, file); out != "" {
					fmt.Fprintln(&buf, out)
				}
			}
			errCount := 0
			for _, rec := range store.Records() {
				if rec.Severity == diag.SevError {
					errCount++
				}
			}
			results[i] = renderedDump{path: path, text: buf.String(), errCount: errCount}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	timer.End(phase, fmt.Sprintf("%d dump(s)", len(args)))

	exitCode := 0
	for _, r := range results {
		if r.errCount > 0 {
			exitCode = 1
		}
	}

	if useTUI {
		entries := make([]ui.Entry, 0, len(results))
		for _, r := range results {
			entries = append(entries, ui.Entry{Title: r.path, Body: r.text, Errors: r.errCount})
		}
		program := tea.NewProgram(ui.NewBrowserModel(entries), tea.WithOutput(os.Stdout), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			fmt.Fprint(os.Stdout, r.text)
		}
	}

	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	if exitCode != 0 {
		// Suppress cobra usage output; diagnostics were already printed.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}
