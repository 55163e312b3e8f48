package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"rcdiag/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "rcdiag",
	Short: "Diagnostics tooling for the resource-script compiler",
	Long:  `rcdiag renders, explains, and browses diagnostic dumps produced by the resource-script compiler`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is connected to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
