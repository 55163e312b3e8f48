package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rcdiag/internal/diag"
)

var explainCmd = &cobra.Command{
	Use:   "explain <KIND-ID>",
	Short: "Show the catalog entry for a diagnostic kind",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := strings.ToUpper(strings.TrimSpace(args[0]))
		kind, ok := diag.KindFromID(id)
		if !ok {
			return fmt.Errorf("unknown diagnostic id %q (see 'rcdiag catalog')", args[0])
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n", kind)
		fmt.Fprintf(out, "group: %s\n", kind.Group())
		if shape, ok := diag.ShapeForKind(kind); ok {
			fmt.Fprintf(out, "payload: %s\n", shapeName(shape))
		}
		return nil
	},
}

func shapeName(s diag.Shape) string {
	switch s {
	case diag.ShapeNone:
		return "none"
	case diag.ShapeExpectedKind:
		return "expected token kind"
	case diag.ShapeExpectedTypes:
		return "expected construct set"
	case diag.ShapeNumber:
		return "numeric value"
	case diag.ShapeFileOpen:
		return "file open error + file name"
	case diag.ShapeAccelerator:
		return "accelerator error"
	case diag.ShapeIconDir:
		return "icon/cursor group context"
	case diag.ShapeStringAndLanguage:
		return "string id + language"
	case diag.ShapeFilename:
		return "file name"
	case diag.ShapeByteCount:
		return "64-bit byte count"
	}
	return "unknown"
}
