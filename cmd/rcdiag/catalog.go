package main

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"rcdiag/internal/diag"
)

func init() {
	catalogCmd.Flags().String("group", "", "only show one group (lexer|parser|compiler|literal|general)")
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List every diagnostic kind in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		groupName, err := cmd.Flags().GetString("group")
		if err != nil {
			return fmt.Errorf("failed to get group flag: %w", err)
		}
		filter := diag.GroupUnknown
		if groupName != "" {
			g, ok := diag.GroupFromName(groupName)
			if !ok {
				return fmt.Errorf("unknown group %q (expected lexer|parser|compiler|literal|general)", groupName)
			}
			filter = g
		}

		kinds := diag.AllKinds()
		idWidth, groupWidth := 0, 0
		for _, k := range kinds {
			idWidth = max(idWidth, runewidth.StringWidth(k.ID()))
			groupWidth = max(groupWidth, runewidth.StringWidth(k.Group().String()))
		}

		out := cmd.OutOrStdout()
		for _, k := range kinds {
			if filter != diag.GroupUnknown && k.Group() != filter {
				continue
			}
			fmt.Fprintf(out, "%s  %s  %s\n",
				runewidth.FillRight(k.ID(), idWidth),
				runewidth.FillRight(k.Group().String(), groupWidth),
				k.Title())
		}
		return nil
	},
}
