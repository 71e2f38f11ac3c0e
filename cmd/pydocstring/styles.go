package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xonecas/pydocstring"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the supported docstring styles",
	Args:  cobra.NoArgs,
	RunE:  runStyles,
}

func runStyles(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, s := range pydocstring.Styles() {
		marker := ""
		if s == pydocstring.DefaultStyle {
			marker = " (default)"
		}
		fmt.Fprintf(out, "%s%s\n", s, marker)
	}
	return nil
}
