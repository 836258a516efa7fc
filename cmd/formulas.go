package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/engihub/internal/study"
)

var formulasCmd = &cobra.Command{
	Use:     "formulas",
	Aliases: []string{"constants"},
	Short:   "Print the formula quick reference",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		list := study.QuickRef()
		if all {
			list = study.AllConstants()
		}
		printConstants(cmd.OutOrStdout(), list)
		return nil
	},
}

func init() {
	formulasCmd.Flags().BoolP("all", "a", false, "Show the full constants table")
}

func printConstants(w io.Writer, list []study.Constant) {
	width := 0
	for _, c := range list {
		width = max(width, len([]rune(c.Label)))
	}
	for _, c := range list {
		pad := strings.Repeat(" ", width-len([]rune(c.Label)))
		fmt.Fprintf(w, "%s%s  %s\n", c.Label, pad, c.Value)
	}
}
