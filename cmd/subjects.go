package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/engihub/internal/study"
)

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List the engineering subjects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printSubjects(cmd.OutOrStdout())
		return nil
	},
}

var subjectsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a subject and its study modules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := study.LookupSubject(args[0])
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s %s\n", info.Icon, info.Subject)
		fmt.Fprintln(w, info.Description)
		fmt.Fprintln(w)
		for _, m := range study.Modules(info.Subject) {
			fmt.Fprintf(w, "  %-28s  %s\n", m.Title, m.Summary)
		}
		return nil
	},
}

func init() {
	subjectsCmd.AddCommand(subjectsShowCmd)
}

func printSubjects(w io.Writer) {
	fmt.Fprintf(w, "%-11s  %-32s  %s\n", "ID", "Subject", "Covers")
	fmt.Fprintln(w, strings.Repeat("─", 100))
	for _, s := range study.Subjects() {
		fmt.Fprintf(w, "%-11s  %-32s  %s\n", s.ID, s.Subject, s.Description)
	}
}
