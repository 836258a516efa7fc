package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/engihub/internal/study"
)

var explainCmd = &cobra.Command{
	Use:   "explain <concept>",
	Short: "Explain an engineering concept within a subject",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subjectKey, _ := cmd.Flags().GetString("subject")
		info, err := study.LookupSubject(subjectKey)
		if err != nil {
			return err
		}
		concept := strings.TrimSpace(strings.Join(args, " "))
		if concept == "" {
			return fmt.Errorf("concept must not be blank")
		}

		d, err := buildDeps(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		text := d.gateway.ExplainConcept(cmd.Context(), concept, string(info.Subject))
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

func init() {
	explainCmd.Flags().StringP("subject", "s", "cs", "Subject id or name (see `engihub subjects`)")
}
