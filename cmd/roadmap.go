package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/engihub/internal/roadmap"
	"github.com/abhisek/engihub/internal/study"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap <topic>",
	Short: "Generate a step-by-step study roadmap for a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var flow roadmap.Flow
		topic, ok := flow.Begin(strings.Join(args, " "))
		if !ok {
			return fmt.Errorf("topic must not be blank")
		}

		d, err := buildDeps(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		flow.Complete(topic, d.gateway.GenerateRoadmap(cmd.Context(), topic))
		if flow.Active() == nil {
			return fmt.Errorf("%s", flow.Notice())
		}
		printRoadmap(cmd.OutOrStdout(), flow.Active())
		return nil
	},
}

func printRoadmap(w io.Writer, r *study.Roadmap) {
	fmt.Fprintf(w, "Path to mastering: %s\n", r.Topic)
	fmt.Fprintln(w, strings.Repeat("─", 60))
	for _, e := range roadmap.Entries(r) {
		fmt.Fprintf(w, "%2d. %s", e.Number, e.Title)
		if e.Duration != "" {
			fmt.Fprintf(w, "  (%s)", e.Duration)
		}
		fmt.Fprintln(w)
		if e.Description != "" {
			fmt.Fprintf(w, "    %s\n", e.Description)
		}
	}
}
