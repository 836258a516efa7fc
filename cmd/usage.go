package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/engihub/internal/llm"
	"github.com/abhisek/engihub/internal/store"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Inspect recorded model calls",
}

var usageListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent model calls",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openUsageStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMRequests(cmd.Context(), store.QueryOpts{Limit: limit, Purpose: purpose})
		if err != nil {
			return fmt.Errorf("query usage log: %w", err)
		}
		printEvents(cmd.OutOrStdout(), events)
		return nil
	},
}

var usageStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage and estimated cost per purpose",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openUsageStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		stats, err := s.EventRepo().UsageByPurpose(cmd.Context())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		printUsage(cmd.OutOrStdout(), stats)
		return nil
	},
}

func init() {
	usageListCmd.Flags().IntP("limit", "n", 20, "Number of calls to show")
	usageListCmd.Flags().StringP("purpose", "p", "", "Only show calls with this purpose")

	usageCmd.AddCommand(usageListCmd)
	usageCmd.AddCommand(usageStatsCmd)
}

func openUsageStore(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return openStore(cmd, cfg)
}

func printEvents(w io.Writer, events []store.LLMRequestEvent) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No model calls recorded.")
		return
	}

	fmt.Fprintf(w, "%-5s  %-19s  %-10s  %-28s  %-6s  %-6s  %-7s  %s\n",
		"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
	fmt.Fprintln(w, strings.Repeat("─", 100))

	for _, e := range events {
		ok := "✓"
		if !e.Success {
			ok = "✗ " + e.ErrorMessage
		}
		model := e.Model
		if len(model) > 28 {
			model = model[:28]
		}
		fmt.Fprintf(w, "%-5d  %-19s  %-10s  %-28s  %-6d  %-6d  %-7d  %s\n",
			e.ID,
			e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			e.Purpose,
			model,
			e.InputTokens,
			e.OutputTokens,
			e.LatencyMs,
			ok,
		)
	}
}

func printUsage(w io.Writer, stats []store.PurposeUsage) {
	if len(stats) == 0 {
		fmt.Fprintln(w, "No model usage recorded yet.")
		return
	}

	rule := strings.Repeat("─", 104)
	fmt.Fprintf(w, "%-10s  %-28s  %6s  %6s  %10s  %10s  %8s  %9s\n",
		"Purpose", "Model", "Calls", "Failed", "Input", "Output", "Avg Ms", "Est. Cost")
	fmt.Fprintln(w, rule)

	var (
		totalCalls, totalFailed int
		totalIn, totalOut       int64
		totalCost               float64
		unpriced                bool
	)
	for _, st := range stats {
		cost := "-"
		if mc := llm.LookupCost(st.Model); mc != nil {
			c := mc.Cost(st.InputTokens, st.OutputTokens)
			totalCost += c
			cost = fmt.Sprintf("$%.4f", c)
		} else {
			unpriced = true
		}
		fmt.Fprintf(w, "%-10s  %-28s  %6d  %6d  %10d  %10d  %8.0f  %9s\n",
			st.Purpose, st.Model, st.Calls, st.Failures, st.InputTokens, st.OutputTokens, st.AvgLatencyMs, cost)
		totalCalls += st.Calls
		totalFailed += st.Failures
		totalIn += st.InputTokens
		totalOut += st.OutputTokens
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-10s  %-28s  %6d  %6d  %10d  %10d  %8s  %9s\n",
		"TOTAL", "", totalCalls, totalFailed, totalIn, totalOut, "", fmt.Sprintf("$%.4f", totalCost))
	if unpriced {
		fmt.Fprintln(w, "\nCost excludes models without known pricing.")
	}
}
