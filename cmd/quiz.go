package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/engihub/internal/quiz"
	"github.com/abhisek/engihub/internal/study"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take a 5-question assessment quiz in the terminal (line mode)",
	Long: `Generate an assessment quiz for a subject and answer it line by line.

Answer with A-D or 1-4.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		subjectKey, _ := cmd.Flags().GetString("subject")
		info, err := study.LookupSubject(subjectKey)
		if err != nil {
			return err
		}

		d, err := buildDeps(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "Generating quiz for %s...\n\n", info.Subject)
		set := d.gateway.GenerateQuiz(cmd.Context(), string(info.Subject))
		if set == nil {
			return fmt.Errorf("couldn't generate a quiz right now, try again")
		}
		m, err := quiz.New(set)
		if err != nil {
			return err
		}
		return runQuiz(cmd.InOrStdin(), cmd.OutOrStdout(), m)
	},
}

func init() {
	quizCmd.Flags().StringP("subject", "s", "cs", "Subject id or name (see `engihub subjects`)")
}

// runQuiz drives m from line input until the results are reached or the
// input ends.
func runQuiz(in io.Reader, out io.Writer, m *quiz.Machine) error {
	scanner := bufio.NewScanner(in)

	for !m.Finished() {
		p := m.Progress()
		q := m.Current()

		fmt.Fprintf(out, "── Question %d of %d ──\n", p.Index+1, p.Total)
		fmt.Fprintln(out, q.Question)
		for i, opt := range q.Options {
			fmt.Fprintf(out, "  %s) %s\n", quiz.OptionLabel(i), opt)
		}

		for !m.Progress().Answered {
			fmt.Fprint(out, "\nYour answer: ")
			if !scanner.Scan() {
				fmt.Fprintln(out, "\n(input closed)")
				return scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				fmt.Fprintln(out, "Pick one of A-D.")
				continue
			}
			idx, ok := parseAnswer(line, len(q.Options))
			if !ok {
				fmt.Fprintf(out, "%q is not an option. Pick one of A-D.\n", line)
				continue
			}
			m.SelectOption(idx)
		}

		states := m.OptionStates()
		for i, s := range states {
			switch s {
			case quiz.OptionCorrect:
				if i == m.Progress().Selected {
					fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m")
				} else {
					fmt.Fprintf(out, "\033[31m✗ Wrong.\033[0m Answer: %s) %s\n", quiz.OptionLabel(i), q.Options[i])
				}
			}
		}
		if q.Explanation != "" {
			fmt.Fprintf(out, "Explanation: %s\n", q.Explanation)
		}
		fmt.Fprintln(out)

		m.Advance()
	}

	r := m.Result()
	fmt.Fprintln(out, "Quiz Complete!")
	fmt.Fprintf(out, "%s: %d/%d (%.0f%%)\n", m.Subject(), r.Score, r.Total, r.Percentage)
	fmt.Fprintf(out, "Rank: %s\n", r.Rank)
	return nil
}

// parseAnswer accepts a letter (A-D) or a 1-based number.
func parseAnswer(s string, n int) (int, bool) {
	s = strings.TrimSuffix(strings.ToUpper(strings.TrimSpace(s)), ")")
	if len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z' {
		idx := int(s[0] - 'A')
		return idx, idx < n
	}
	num, err := strconv.Atoi(s)
	if err != nil || num < 1 || num > n {
		return 0, false
	}
	return num - 1, true
}
