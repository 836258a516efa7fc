package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/engihub/internal/quiz"
	"github.com/abhisek/engihub/internal/study"
)

func twoQuestionQuiz(t *testing.T) *quiz.Machine {
	t.Helper()
	m, err := quiz.New(&study.QuizSet{
		Subject: "Mechanical Engineering",
		Questions: []study.QuizQuestion{
			{Question: "Unit of stress?", Options: []string{"Pa", "N", "J", "W"}, CorrectAnswer: 0, Explanation: "Force per area."},
			{Question: "Unit of power?", Options: []string{"Pa", "N", "J", "W"}, CorrectAnswer: 3},
		},
	})
	require.NoError(t, err)
	return m
}

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"a", 0, true},
		{"D", 3, true},
		{"b)", 1, true},
		{"1", 0, true},
		{"4", 3, true},
		{"E", 4, false},
		{"0", 0, false},
		{"5", 0, false},
		{"maybe", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseAnswer(tt.in, 4)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRunQuizScoresAndRanks(t *testing.T) {
	m := twoQuestionQuiz(t)
	var out bytes.Buffer

	err := runQuiz(strings.NewReader("a\n2\n"), &out, m)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Question 1 of 2")
	assert.Contains(t, text, "Correct!")
	assert.Contains(t, text, "Explanation: Force per area.")
	assert.Contains(t, text, "Answer: D) W")
	assert.Contains(t, text, "Quiz Complete!")
	assert.Contains(t, text, "1/2 (50%)")
	assert.Contains(t, text, "Rank: "+string(quiz.RankFor(1, 2)))
	assert.True(t, m.Finished())
}

func TestRunQuizRepromptsOnBadInput(t *testing.T) {
	m := twoQuestionQuiz(t)
	var out bytes.Buffer

	err := runQuiz(strings.NewReader("\nzz\na\nd\n"), &out, m)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Pick one of A-D.")
	assert.Contains(t, text, `"zz" is not an option`)
	assert.Equal(t, 2, m.Result().Score)
}

func TestRunQuizStopsWhenInputEnds(t *testing.T) {
	m := twoQuestionQuiz(t)
	var out bytes.Buffer

	err := runQuiz(strings.NewReader("a\n"), &out, m)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "(input closed)")
	assert.False(t, m.Finished())
}
