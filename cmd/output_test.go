package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/engihub/internal/store"
	"github.com/abhisek/engihub/internal/study"
)

func TestPrintRoadmapNumbersSteps(t *testing.T) {
	var out bytes.Buffer
	printRoadmap(&out, &study.Roadmap{
		Topic: "Control Systems",
		Steps: []study.RoadmapStep{
			{Title: "Laplace transforms", Description: "s-domain basics", Duration: "1 week"},
			{Title: "Root locus"},
		},
	})

	text := out.String()
	assert.Contains(t, text, "Path to mastering: Control Systems")
	assert.Contains(t, text, " 1. Laplace transforms  (1 week)")
	assert.Contains(t, text, "    s-domain basics")
	assert.Contains(t, text, " 2. Root locus\n")
}

func TestPrintSubjectsListsCatalog(t *testing.T) {
	var out bytes.Buffer
	printSubjects(&out)
	for _, s := range study.Subjects() {
		assert.Contains(t, out.String(), string(s.Subject))
	}
}

func TestPrintConstantsAligns(t *testing.T) {
	var out bytes.Buffer
	printConstants(&out, []study.Constant{
		{Label: "g", Value: "9.81"},
		{Label: "Euler's Number", Value: "2.71828"},
	})
	assert.Equal(t, "g               9.81\nEuler's Number  2.71828\n", out.String())
}

func TestPrintEvents(t *testing.T) {
	var out bytes.Buffer
	printEvents(&out, nil)
	assert.Contains(t, out.String(), "No model calls recorded.")

	out.Reset()
	printEvents(&out, []store.LLMRequestEvent{
		{ID: 1, Timestamp: time.Now(), LLMRequestEventData: store.LLMRequestEventData{Purpose: "quiz", Model: "gpt-4o", Success: true}},
		{ID: 2, Timestamp: time.Now(), LLMRequestEventData: store.LLMRequestEventData{Purpose: "chat", Model: "gpt-4o", ErrorMessage: "timeout"}},
	})
	assert.Contains(t, out.String(), "quiz")
	assert.Contains(t, out.String(), "✗ timeout")
}

func TestPrintUsageTotalsAndCost(t *testing.T) {
	var out bytes.Buffer
	printUsage(&out, []store.PurposeUsage{
		{Purpose: "quiz", Model: "gpt-4o", Calls: 2, InputTokens: 1_000_000, OutputTokens: 0},
		{Purpose: "chat", Model: "local-model", Calls: 3, Failures: 1, InputTokens: 10, OutputTokens: 20},
	})

	text := out.String()
	assert.Contains(t, text, "$2.5000")
	assert.Contains(t, text, "TOTAL")
	assert.Contains(t, text, "Cost excludes models without known pricing.")
}
