package gateway

import (
	"github.com/abhisek/engihub/internal/llm"
	"github.com/abhisek/engihub/internal/study"
)

const questionsPerQuiz = study.QuestionsPerQuiz

// RoadmapSchema is the structured-output contract for generateRoadmap.
var RoadmapSchema = &llm.Schema{
	Name:        "study-roadmap",
	Description: "An ordered study roadmap for an engineering topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic": map[string]any{
				"type": "string",
			},
			"steps": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":       map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"duration":    map[string]any{"type": "string"},
					},
					"required":             []any{"title", "description", "duration"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"topic", "steps"},
		"additionalProperties": false,
	},
}

// QuizSchema is the structured-output contract for generateQuiz. It
// constrains types only; option count and answer range are checked after
// decoding.
var QuizSchema = &llm.Schema{
	Name:        "engineering-quiz",
	Description: "A multiple choice quiz for an engineering subject",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"subject": map[string]any{
				"type": "string",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"options": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"correctAnswer": map[string]any{
							"type":        "integer",
							"description": "Index of the correct option (0-3)",
						},
						"explanation": map[string]any{"type": "string"},
					},
					"required":             []any{"question", "options", "correctAnswer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"subject", "questions"},
		"additionalProperties": false,
	},
}
