// Package gateway is the only code path that talks to the generative
// model. Every operation collapses failures into a fallback reply or a nil
// result; causes are logged, never returned.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/engihub/internal/llm"
	"github.com/abhisek/engihub/internal/study"
)

// Config tunes the requests the gateway sends.
type Config struct {
	// MaxTokens caps each reply. Zero leaves it to the provider.
	MaxTokens int

	// Temperature for every request. Zero leaves it to the provider.
	Temperature float64
}

// DefaultConfig returns the gateway defaults.
func DefaultConfig() Config {
	return Config{MaxTokens: 8192}
}

// Gateway wraps an llm.Provider with the study hub's prompt and schema
// contracts.
type Gateway struct {
	provider llm.Provider
	cfg      Config
	logger   *zap.Logger
}

// New creates a Gateway. A nil logger discards log output.
func New(provider llm.Provider, cfg Config, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{provider: provider, cfg: cfg, logger: logger.Named("gateway")}
}

// ExplainConcept returns a Markdown explanation of concept within subject,
// or ExplainFallback on any failure.
func (g *Gateway) ExplainConcept(ctx context.Context, concept, subject string) string {
	text, err := g.explain(ctx, concept, subject)
	if err != nil {
		g.logFailure(llm.PurposeExplain, err, zap.String("concept", concept), zap.String("subject", subject))
		return ExplainFallback
	}
	return text
}

// GenerateRoadmap returns a study roadmap for topic, or nil when none
// could be produced.
func (g *Gateway) GenerateRoadmap(ctx context.Context, topic string) *study.Roadmap {
	r, err := g.roadmap(ctx, topic)
	if err != nil {
		g.logFailure(llm.PurposeRoadmap, err, zap.String("topic", topic))
		return nil
	}
	return r
}

// GenerateQuiz returns a validated quiz for subject, or nil when none
// could be produced. A returned quiz always satisfies study.ValidateQuiz.
func (g *Gateway) GenerateQuiz(ctx context.Context, subject string) *study.QuizSet {
	q, err := g.quiz(ctx, subject)
	if err != nil {
		g.logFailure(llm.PurposeQuiz, err, zap.String("subject", subject))
		return nil
	}
	return q
}

// Converse sends the whole transcript to the tutor and returns its reply.
// Transport failures yield ChatFallback and empty replies
// EmptyChatFallback.
func (g *Gateway) Converse(ctx context.Context, history []study.Message) string {
	reply, err := g.converse(ctx, history)
	switch {
	case errors.Is(err, errEmptyReply):
		g.logFailure(llm.PurposeChat, err, zap.Int("turns", len(history)))
		return EmptyChatFallback
	case err != nil:
		g.logFailure(llm.PurposeChat, err, zap.Int("turns", len(history)))
		return ChatFallback
	}
	return reply
}

var errEmptyReply = errors.New("empty reply")

func (g *Gateway) explain(ctx context.Context, concept, subject string) (string, error) {
	resp, err := g.generate(llm.WithPurpose(ctx, llm.PurposeExplain), llm.Request{
		System:   explainSystemPrompt,
		Messages: []llm.Message{{Role: llm.RoleUser, Content: explainPrompt(concept, subject)}},
	})
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", errEmptyReply
	}
	return text, nil
}

func (g *Gateway) roadmap(ctx context.Context, topic string) (*study.Roadmap, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, errors.New("blank topic")
	}

	resp, err := g.generate(llm.WithPurpose(ctx, llm.PurposeRoadmap), llm.Request{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: roadmapPrompt(topic)}},
		Schema:   RoadmapSchema,
	})
	if err != nil {
		return nil, err
	}
	return decodeRoadmap(resp.Content, topic)
}

func (g *Gateway) quiz(ctx context.Context, subject string) (*study.QuizSet, error) {
	resp, err := g.generate(llm.WithPurpose(ctx, llm.PurposeQuiz), llm.Request{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: quizPrompt(subject)}},
		Schema:   QuizSchema,
	})
	if err != nil {
		return nil, err
	}
	return decodeQuiz(resp.Content, subject)
}

func (g *Gateway) converse(ctx context.Context, history []study.Message) (string, error) {
	if len(history) == 0 {
		return "", errors.New("empty history")
	}

	msgs := make([]llm.Message, len(history))
	for i, m := range history {
		role := llm.RoleUser
		if m.Role == study.RoleAssistant {
			role = llm.RoleAssistant
		}
		msgs[i] = llm.Message{Role: role, Content: m.Content}
	}

	resp, err := g.generate(llm.WithPurpose(ctx, llm.PurposeChat), llm.Request{
		System:   tutorSystemPrompt,
		Messages: msgs,
	})
	if err != nil {
		return "", err
	}
	reply := resp.Text()
	if reply == "" {
		return "", errEmptyReply
	}
	return reply, nil
}

func (g *Gateway) generate(ctx context.Context, req llm.Request) (resp *llm.Response, err error) {
	// A panicking provider counts as a failed call.
	defer func() {
		if r := recover(); r != nil {
			resp, err = nil, fmt.Errorf("provider panic: %v", r)
		}
	}()

	req.MaxTokens = g.cfg.MaxTokens
	req.Temperature = g.cfg.Temperature
	return g.provider.Generate(ctx, req)
}

func (g *Gateway) logFailure(purpose string, err error, fields ...zap.Field) {
	g.logger.Warn("generation failed",
		append([]zap.Field{zap.String("purpose", purpose), zap.Error(err)}, fields...)...)
}
