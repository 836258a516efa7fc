package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// Provider is the abstraction every model backend implements.
// The gateway only ever talks to a Provider, never to a vendor SDK.
type Provider interface {
	// Generate sends a request to the model. When req.Schema is set the
	// provider asks for structured output and validates the returned JSON
	// against the schema before handing it back.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes a single model call.
type Request struct {
	// System is the fixed system instruction for the call.
	System string

	// Messages is the ordered conversation. Single-shot requests carry one
	// user message; tutor chat carries the whole transcript.
	Messages []Message

	// Schema, when set, constrains the response to JSON of that shape.
	// When nil, Response.Content holds plain text.
	Schema *Schema

	// MaxTokens caps the response length. Zero leaves it to the provider.
	MaxTokens int

	// Temperature controls randomness. Zero leaves it to the provider.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role in the local vocabulary. Providers map
// it onto their own (Gemini calls the assistant "model").
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema, kebab-case, e.g. "study-roadmap".
	Name string

	// Description is sent to providers that accept one.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the validated JSON object for schema requests and the raw
	// reply text otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is one of StopEnd, StopMaxTokens or StopError.
	StopReason string
}

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
	StopError     = "error"
)

// Text returns the reply as trimmed plain text.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(string(r.Content))
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// complete builds the Response for a finished call. A structured reply
// must be whole and match req.Schema; plain text passes through.
func complete(req Request, content json.RawMessage, stop, model string, usage Usage) (*Response, error) {
	if req.Schema != nil {
		if stop == StopMaxTokens {
			return nil, &ErrMaxTokensExceeded{Content: content}
		}
		if err := validateResponse(req.Schema, content); err != nil {
			return nil, err
		}
	}
	return &Response{Content: content, Usage: usage, Model: model, StopReason: stop}, nil
}

// classifyStatus maps the HTTP status of a vendor API error onto the
// local error types. Only 429 is a rate limit; the rest count as the
// provider being unavailable.
func classifyStatus(status int, err error) error {
	if status == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}
