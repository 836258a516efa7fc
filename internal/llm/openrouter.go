package llm

import "fmt"

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// NewOpenRouterProvider reaches OpenRouter through its OpenAI-compatible
// endpoint. Model ids use OpenRouter's vendor/model form and are passed
// through unchanged.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}
	return newChatCompletionsProvider(cfg.APIKey, openRouterBaseURL, cfg.Model), nil
}
