// Package llm provides the model client capability and its provider
// implementations (GigaChat, OpenAI, Gemini). Each variant differs only in
// endpoint, auth and encoding; the contract is "generate a completion for a
// prompt" and nothing else.
package llm

import "context"

// Client generates completions for prompts.
type Client interface {
	// Complete sends the prompt, with an optional system message, and returns
	// the completion text. Failures carry a provider error kind; raw provider
	// errors never escape past the wrapping.
	Complete(ctx context.Context, system, prompt string) (string, error)

	// Name reports the provider name for logs and metrics.
	Name() string
}

// Params holds the generation parameters shared by all providers.
type Params struct {
	Model       string
	MaxTokens   int
	Temperature float64
}
