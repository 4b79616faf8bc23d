package llm

import (
	"context"
	"fmt"

	"sqlrecsys/server/internal/config"
	"sqlrecsys/server/internal/errors"
)

// New builds the model client selected by the configuration. The config must
// already be validated; an unknown model type here is still reported rather
// than panicking.
func New(ctx context.Context, cfg config.Config) (Client, error) {
	params := Params{
		Model:       cfg.SelectedModelName(),
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	}

	switch cfg.ModelType {
	case config.ModelGiga:
		return NewGigaChatClient(cfg.APIKey, "", "", params), nil
	case config.ModelOpenAI:
		return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, params), nil
	case config.ModelGemini:
		return NewGeminiClient(ctx, cfg.GoogleAPIKey, params)
	default:
		return nil, errors.New(errors.ConfigInvalid, fmt.Sprintf("unsupported model type %q", cfg.ModelType))
	}
}
