package llm

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"sqlrecsys/server/internal/errors"
)

// GeminiClient wraps the official generative-ai SDK.
type GeminiClient struct {
	client    *genai.Client
	modelName string
	params    Params
}

// NewGeminiClient creates a Gemini client. The SDK client holds the gRPC
// connection; close it with Close when the service shuts down.
func NewGeminiClient(ctx context.Context, apiKey string, params Params) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.Wrap(errors.ProviderAuth, "gemini: create client", err)
	}
	return &GeminiClient{
		client:    client,
		modelName: params.Model,
		params:    params,
	}, nil
}

func (c *GeminiClient) Name() string { return "gemini" }

// Close releases the underlying SDK connection.
func (c *GeminiClient) Close() error { return c.client.Close() }

// Complete generates a completion. The system message maps onto the model's
// SystemInstruction rather than a chat turn.
func (c *GeminiClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.modelName)
	maxTokens := int32(c.params.MaxTokens)
	temperature := float32(c.params.Temperature)
	model.GenerationConfig = genai.GenerationConfig{
		MaxOutputTokens: &maxTokens,
		Temperature:     &temperature,
	}
	if system != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(system)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", errors.Wrap(classifyErr(err), "gemini: generate content", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New(errors.MalformedResponse, "gemini: no candidates returned")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", errors.New(errors.MalformedResponse, "gemini: candidate contained no text parts")
	}
	return sb.String(), nil
}
