package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlrecsys/server/internal/config"
	"sqlrecsys/server/internal/errors"
)

func TestNewSelectsProvider(t *testing.T) {
	cfg := config.Config{
		ModelType:       config.ModelOpenAI,
		OpenAIAPIKey:    "k",
		OpenAIModelName: "gpt-4o-mini",
		MaxTokens:       256,
		Temperature:     0.1,
	}
	client, err := New(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "openai", client.Name())
	assert.IsType(t, &OpenAIClient{}, client)

	cfg.ModelType = config.ModelGiga
	cfg.APIKey = "k"
	cfg.ModelName = "GigaChat"
	client, err = New(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "gigachat", client.Name())
}

func TestNewRejectsUnknownType(t *testing.T) {
	_, err := New(context.Background(), config.Config{ModelType: "mistral"})
	require.Error(t, err)
	assert.Equal(t, errors.ConfigInvalid, errors.KindOf(err))
}
