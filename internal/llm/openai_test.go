package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlrecsys/server/internal/errors"
)

func chatReply(t *testing.T, w http.ResponseWriter, content string) {
	t.Helper()
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	}
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(resp))
}

func TestOpenAICompleteSendsSystemMessage(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		chatReply(t, w, "hello")
	}))
	defer srv.Close()

	c := NewOpenAIClient("test-key", srv.URL, Params{Model: "gpt-4o-mini", MaxTokens: 128, Temperature: 0.1})
	out, err := c.Complete(context.Background(), "be terse", "say hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)

	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "be terse", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.Equal(t, 128, got.MaxTokens)
}

func TestOpenAICompleteRetriesServerErrors(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "upstream down", http.StatusBadGateway)
			return
		}
		chatReply(t, w, "recovered")
	}))
	defer srv.Close()

	c := NewOpenAIClient("k", srv.URL, Params{Model: "m"})
	out, err := c.Complete(context.Background(), "", "p")
	require.NoError(t, err)
	assert.Equal(t, "recovered", out)
	assert.Equal(t, 2, calls)
}

func TestOpenAICompleteDoesNotRetryAuthErrors(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, `{"error":{"message":"bad key"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewOpenAIClient("bad", srv.URL, Params{Model: "m"})
	_, err := c.Complete(context.Background(), "", "p")
	require.Error(t, err)
	assert.Equal(t, errors.ProviderAuth, errors.KindOf(err))
	assert.Equal(t, 1, calls)
}

func TestOpenAICompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient("k", srv.URL, Params{Model: "m"})
	_, err := c.Complete(context.Background(), "", "p")
	require.Error(t, err)
	assert.Equal(t, errors.MalformedResponse, errors.KindOf(err))
}

func TestClassifyStatus(t *testing.T) {
	assert.Equal(t, errors.ProviderAuth, classifyStatus(http.StatusUnauthorized))
	assert.Equal(t, errors.ProviderAuth, classifyStatus(http.StatusForbidden))
	assert.Equal(t, errors.ProviderRateLimited, classifyStatus(http.StatusTooManyRequests))
	assert.Equal(t, errors.ProviderUnavailable, classifyStatus(http.StatusServiceUnavailable))
}
