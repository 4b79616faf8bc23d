package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"sqlrecsys/server/internal/errors"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"

	maxRetries        = 3
	initialRetryDelay = 1 * time.Second
	backoffFactor     = 2.0
)

// OpenAIClient talks to OpenAI's Chat Completions API over plain HTTP.
type OpenAIClient struct {
	apiKey  string
	baseURL string
	params  Params
	client  *http.Client
}

// NewOpenAIClient creates an OpenAI client. baseURL may be empty to use the
// public endpoint; it is overridable for proxies and tests.
func NewOpenAIClient(apiKey, baseURL string, params Params) *OpenAIClient {
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	return &OpenAIClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		params:  params,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *OpenAIClient) Name() string { return "openai" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete sends the prompt and retries transient failures with jittered
// exponential backoff.
func (c *OpenAIClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	var lastErr error
	delay := initialRetryDelay

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			// Jitter: random value between 0.5x and 1.5x of delay.
			jitter := delay/2 + time.Duration(rand.Int63n(int64(delay)))
			select {
			case <-time.After(jitter):
			case <-ctx.Done():
				return "", errors.Wrap(classifyErr(ctx.Err()), "openai: request aborted", ctx.Err())
			}
			delay = time.Duration(float64(delay) * backoffFactor)
		}

		result, err := c.makeRequest(ctx, system, prompt)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !shouldRetry(err) {
			return "", err
		}
		if ctx.Err() != nil {
			return "", errors.Wrap(classifyErr(ctx.Err()), "openai: request aborted", ctx.Err())
		}
	}

	return "", errors.Wrap(errors.KindOf(lastErr), fmt.Sprintf("openai: failed after %d retries", maxRetries), lastErr)
}

func (c *OpenAIClient) makeRequest(ctx context.Context, system, prompt string) (string, error) {
	messages := make([]chatMessage, 0, 2)
	if system != "" {
		messages = append(messages, chatMessage{Role: "system", Content: system})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	reqBody := chatRequest{
		Model:       c.params.Model,
		Messages:    messages,
		MaxTokens:   c.params.MaxTokens,
		Temperature: c.params.Temperature,
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", errors.Wrap(errors.InvalidRequest, "openai: encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return "", errors.Wrap(errors.InvalidRequest, "openai: build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &retryableError{err: errors.Wrap(classifyErr(err), "openai: request failed", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &retryableError{err: errors.Wrap(errors.ProviderUnavailable, "openai: read response", err)}
	}

	if resp.StatusCode != http.StatusOK {
		wrapped := wrapStatus("openai", resp.StatusCode, string(body))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return "", &retryableError{err: wrapped}
		}
		return "", wrapped
	}

	var apiResp chatResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", errors.Wrap(errors.MalformedResponse, "openai: decode response", err)
	}
	if apiResp.Error != nil {
		return "", errors.New(errors.ProviderUnavailable, "openai: API error: "+apiResp.Error.Message)
	}
	if len(apiResp.Choices) == 0 {
		return "", errors.New(errors.MalformedResponse, "openai: no completion choices returned")
	}
	return apiResp.Choices[0].Message.Content, nil
}

// retryableError marks a failure worth another attempt.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

func shouldRetry(err error) bool {
	_, ok := err.(*retryableError)
	return ok
}
