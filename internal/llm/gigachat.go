package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"sqlrecsys/server/internal/errors"
)

const (
	defaultGigaChatAuthURL = "https://ngw.devices.sberbank.ru:9443/api/v2/oauth"
	defaultGigaChatAPIURL  = "https://gigachat.devices.sberbank.ru/api/v1"

	gigaChatScope = "GIGACHAT_API_PERS"

	// Access tokens live 30 minutes; refresh a bit early to avoid racing the
	// expiry on a slow request.
	tokenExpirySkew = 1 * time.Minute
)

// GigaChatClient talks to Sber's GigaChat API. Authentication is two-step:
// the base64 authorization key is exchanged at the NGW OAuth endpoint for a
// short-lived access token, which is then cached until shortly before expiry.
type GigaChatClient struct {
	authKey string
	authURL string
	apiURL  string
	params  Params
	client  *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewGigaChatClient creates a GigaChat client. authURL and apiURL may be empty
// to use the public endpoints; they are overridable for tests.
func NewGigaChatClient(authKey, authURL, apiURL string, params Params) *GigaChatClient {
	if authURL == "" {
		authURL = defaultGigaChatAuthURL
	}
	if apiURL == "" {
		apiURL = defaultGigaChatAPIURL
	}
	return &GigaChatClient{
		authKey: authKey,
		authURL: authURL,
		apiURL:  apiURL,
		params:  params,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *GigaChatClient) Name() string { return "gigachat" }

type gigaTokenResponse struct {
	AccessToken string `json:"access_token"`
	// Expiry is unix milliseconds.
	ExpiresAt int64 `json:"expires_at"`
}

// token returns a cached access token, refreshing it when missing or near
// expiry.
func (c *GigaChatClient) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry.Add(-tokenExpirySkew)) {
		return c.accessToken, nil
	}

	form := url.Values{"scope": {gigaChatScope}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Wrap(errors.ProviderAuth, "gigachat: build token request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("RqUID", uuid.NewString())
	req.Header.Set("Authorization", "Basic "+c.authKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.Wrap(classifyErr(err), "gigachat: token request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(errors.ProviderUnavailable, "gigachat: read token response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", wrapStatus("gigachat", resp.StatusCode, string(body))
	}

	var tok gigaTokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", errors.Wrap(errors.MalformedResponse, "gigachat: decode token response", err)
	}
	if tok.AccessToken == "" {
		return "", errors.New(errors.ProviderAuth, "gigachat: empty access token")
	}

	c.accessToken = tok.AccessToken
	c.tokenExpiry = time.UnixMilli(tok.ExpiresAt)
	return c.accessToken, nil
}

// Complete exchanges the auth key for a token if needed and sends the chat
// request. A 401 invalidates the cached token and triggers a single re-auth.
func (c *GigaChatClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	for attempt := 0; attempt < 2; attempt++ {
		token, err := c.token(ctx)
		if err != nil {
			return "", err
		}

		result, err := c.makeRequest(ctx, token, system, prompt)
		if err == nil {
			return result, nil
		}
		if errors.KindOf(err) == errors.ProviderAuth && attempt == 0 {
			c.mu.Lock()
			c.accessToken = ""
			c.mu.Unlock()
			continue
		}
		return "", err
	}
	return "", errors.New(errors.ProviderAuth, "gigachat: authorization rejected after token refresh")
}

func (c *GigaChatClient) makeRequest(ctx context.Context, token, system, prompt string) (string, error) {
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
		return "", errors.Wrap(errors.InvalidRequest, "gigachat: encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return "", errors.Wrap(errors.InvalidRequest, "gigachat: build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.Wrap(classifyErr(err), "gigachat: request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(errors.ProviderUnavailable, "gigachat: read response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", wrapStatus("gigachat", resp.StatusCode, string(body))
	}

	var apiResp chatResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", errors.Wrap(errors.MalformedResponse, "gigachat: decode response", err)
	}
	if len(apiResp.Choices) == 0 {
		return "", errors.New(errors.MalformedResponse, "gigachat: no completion choices returned")
	}
	return apiResp.Choices[0].Message.Content, nil
}
