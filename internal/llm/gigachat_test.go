package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlrecsys/server/internal/errors"
)

func newGigaChatServers(t *testing.T, tokenCalls *int, handler http.HandlerFunc) (auth, api *httptest.Server) {
	t.Helper()
	auth = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*tokenCalls++
		assert.Equal(t, "Basic auth-key", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("RqUID"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "GIGACHAT_API_PERS", r.PostForm.Get("scope"))

		w.Header().Set("Content-Type", "application/json")
		expiresAt := time.Now().Add(30 * time.Minute).UnixMilli()
		fmt.Fprintf(w, `{"access_token":"tok-%d","expires_at":%d}`, *tokenCalls, expiresAt)
	}))
	t.Cleanup(auth.Close)

	api = httptest.NewServer(handler)
	t.Cleanup(api.Close)
	return auth, api
}

func TestGigaChatCompleteReusesToken(t *testing.T) {
	var tokenCalls int
	auth, api := newGigaChatServers(t, &tokenCalls, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "GigaChat", req.Model)
		chatReply(t, w, "ok")
	})

	c := NewGigaChatClient("auth-key", auth.URL, api.URL, Params{Model: "GigaChat", MaxTokens: 64})

	for i := 0; i < 3; i++ {
		out, err := c.Complete(context.Background(), "sys", "prompt")
		require.NoError(t, err)
		assert.Equal(t, "ok", out)
	}
	assert.Equal(t, 1, tokenCalls, "token should be fetched once and cached")
}

func TestGigaChatCompleteRefreshesExpiredToken(t *testing.T) {
	var tokenCalls, apiCalls int
	auth, api := newGigaChatServers(t, &tokenCalls, func(w http.ResponseWriter, r *http.Request) {
		apiCalls++
		if apiCalls == 1 {
			http.Error(w, "token expired", http.StatusUnauthorized)
			return
		}
		assert.Equal(t, "Bearer tok-2", r.Header.Get("Authorization"))
		chatReply(t, w, "after refresh")
	})

	c := NewGigaChatClient("auth-key", auth.URL, api.URL, Params{Model: "GigaChat"})
	out, err := c.Complete(context.Background(), "", "prompt")
	require.NoError(t, err)
	assert.Equal(t, "after refresh", out)
	assert.Equal(t, 2, tokenCalls)
	assert.Equal(t, 2, apiCalls)
}

func TestGigaChatTokenFailure(t *testing.T) {
	auth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	}))
	defer auth.Close()

	c := NewGigaChatClient("bad", auth.URL, "http://unused.invalid", Params{Model: "GigaChat"})
	_, err := c.Complete(context.Background(), "", "prompt")
	require.Error(t, err)
	assert.Equal(t, errors.ProviderAuth, errors.KindOf(err))
}
