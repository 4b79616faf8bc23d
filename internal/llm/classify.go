package llm

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"sqlrecsys/server/internal/errors"
)

// classifyStatus maps an HTTP status from a provider API to an error kind.
func classifyStatus(status int) errors.Kind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return errors.ProviderAuth
	case status == http.StatusTooManyRequests:
		return errors.ProviderRateLimited
	case status >= 500:
		return errors.ProviderUnavailable
	default:
		return errors.ProviderUnavailable
	}
}

// classifyErr maps a transport-level failure to an error kind.
func classifyErr(err error) errors.Kind {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.ProviderTimeout
	}
	var netErr net.Error
	if stderrors.As(err, &netErr) && netErr.Timeout() {
		return errors.ProviderTimeout
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unauthorized"), strings.Contains(msg, "api key"), strings.Contains(msg, "permission"):
		return errors.ProviderAuth
	case strings.Contains(msg, "quota"), strings.Contains(msg, "rate limit"), strings.Contains(msg, "resource exhausted"):
		return errors.ProviderRateLimited
	case strings.Contains(msg, "deadline"), strings.Contains(msg, "timeout"):
		return errors.ProviderTimeout
	default:
		return errors.ProviderUnavailable
	}
}

// wrapStatus builds a provider error from a non-2xx HTTP response.
func wrapStatus(provider string, status int, body string) error {
	if len(body) > 200 {
		body = body[:200]
	}
	return errors.New(classifyStatus(status), fmt.Sprintf("%s: HTTP %d: %s", provider, status, strings.TrimSpace(body)))
}
