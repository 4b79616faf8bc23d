// Package errors defines typed errors with categories for failure reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages. Provider failures are classified here so that the RPC
// layer can answer with a failure class instead of leaking raw provider errors.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// ConfigInvalid indicates missing or invalid configuration; fatal at startup.
	ConfigInvalid Kind = "config_invalid"
	// ProviderAuth indicates the model provider rejected our credentials.
	ProviderAuth Kind = "provider_auth"
	// ProviderRateLimited indicates the model provider throttled the request.
	ProviderRateLimited Kind = "provider_rate_limited"
	// ProviderUnavailable indicates a network failure or provider outage.
	ProviderUnavailable Kind = "provider_unavailable"
	// ProviderTimeout indicates the model call exceeded its deadline.
	ProviderTimeout Kind = "provider_timeout"
	// MalformedResponse indicates the model output failed parsing or validation.
	MalformedResponse Kind = "malformed_response"
	// InvalidRequest indicates a malformed review request.
	InvalidRequest Kind = "invalid_request"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf extracts the Kind from err, unwrapping as needed.
// Errors without a kind report an empty Kind.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// UserMessage renders the failure class as a message safe to hand to callers.
// Raw provider errors stay inside the E; only the class and our own message escape.
func UserMessage(err error) string {
	var e *E
	if stderrors.As(err, &e) {
		switch e.Kind {
		case ProviderAuth:
			return "model provider rejected the configured credentials"
		case ProviderRateLimited:
			return "model provider rate limit exceeded, try again later"
		case ProviderUnavailable:
			return "model provider is unreachable"
		case ProviderTimeout:
			return "model call timed out"
		case MalformedResponse:
			return "model returned an unparseable answer"
		default:
			return e.Message
		}
	}
	return "internal error"
}
