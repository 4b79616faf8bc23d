// Package config loads service configuration from the environment.
// The config is built once at startup, validated, and passed into the
// factory; nothing here is read again after the listener opens.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"sqlrecsys/server/internal/errors"
)

// ModelType selects which model provider backs the review service.
type ModelType string

const (
	ModelGiga   ModelType = "giga"
	ModelOpenAI ModelType = "openai"
	ModelGemini ModelType = "gemini"
)

// Config holds all environment-sourced settings.
type Config struct {
	LogLevel string

	ModelType ModelType

	// GigaChat
	APIKey    string
	ModelName string

	// OpenAI
	OpenAIAPIKey    string
	OpenAIModelName string
	OpenAIBaseURL   string

	// Gemini
	GoogleAPIKey    string
	GeminiModelName string

	MaxTokens   int
	Temperature float64

	GRPCPort      int
	GracePeriod   time.Duration
	ReviewTimeout time.Duration

	// MetricsPort exposes Prometheus metrics over HTTP; 0 disables the listener.
	MetricsPort int

	// CacheAddr enables the result cache when non-empty (host:port, RESP protocol).
	CacheAddr     string
	CacheDB       int
	CachePassword string
	CacheTTL      time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrap(errors.ConfigInvalid, fmt.Sprintf("%s must be an integer", key), err)
	}
	return n, nil
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ConfigInvalid, fmt.Sprintf("%s must be a number", key), err)
	}
	return f, nil
}

func getenvSeconds(key string, def time.Duration) (time.Duration, error) {
	n, err := getenvInt(key, int(def/time.Second))
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Second, nil
}

// Load reads configuration from the environment. Values are not validated
// here; call Validate before handing the config to the factory.
func Load() (Config, error) {
	var c Config
	var err error

	c.LogLevel = getenv("LOG_LEVEL", "info")
	c.ModelType = ModelType(strings.ToLower(getenv("MODEL_TYPE", string(ModelGiga))))

	c.APIKey = os.Getenv("API_KEY")
	c.ModelName = getenv("MODEL_NAME", "GigaChat")

	// OpenAI and Gemini keys fall back to the shared API_KEY
	c.OpenAIAPIKey = getenv("OPENAI_API_KEY", c.APIKey)
	c.OpenAIModelName = getenv("OPENAI_MODEL_NAME", "gpt-4o-mini")
	c.OpenAIBaseURL = os.Getenv("OPENAI_BASE_URL")

	c.GoogleAPIKey = getenv("GOOGLE_API_KEY", c.APIKey)
	c.GeminiModelName = getenv("GEMINI_MODEL_NAME", "gemini-1.5-flash")

	if c.MaxTokens, err = getenvInt("MAX_TOKENS", 2048); err != nil {
		return c, err
	}
	if c.Temperature, err = getenvFloat("TEMPERATURE", 0.1); err != nil {
		return c, err
	}
	if c.GRPCPort, err = getenvInt("GRPC_PORT", 50051); err != nil {
		return c, err
	}
	if c.GracePeriod, err = getenvSeconds("GRPC_GRACE_PERIOD", 5*time.Second); err != nil {
		return c, err
	}
	if c.ReviewTimeout, err = getenvSeconds("REVIEW_TIMEOUT", 60*time.Second); err != nil {
		return c, err
	}
	if c.MetricsPort, err = getenvInt("METRICS_PORT", 0); err != nil {
		return c, err
	}

	c.CacheAddr = os.Getenv("CACHE_ADDR")
	if c.CacheDB, err = getenvInt("CACHE_DB", 0); err != nil {
		return c, err
	}
	c.CachePassword = os.Getenv("CACHE_PASSWORD")
	if c.CacheTTL, err = getenvSeconds("CACHE_TTL", time.Hour); err != nil {
		return c, err
	}

	return c, nil
}

// Validate checks that exactly one supported model type is selected and that
// its credential is present, plus basic range checks. The returned error names
// the offending field so startup failures are actionable.
func (c Config) Validate() error {
	switch c.ModelType {
	case ModelGiga:
		if c.APIKey == "" {
			return errors.New(errors.ConfigInvalid, "API_KEY is required for MODEL_TYPE=giga")
		}
	case ModelOpenAI:
		if c.OpenAIAPIKey == "" {
			return errors.New(errors.ConfigInvalid, "OPENAI_API_KEY is required for MODEL_TYPE=openai")
		}
	case ModelGemini:
		if c.GoogleAPIKey == "" {
			return errors.New(errors.ConfigInvalid, "GOOGLE_API_KEY is required for MODEL_TYPE=gemini")
		}
	default:
		return errors.New(errors.ConfigInvalid, fmt.Sprintf("unsupported MODEL_TYPE %q (want giga, openai or gemini)", c.ModelType))
	}

	if c.GRPCPort < 1 || c.GRPCPort > 65535 {
		return errors.New(errors.ConfigInvalid, fmt.Sprintf("GRPC_PORT %d out of range", c.GRPCPort))
	}
	if c.MetricsPort < 0 || c.MetricsPort > 65535 {
		return errors.New(errors.ConfigInvalid, fmt.Sprintf("METRICS_PORT %d out of range", c.MetricsPort))
	}
	if c.MaxTokens < 1 {
		return errors.New(errors.ConfigInvalid, fmt.Sprintf("MAX_TOKENS must be positive, got %d", c.MaxTokens))
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return errors.New(errors.ConfigInvalid, fmt.Sprintf("TEMPERATURE %v out of range [0, 2]", c.Temperature))
	}
	if c.ReviewTimeout <= 0 {
		return errors.New(errors.ConfigInvalid, "REVIEW_TIMEOUT must be positive")
	}
	return nil
}

// SelectedModelName reports the model name for the configured provider,
// for logging and the check command.
func (c Config) SelectedModelName() string {
	switch c.ModelType {
	case ModelOpenAI:
		return c.OpenAIModelName
	case ModelGemini:
		return c.GeminiModelName
	default:
		return c.ModelName
	}
}
