package llm

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Family identifies the wire protocol a provider speaks.
type Family string

// Known protocol families.
const (
	FamilyOpenAI    Family = "openai"
	FamilyAnthropic Family = "anthropic"
	FamilyGemini    Family = "gemini"
	FamilyCohere    Family = "cohere"
	FamilyGeneric   Family = "generic-http"
)

// ClientConfig carries everything needed to construct a provider client for
// one dispatch. Clients are stateless; the runner builds a fresh one per call.
type ClientConfig struct {
	Family  Family
	APIKey  string
	Model   string
	BaseURL string
}

// NewClient constructs the client implementation for the configured protocol
// family. It fails before any network activity if the configuration cannot
// produce a usable client (missing key, missing base URL, unknown family).
func NewClient(cfg ClientConfig) (Provider, error) {
	switch cfg.Family {
	case FamilyOpenAI:
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL)
	case FamilyAnthropic:
		opts := []AnthropicOption{WithAPIKey(cfg.APIKey)}
		if cfg.Model != "" {
			opts = append(opts, WithModel(cfg.Model))
		}
		if cfg.BaseURL != "" {
			opts = append(opts, WithBaseURL(cfg.BaseURL))
		}
		return NewAnthropicClient(opts...)
	case FamilyGemini:
		return NewGeminiClient(cfg.APIKey, cfg.Model, cfg.BaseURL)
	case FamilyCohere:
		return NewCohereClient(cfg.APIKey, cfg.Model, cfg.BaseURL)
	case FamilyGeneric:
		return NewGenericClient(cfg.APIKey, cfg.Model, cfg.BaseURL)
	default:
		return nil, fmt.Errorf("llm: unknown protocol family %q", cfg.Family)
	}
}

// httpTimeout is the fixed timeout applied to every outbound provider call.
// Callers cannot override it; a hung request runs to this limit.
const httpTimeout = 60 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// apiError builds the error for a non-2xx provider response, including the
// raw error body when one is present. These responses are never retried.
func apiError(provider string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return fmt.Errorf("%s: unexpected status %d", provider, resp.StatusCode)
	}
	return fmt.Errorf("%s: status %d: %s", provider, resp.StatusCode, msg)
}
