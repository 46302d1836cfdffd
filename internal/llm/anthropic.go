package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	// defaultAnthropicModel is the model used when no override is provided.
	defaultAnthropicModel = "claude-3-5-sonnet-20241022"

	// anthropicMaxTokens is the fixed output budget per request.
	anthropicMaxTokens = 1024
)

// AnthropicClient implements Provider using the official Anthropic SDK.
type AnthropicClient struct {
	client anthropic.Client
	model  string
}

// Compile-time check that AnthropicClient satisfies the Provider interface.
var _ Provider = (*AnthropicClient)(nil)

// AnthropicOption configures an AnthropicClient.
type AnthropicOption func(*anthropicConfig)

type anthropicConfig struct {
	apiKey  string
	model   string
	baseURL string
}

// WithAPIKey sets the API key.
func WithAPIKey(key string) AnthropicOption {
	return func(c *anthropicConfig) {
		c.apiKey = key
	}
}

// WithModel overrides the default model for all requests.
func WithModel(model string) AnthropicOption {
	return func(c *anthropicConfig) {
		c.model = model
	}
}

// WithBaseURL points the client at a different endpoint. Tests use this to
// target a local fake server.
func WithBaseURL(url string) AnthropicOption {
	return func(c *anthropicConfig) {
		c.baseURL = url
	}
}

// NewAnthropicClient creates a new Anthropic client.
// It returns an error if no API key is provided.
func NewAnthropicClient(opts ...AnthropicOption) (*AnthropicClient, error) {
	cfg := anthropicConfig{
		model: defaultAnthropicModel,
	}
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.apiKey == "" {
		return nil, errors.New("anthropic: missing API key")
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(cfg.apiKey),
		// Failed requests are surfaced immediately, never retried.
		option.WithMaxRetries(0),
	}
	if cfg.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.baseURL))
	}

	client := anthropic.NewClient(clientOpts...)

	return &AnthropicClient{
		client: client,
		model:  cfg.model,
	}, nil
}

// Complete sends a completion request to the Anthropic Messages API and
// extracts the first text content block. An empty content list yields an
// empty reply, not an error.
func (c *AnthropicClient) Complete(ctx context.Context, req Request) (*Response, error) {
	model := c.model
	if req.Model != "" {
		model = req.Model
	}

	maxTokens := int64(anthropicMaxTokens)
	if req.MaxTokens > 0 {
		maxTokens = int64(req.MaxTokens)
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic: %w", err)
	}

	var content string
	if len(msg.Content) > 0 {
		if block, ok := msg.Content[0].AsAny().(anthropic.TextBlock); ok {
			content = block.Text
		}
	}

	return &Response{Content: content, Model: model}, nil
}

// Model returns the default model configured for this client.
func (c *AnthropicClient) Model() string {
	return c.model
}
