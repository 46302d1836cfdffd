package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// openaiDefaultBaseURL is used when no custom endpoint is configured.
const openaiDefaultBaseURL = "https://api.openai.com"

// OpenAIClient posts single-turn chat completions to an OpenAI-compatible
// endpoint.
type OpenAIClient struct {
	apiKey  string
	model   string
	baseURL string
	httpc   *http.Client
}

// Compile-time check that OpenAIClient satisfies the Provider interface.
var _ Provider = (*OpenAIClient)(nil)

// NewOpenAIClient creates a client for the OpenAI chat completions API.
// baseURL may be empty to use the public endpoint.
func NewOpenAIClient(apiKey, model, baseURL string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("openai: missing API key")
	}
	if baseURL == "" {
		baseURL = openaiDefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	// Credential files from the desktop era stored the OpenAI URL with a
	// trailing /v1; the path below re-adds it.
	baseURL = strings.TrimSuffix(baseURL, "/v1")

	return &OpenAIClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		httpc:   newHTTPClient(),
	}, nil
}

// NewGenericClient targets an OpenAI-compatible chat endpoint at a
// user-supplied base URL. Custom providers that bypass the registry land
// here, so the base URL is mandatory.
func NewGenericClient(apiKey, model, baseURL string) (*OpenAIClient, error) {
	if baseURL == "" {
		return nil, errors.New("llm: custom provider has no base URL configured")
	}
	return NewOpenAIClient(apiKey, model, baseURL)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends one chat completion request and extracts
// choices[0].message.content. A 2xx response with an unexpected shape
// degrades to an empty reply.
func (c *OpenAIClient) Complete(ctx context.Context, req Request) (*Response, error) {
	model := c.model
	if req.Model != "" {
		model = req.Model
	}

	payload := chatRequest{
		Model:    model,
		Messages: []chatMessage{{Role: "user", Content: req.Prompt}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("openai: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("openai: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, apiError("openai", resp)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		// 2xx with an undecodable body counts as an empty reply.
		return &Response{Model: model}, nil
	}

	var text string
	if len(out.Choices) > 0 {
		text = out.Choices[0].Message.Content
	}
	return &Response{Content: text, Model: model}, nil
}
