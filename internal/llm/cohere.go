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

// cohereDefaultBaseURL is used when no custom endpoint is configured.
const cohereDefaultBaseURL = "https://api.cohere.com"

// CohereClient posts chat requests to the Cohere chat API.
type CohereClient struct {
	apiKey  string
	model   string
	baseURL string
	httpc   *http.Client
}

// Compile-time check that CohereClient satisfies the Provider interface.
var _ Provider = (*CohereClient)(nil)

// NewCohereClient creates a client for the Cohere chat API.
func NewCohereClient(apiKey, model, baseURL string) (*CohereClient, error) {
	if apiKey == "" {
		return nil, errors.New("cohere: missing API key")
	}
	if baseURL == "" {
		baseURL = cohereDefaultBaseURL
	}
	return &CohereClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   newHTTPClient(),
	}, nil
}

type cohereResponse struct {
	Text    string `json:"text"`
	Message struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	} `json:"message"`
}

// Complete sends one chat request. The reply text comes from the top-level
// "text" field, or message.content[0].text when that is absent; both missing
// yields an empty reply.
func (c *CohereClient) Complete(ctx context.Context, req Request) (*Response, error) {
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
		return nil, fmt.Errorf("cohere: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("cohere: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("cohere: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, apiError("cohere", resp)
	}

	var out cohereResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return &Response{Model: model}, nil
	}

	text := out.Text
	if text == "" && len(out.Message.Content) > 0 {
		text = out.Message.Content[0].Text
	}
	return &Response{Content: text, Model: model}, nil
}
