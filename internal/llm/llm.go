// Package llm provides a provider-agnostic LLM client interface and the wire
// protocol implementations clipprompt dispatches preset executions through.
package llm

import "context"

// Provider abstracts an LLM API behind a single synchronous completion method.
type Provider interface {
	// Complete sends a prompt to the LLM and returns the response.
	// Implementations must respect context cancellation and deadlines.
	Complete(ctx context.Context, req Request) (*Response, error)
}

// Request describes a single completion request.
type Request struct {
	// Prompt is the full user message to send. Callers are responsible for
	// any template expansion; the clients send it verbatim.
	Prompt string

	// Model overrides the client's default model. If empty, the client uses
	// its configured default.
	Model string

	// MaxTokens limits the response length. If zero, the client uses its
	// own default.
	MaxTokens int
}

// Response holds the result of a completion call.
type Response struct {
	// Content is the text returned by the model. A 2xx response with an
	// unexpected body shape yields an empty Content, not an error.
	Content string

	// Model is the model the request was sent to.
	Model string
}
