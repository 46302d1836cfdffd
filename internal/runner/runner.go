// Package runner is the execution facade: it glues the preset store, the
// credential store, the provider registry, and the LLM clients into the
// single entry point that frontends call.
package runner

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/clipprompt/clipprompt/internal/llm"
	"github.com/clipprompt/clipprompt/internal/redact"
	"github.com/clipprompt/clipprompt/internal/registry"
	"github.com/clipprompt/clipprompt/internal/store"
)

// testPrompt is the minimal message sent by TestCredential.
const testPrompt = "Hi"

// Runner executes presets against their configured providers. One call is
// one blocking HTTP round-trip; there is no retry and no shared state
// between calls.
type Runner struct {
	Presets     *store.PresetStore
	Credentials *store.CredentialStore
	Registry    *registry.Registry

	// NewClient builds the provider client for one dispatch. Tests swap it
	// for a factory returning mocks.
	NewClient func(llm.ClientConfig) (llm.Provider, error)
}

// New wires a Runner with the production client factory.
func New(presets *store.PresetStore, credentials *store.CredentialStore, reg *registry.Registry) *Runner {
	return &Runner{
		Presets:     presets,
		Credentials: credentials,
		Registry:    reg,
		NewClient:   llm.NewClient,
	}
}

// ExecutePreset looks up a preset by name, applies it to the input text, and
// dispatches one request to the resolved provider. Every failure mode comes
// back as a Result, never as an error.
func (r *Runner) ExecutePreset(ctx context.Context, name, input string) Result {
	preset, err := r.Presets.Get(name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Failuref("preset %q not found", name)
		}
		return Failuref("load preset: %v", err)
	}

	target, err := r.Registry.ResolvePreset(preset.Provider, preset.APIType, preset.Model)
	if err != nil {
		return Failuref("no provider configured for preset %q", name)
	}

	// The template and input are joined verbatim. The stored prompt carries
	// its own trailing separator if one is wanted; adding one here would
	// change the exact text sent to providers.
	fullPrompt := preset.Prompt + input

	return r.dispatch(ctx, target, fullPrompt)
}

// TestCredential validates a stored key by sending a minimal fixed prompt
// through the same per-provider path, without needing a preset.
func (r *Runner) TestCredential(ctx context.Context, provider string) Result {
	target, err := r.Registry.Resolve(provider, "")
	if err != nil {
		return Failuref("no provider configured")
	}
	return r.dispatch(ctx, target, testPrompt)
}

func (r *Runner) dispatch(ctx context.Context, target registry.Target, prompt string) Result {
	cred, err := r.Credentials.Get(target.Provider)
	if err != nil {
		return Failuref("%s client could not be initialized; check credentials", target.Provider)
	}
	redact.AddSecrets(cred.APIKey)

	baseURL := cred.APIURL
	if baseURL == "" {
		baseURL = target.BaseURL
	}

	client, err := r.NewClient(llm.ClientConfig{
		Family:  target.Family,
		APIKey:  cred.APIKey,
		Model:   target.Model,
		BaseURL: baseURL,
	})
	if err != nil {
		return Failuref("could not initialize client: %v", err)
	}

	id := uuid.NewString()
	slog.Debug("dispatching request",
		"id", id, "provider", target.Provider, "model", target.Model)

	resp, err := client.Complete(ctx, llm.Request{Prompt: prompt, Model: target.Model})
	if err != nil {
		msg := redact.String(err.Error())
		slog.Debug("dispatch failed", "id", id, "provider", target.Provider, "error", msg)
		return Failuref("%s", msg)
	}

	slog.Debug("dispatch succeeded", "id", id, "provider", target.Provider)
	return Success(resp.Content)
}
