// Copyright 2026 The Clipprompt Authors
// SPDX-License-Identifier: MIT

// Package registry holds the static table of known LLM providers: their
// supported models, default model, and wire protocol family. It also resolves
// the legacy api_type field that old preset files carry instead of an
// explicit provider.
package registry

import (
	"errors"
	"strings"

	"github.com/clipprompt/clipprompt/internal/llm"
)

// ErrNoProvider is returned when neither a provider nor a recognizable
// legacy api_type is present.
var ErrNoProvider = errors.New("registry: no provider configured")

// Descriptor describes one provider the dispatcher knows how to talk to.
type Descriptor struct {
	Name         string
	Models       []string
	DefaultModel string
	Family       llm.Family

	// BaseURL is set for user-defined providers only; built-ins use the
	// client defaults.
	BaseURL string
}

// Target is a fully resolved dispatch destination.
type Target struct {
	Provider string
	Model    string
	Family   llm.Family
	BaseURL  string
}

// builtins is the static provider table, in display order.
var builtins = []Descriptor{
	{
		Name:         "OpenAI",
		Models:       []string{"gpt-4o", "gpt-4o-mini", "gpt-4-turbo", "gpt-3.5-turbo"},
		DefaultModel: "gpt-3.5-turbo",
		Family:       llm.FamilyOpenAI,
	},
	{
		Name:         "Anthropic",
		Models:       []string{"claude-3-5-sonnet-20241022", "claude-3-5-haiku-20241022", "claude-3-opus-20240229"},
		DefaultModel: "claude-3-5-sonnet-20241022",
		Family:       llm.FamilyAnthropic,
	},
	{
		Name:         "Google",
		Models:       []string{"gemini-1.5-pro", "gemini-1.5-flash", "gemini-1.0-pro"},
		DefaultModel: "gemini-1.5-flash",
		Family:       llm.FamilyGemini,
	},
	{
		Name:         "Cohere",
		Models:       []string{"command-r-plus", "command-r", "command"},
		DefaultModel: "command-r",
		Family:       llm.FamilyCohere,
	},
}

// legacySynonyms maps old api_type values to provider names. Keys are
// lowercase. Values starting with "claude" are handled by prefix match in
// resolveLegacy.
var legacySynonyms = map[string]string{
	"chatgpt":       "OpenAI",
	"openai":        "OpenAI",
	"gpt-4":         "OpenAI",
	"gpt-3.5-turbo": "OpenAI",
	"anthropic":     "Anthropic",
	"gemini":        "Google",
	"google":        "Google",
	"palm":          "Google",
	"cohere":        "Cohere",
	"command":       "Cohere",
}

// Registry answers provider lookups against the built-in table plus any
// user-defined custom providers.
type Registry struct {
	descriptors []Descriptor
}

// New returns a registry containing the built-in providers.
func New() *Registry {
	descriptors := make([]Descriptor, len(builtins))
	copy(descriptors, builtins)
	return &Registry{descriptors: descriptors}
}

// Providers returns the provider names in declaration order.
func (r *Registry) Providers() []string {
	names := make([]string, len(r.descriptors))
	for i, d := range r.descriptors {
		names[i] = d.Name
	}
	return names
}

// Models returns the model identifiers for a provider, or an empty slice if
// the provider is unknown. Matching is case-insensitive.
func (r *Registry) Models(provider string) []string {
	d, ok := r.Lookup(provider)
	if !ok {
		return nil
	}
	return d.Models
}

// Lookup finds a descriptor by name, case-insensitively.
func (r *Registry) Lookup(provider string) (Descriptor, bool) {
	for _, d := range r.descriptors {
		if strings.EqualFold(d.Name, provider) {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Resolve turns a (provider, model) pair into a dispatch target. An empty
// model is replaced with the provider's default. Unknown provider names are
// passed through as generic HTTP targets so user-entered custom endpoints
// keep working. An empty provider yields ErrNoProvider.
func (r *Registry) Resolve(provider, model string) (Target, error) {
	if provider == "" {
		return Target{}, ErrNoProvider
	}

	d, ok := r.Lookup(provider)
	if !ok {
		return Target{Provider: provider, Model: model, Family: llm.FamilyGeneric}, nil
	}

	if model == "" {
		model = d.DefaultModel
	}
	return Target{Provider: d.Name, Model: model, Family: d.Family, BaseURL: d.BaseURL}, nil
}

// ResolvePreset applies the backward-compatibility rules for presets: when
// provider is empty, the legacy apiType is mapped through the synonym table.
// An unknown apiType with no provider yields ErrNoProvider.
func (r *Registry) ResolvePreset(provider, apiType, model string) (Target, error) {
	if provider == "" {
		provider = resolveLegacy(apiType)
	}
	return r.Resolve(provider, model)
}

// resolveLegacy maps a legacy api_type value to a provider name, or ""
// when it is not recognized.
func resolveLegacy(apiType string) string {
	key := strings.ToLower(strings.TrimSpace(apiType))
	if key == "" {
		return ""
	}
	if name, ok := legacySynonyms[key]; ok {
		return name
	}
	if strings.HasPrefix(key, "claude") {
		return "Anthropic"
	}
	return ""
}
