package registry_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipprompt/clipprompt/internal/llm"
	"github.com/clipprompt/clipprompt/internal/registry"
)

func TestProviders_Order(t *testing.T) {
	r := registry.New()
	assert.Equal(t, []string{"OpenAI", "Anthropic", "Google", "Cohere"}, r.Providers())
}

func TestModels_KnownProvider(t *testing.T) {
	r := registry.New()
	models := r.Models("OpenAI")
	assert.Contains(t, models, "gpt-3.5-turbo")
	assert.Contains(t, models, "gpt-4o")
}

func TestModels_CaseInsensitive(t *testing.T) {
	r := registry.New()
	assert.NotEmpty(t, r.Models("anthropic"))
	assert.NotEmpty(t, r.Models("COHERE"))
}

func TestModels_UnknownProviderEmpty(t *testing.T) {
	r := registry.New()
	assert.Empty(t, r.Models("NoSuchVendor"))
}

func TestResolve_DefaultModel(t *testing.T) {
	r := registry.New()

	tests := []struct {
		provider  string
		wantModel string
	}{
		{"OpenAI", "gpt-3.5-turbo"},
		{"Anthropic", "claude-3-5-sonnet-20241022"},
		{"Google", "gemini-1.5-flash"},
		{"Cohere", "command-r"},
	}
	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			target, err := r.Resolve(tt.provider, "")
			require.NoError(t, err)
			assert.Equal(t, tt.provider, target.Provider)
			assert.Equal(t, tt.wantModel, target.Model)
		})
	}
}

func TestResolve_ExplicitModelKept(t *testing.T) {
	r := registry.New()
	target, err := r.Resolve("OpenAI", "gpt-4o")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", target.Model)
}

func TestResolve_EmptyProvider(t *testing.T) {
	r := registry.New()
	_, err := r.Resolve("", "gpt-4o")
	assert.ErrorIs(t, err, registry.ErrNoProvider)
}

func TestResolve_UnknownProviderPassThrough(t *testing.T) {
	r := registry.New()
	target, err := r.Resolve("MyLocalServer", "llama-3-8b")
	require.NoError(t, err)
	assert.Equal(t, "MyLocalServer", target.Provider)
	assert.Equal(t, "llama-3-8b", target.Model)
	assert.Equal(t, llm.FamilyGeneric, target.Family)
}

func TestResolvePreset_LegacyAPITypes(t *testing.T) {
	r := registry.New()

	tests := []struct {
		apiType      string
		wantProvider string
		wantModel    string
	}{
		{"chatgpt", "OpenAI", "gpt-3.5-turbo"},
		{"gpt-4", "OpenAI", "gpt-3.5-turbo"},
		{"gpt-3.5-turbo", "OpenAI", "gpt-3.5-turbo"},
		{"claude", "Anthropic", "claude-3-5-sonnet-20241022"},
		{"claude-3-opus", "Anthropic", "claude-3-5-sonnet-20241022"},
		{"gemini", "Google", "gemini-1.5-flash"},
		{"palm", "Google", "gemini-1.5-flash"},
		{"cohere", "Cohere", "command-r"},
		{"command", "Cohere", "command-r"},
		{"ChatGPT", "OpenAI", "gpt-3.5-turbo"}, // case-insensitive
	}
	for _, tt := range tests {
		t.Run(tt.apiType, func(t *testing.T) {
			target, err := r.ResolvePreset("", tt.apiType, "")
			require.NoError(t, err)
			assert.Equal(t, tt.wantProvider, target.Provider)
			assert.Equal(t, tt.wantModel, target.Model)
		})
	}
}

func TestResolvePreset_ExplicitProviderWins(t *testing.T) {
	r := registry.New()
	target, err := r.ResolvePreset("Cohere", "chatgpt", "")
	require.NoError(t, err)
	assert.Equal(t, "Cohere", target.Provider)
}

func TestResolvePreset_UnknownAPIType(t *testing.T) {
	r := registry.New()
	_, err := r.ResolvePreset("", "mystery_api", "")
	assert.ErrorIs(t, err, registry.ErrNoProvider)
}

func TestLoadCustom_AddsProvider(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "providers.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[provider]]
name = "LocalLLM"
base_url = "http://localhost:8080"
family = "openai"
models = ["llama-3-8b", "llama-3-70b"]
default_model = "llama-3-8b"
`), 0o644))

	r := registry.New()
	require.NoError(t, r.LoadCustom(path))

	target, err := r.Resolve("LocalLLM", "")
	require.NoError(t, err)
	assert.Equal(t, "llama-3-8b", target.Model)
	assert.Equal(t, llm.FamilyOpenAI, target.Family)
	assert.Equal(t, "http://localhost:8080", target.BaseURL)
	assert.Equal(t, []string{"llama-3-8b", "llama-3-70b"}, r.Models("LocalLLM"))
}

func TestLoadCustom_DefaultsToGenericFamily(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "providers.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[provider]]
name = "Internal"
base_url = "https://llm.internal.example.com"
`), 0o644))

	r := registry.New()
	require.NoError(t, r.LoadCustom(path))

	target, err := r.Resolve("internal", "")
	require.NoError(t, err)
	assert.Equal(t, llm.FamilyGeneric, target.Family)
}

func TestLoadCustom_MissingFileIsFine(t *testing.T) {
	r := registry.New()
	assert.NoError(t, r.LoadCustom(filepath.Join(t.TempDir(), "nope.toml")))
}

func TestLoadCustom_RejectsDuplicateOfBuiltin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "providers.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[provider]]
name = "openai"
base_url = "http://localhost:9999"
`), 0o644))

	r := registry.New()
	assert.Error(t, r.LoadCustom(path))
}

func TestLoadCustom_RejectsUnknownFamily(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "providers.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[provider]]
name = "Weird"
family = "grpc"
`), 0o644))

	r := registry.New()
	assert.Error(t, r.LoadCustom(path))
}
