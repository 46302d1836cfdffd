// Copyright 2026 The Clipprompt Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"bytes"
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/clipprompt/clipprompt/internal/runner"
)

// RunPresetInput is the input schema for the run_preset tool.
type RunPresetInput struct {
	Preset string `json:"preset" jsonschema:"Name of the preset to run"`
	Text   string `json:"text" jsonschema:"Input text the preset's prompt is applied to"`
}

// ListPresetsInput is the input schema for the list_presets tool.
type ListPresetsInput struct{}

// TestCredentialInput is the input schema for the test_credential tool.
type TestCredentialInput struct {
	Provider string `json:"provider" jsonschema:"Provider name whose stored API key should be checked"`
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// registerTools adds all clipprompt tools to the MCP server.
func registerTools(server *mcp.Server, r *runner.Runner) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "run_preset",
		Description: "Apply a stored prompt preset to the given text and return the provider's response.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(true),
		},
	}, handleRunPreset(r))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_presets",
		Description: "List the stored presets with their provider and model.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, handleListPresets(r))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "test_credential",
		Description: "Check that the stored API key for a provider works by sending a minimal request.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(true),
		},
	}, handleTestCredential(r))
}

// textResult wraps plain text in a tool result. Execution failures are tool
// results, not protocol errors, mirroring the facade's Result contract.
func textResult(text string, isError bool) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
		IsError: isError,
	}
}

func handleRunPreset(r *runner.Runner) func(context.Context, *mcp.CallToolRequest, RunPresetInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RunPresetInput) (*mcp.CallToolResult, any, error) {
		if input.Preset == "" {
			return nil, nil, fmt.Errorf("preset name is required")
		}

		result := r.ExecutePreset(ctx, input.Preset, input.Text)
		if !result.OK {
			return textResult(result.Message, true), nil, nil
		}
		return textResult(result.Text, false), nil, nil
	}
}

func handleListPresets(r *runner.Runner) func(context.Context, *mcp.CallToolRequest, ListPresetsInput) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListPresetsInput) (*mcp.CallToolResult, any, error) {
		presets, err := r.Presets.List()
		if err != nil {
			return nil, nil, fmt.Errorf("load presets: %w", err)
		}

		var buf bytes.Buffer
		if len(presets) == 0 {
			buf.WriteString("no presets stored\n")
		}
		for _, p := range presets {
			target, err := r.Registry.ResolvePreset(p.Provider, p.APIType, p.Model)
			if err != nil {
				fmt.Fprintf(&buf, "%s (no provider configured)\n", p.Name)
				continue
			}
			fmt.Fprintf(&buf, "%s — %s/%s\n", p.Name, target.Provider, target.Model)
		}
		return textResult(buf.String(), false), nil, nil
	}
}

func handleTestCredential(r *runner.Runner) func(context.Context, *mcp.CallToolRequest, TestCredentialInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TestCredentialInput) (*mcp.CallToolResult, any, error) {
		if input.Provider == "" {
			return nil, nil, fmt.Errorf("provider name is required")
		}

		result := r.TestCredential(ctx, input.Provider)
		if !result.OK {
			return textResult(result.Message, true), nil, nil
		}
		return textResult(fmt.Sprintf("%s credential works", input.Provider), false), nil, nil
	}
}
