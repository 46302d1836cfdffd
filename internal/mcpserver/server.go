// Copyright 2026 The Clipprompt Authors
// SPDX-License-Identifier: MIT

// Package mcpserver exposes clipprompt's preset execution over the Model
// Context Protocol, so agents can run presets without the CLI.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/clipprompt/clipprompt/internal/runner"
)

// New creates a new MCP server with clipprompt's tools registered.
func New(version string, r *runner.Runner) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "clipprompt",
		Title:   "Clipprompt — Prompt Presets",
		Version: version,
	}, nil)

	registerTools(server, r)
	return server
}

// Run creates an MCP server and runs it on the given transport.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version string, r *runner.Runner, transport mcp.Transport) error {
	server := New(version, r)
	return server.Run(ctx, transport)
}
