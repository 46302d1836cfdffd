// Copyright 2026 The Clipprompt Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/clipprompt/clipprompt/internal/mcpserver"
)

// mcpCmd is the parent command for MCP-related subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server commands",
	Long:  "Commands for running clipprompt as an MCP server, exposing preset execution to AI agents.",
}

// mcpServeCmd runs the MCP server over stdio.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Start an MCP server on stdin/stdout, exposing clipprompt's core tools:
  - run_preset:       Apply a stored preset to text and return the answer
  - list_presets:     List the stored presets with provider and model
  - test_credential:  Check that a provider's stored API key works

The server communicates using the Model Context Protocol (MCP) over stdio
transport, enabling AI agents to run presets directly.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		r, err := newRunner()
		if err != nil {
			return err
		}
		return mcpserver.Run(cmd.Context(), Version, r, &mcp.StdioTransport{})
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
}
