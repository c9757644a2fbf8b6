// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/davetashner/surveyboard/internal/mcpserver"
)

var mcpFlags flagOverrides

// mcpCmd is the parent command for MCP-related subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server commands",
	Long:  "Commands for running surveyboard as an MCP server, exposing section resolution tools to AI agents.",
}

// mcpServeCmd runs the MCP server over stdio.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Start an MCP server on stdin/stdout, exposing surveyboard's tools:
  - list_sections:    List the survey sections and their labels
  - resolve_section:  Resolve one section to its record and chart data
  - render_dashboard: Render every section as markdown, text, json or html

The configuration and section mapping are validated before the server
starts; an invalid mapping exits with code 2.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := openRuntime(cmd.Context(), mcpFlags)
		if err != nil {
			return err
		}
		defer rt.close() //nolint:errcheck // best-effort close of the data source

		return mcpserver.Run(cmd.Context(), Version, mcpserver.Deps{
			Settings:      rt.settings,
			Catalog:       rt.catalog,
			SectionColumn: rt.sectionColumn,
		}, &mcp.StdioTransport{})
	},
}

func init() {
	addDataFlags(mcpServeCmd, &mcpFlags)
	mcpCmd.AddCommand(mcpServeCmd)
}
