// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes section resolution as tools over stdio transport.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/surveyboard/internal/resolver"
	"github.com/davetashner/surveyboard/internal/section"
)

// Deps are the resolution settings shared by every tool call.
type Deps struct {
	Settings      resolver.Settings
	Catalog       section.Catalog
	SectionColumn string
}

// New creates a new MCP server with surveyboard's tools registered.
func New(version string, deps Deps) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "surveyboard",
		Title:   "Surveyboard: survey section dashboard",
		Version: version,
	}, nil)

	registerTools(server, &tools{deps: deps})
	return server
}

// Run creates an MCP server and runs it on the given transport.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version string, deps Deps, transport mcp.Transport) error {
	return New(version, deps).Run(ctx, transport)
}
