// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/surveyboard/internal/output"
)

// ListSectionsInput is the (empty) input schema for list_sections.
type ListSectionsInput struct{}

// ResolveSectionInput is the input schema for resolve_section.
type ResolveSectionInput struct {
	Section string `json:"section" jsonschema:"Section to resolve: ID (A-E), label (A - General Info) or title (Section A)"`
	Format  string `json:"format,omitempty" jsonschema:"Output format: json, markdown or text (default: json)"`
}

// RenderDashboardInput is the input schema for render_dashboard.
type RenderDashboardInput struct {
	Format  string `json:"format,omitempty" jsonschema:"Output format: json, markdown, text or html (default: markdown)"`
	Section string `json:"section,omitempty" jsonschema:"Initially selected section for html output"`
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

type tools struct {
	deps Deps
}

// registerTools adds all surveyboard tools to the MCP server.
func registerTools(server *mcp.Server, t *tools) {
	readOnly := &mcp.ToolAnnotations{
		ReadOnlyHint:    true,
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_sections",
		Description: "List the survey sections (A-E) with their display labels.",
		Annotations: readOnly,
	}, t.handleListSections)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_section",
		Description: "Resolve one survey section to its presentation record: status (ok, empty, source_missing), rows, question columns and chart data.",
		Annotations: readOnly,
	}, t.handleResolveSection)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_dashboard",
		Description: "Resolve every survey section and render the whole dashboard.",
		Annotations: readOnly,
	}, t.handleRenderDashboard)
}

func (t *tools) handleListSections(_ context.Context, _ *mcp.CallToolRequest, _ ListSectionsInput) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(map[string]any{"sections": t.deps.Catalog.All()}, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("marshal sections: %w", err)
	}
	return textResult(string(data)), nil, nil
}

func (t *tools) handleResolveSection(ctx context.Context, _ *mcp.CallToolRequest, input ResolveSectionInput) (*mcp.CallToolResult, any, error) {
	spec, err := t.deps.Catalog.Parse(input.Section)
	if err != nil {
		return nil, nil, err
	}

	format := input.Format
	if format == "" {
		format = "json"
	}
	if format == "html" {
		return nil, nil, fmt.Errorf("unsupported format %q for a single section (use render_dashboard)", format)
	}
	f, err := output.GetFormatter(format)
	if err != nil {
		return nil, nil, fmt.Errorf("unsupported format %q", format)
	}

	res, err := t.deps.Settings.NewResolver(ctx)
	if err != nil {
		return nil, nil, err
	}
	d, err := output.SectionDashboard(ctx, res, spec, output.Options{SectionColumn: t.deps.SectionColumn})
	if err != nil {
		return nil, nil, err
	}
	panel := d.Panels[0]
	slog.Debug("mcp resolve_section", "section", spec.ID, "status", panel.Record.Status)

	if format == "json" {
		data, err := json.MarshalIndent(panel, "", "  ")
		if err != nil {
			return nil, nil, fmt.Errorf("marshal record: %w", err)
		}
		return textResult(string(data)), nil, nil
	}

	var buf bytes.Buffer
	if err := f.Format(d, &buf); err != nil {
		return nil, nil, fmt.Errorf("formatting failed: %w", err)
	}
	return textResult(buf.String()), nil, nil
}

func (t *tools) handleRenderDashboard(ctx context.Context, _ *mcp.CallToolRequest, input RenderDashboardInput) (*mcp.CallToolResult, any, error) {
	format := input.Format
	if format == "" {
		format = "markdown"
	}
	f, err := output.GetFormatter(format)
	if err != nil {
		return nil, nil, fmt.Errorf("unsupported format %q", format)
	}

	selected := ""
	if input.Section != "" {
		spec, err := t.deps.Catalog.Parse(input.Section)
		if err != nil {
			return nil, nil, err
		}
		selected = spec.ID
	}

	res, err := t.deps.Settings.NewResolver(ctx)
	if err != nil {
		return nil, nil, err
	}
	d, err := output.BuildDashboard(ctx, res, t.deps.Catalog, output.Options{
		Selected:      selected,
		SectionColumn: t.deps.SectionColumn,
	})
	if err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	if err := f.Format(d, &buf); err != nil {
		return nil, nil, fmt.Errorf("formatting failed: %w", err)
	}
	return textResult(buf.String()), nil, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}
