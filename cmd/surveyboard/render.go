// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davetashner/surveyboard/internal/output"
	"github.com/davetashner/surveyboard/internal/resolver"
)

// Render-specific flag values.
var (
	renderFlags   flagOverrides
	renderOutput  string
	renderSection string
	renderStrict  bool
)

// renderCmd renders every section to a static dashboard.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the dashboard to a file or stdout",
	Long: `Resolve every section and render the whole dashboard.

Formats: html (self-contained page with inline SVG charts), json, markdown
and text. The format defaults to output_format from the config ("html").

Examples:
  surveyboard render -o dashboard.html
  surveyboard render -f markdown --section C
  surveyboard render -f json --strategy dedicated`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	addDataFlags(renderCmd, &renderFlags)
	renderCmd.Flags().StringVarP(&renderFlags.OutputFormat, "format", "f", "",
		"output format: "+strings.Join(output.FormatNames(), ", "))
	renderCmd.Flags().StringVar(&renderFlags.Title, "title", "", "dashboard title")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (default stdout)")
	renderCmd.Flags().StringVar(&renderSection, "section", "", "initially selected section")
	renderCmd.Flags().BoolVar(&renderStrict, "strict", false, "exit 3 if any section's data source is missing")
}

func runRender(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	rt, err := openRuntime(ctx, renderFlags)
	if err != nil {
		return err
	}
	defer rt.close() //nolint:errcheck // best-effort close of the data source

	selected := ""
	if renderSection != "" {
		spec, err := rt.catalog.Parse(renderSection)
		if err != nil {
			return exitError(ExitInvalidArgs, "surveyboard: %v", err)
		}
		selected = spec.ID
	}

	f, err := output.GetFormatter(rt.cfg.OutputFormat)
	if err != nil {
		return exitError(ExitInvalidArgs, "surveyboard: %v", err)
	}

	res, err := rt.newResolver(ctx)
	if err != nil {
		return err
	}
	d, err := output.BuildDashboard(ctx, res, rt.catalog, output.Options{
		Title:         rt.cfg.Title,
		Selected:      selected,
		SectionColumn: rt.sectionColumn,
	})
	if err != nil {
		return fmt.Errorf("surveyboard: resolve sections: %w", err)
	}

	if err := writeOutput(cmd, renderOutput, func(w io.Writer) error { return f.Format(d, w) }); err != nil {
		return err
	}

	missing := countStatus(d, resolver.StatusSourceMissing)
	slog.Info("dashboard rendered",
		"format", f.Name(),
		"sections", len(d.Panels),
		"empty", countStatus(d, resolver.StatusEmpty),
		"missing", missing,
		"run_id", d.RunID)

	if renderStrict && missing > 0 {
		return exitError(ExitSourceMissing, "surveyboard: %d section(s) have no data source", missing)
	}
	return nil
}

// writeOutput runs write against stdout, or against the named file
// (creating parent directories) when path is set.
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		if err := write(cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("surveyboard: render: %w", err)
		}
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := cmdFS.MkdirAll(dir, 0o750); err != nil {
			return exitError(ExitInvalidArgs, "surveyboard: cannot create %s (%v)", dir, err)
		}
	}
	out, err := cmdFS.Create(path)
	if err != nil {
		return exitError(ExitInvalidArgs, "surveyboard: cannot create %s (%v)", path, err)
	}
	if err := write(out); err != nil {
		_ = out.Close()
		return fmt.Errorf("surveyboard: render: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("surveyboard: close %s: %w", path, err)
	}
	slog.Debug("output written", "path", path)
	return nil
}

func countStatus(d *output.Dashboard, status resolver.Status) int {
	n := 0
	for _, p := range d.Panels {
		if p.Record.Status == status {
			n++
		}
	}
	return n
}
