// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/davetashner/surveyboard/internal/output"
	"github.com/davetashner/surveyboard/internal/resolver"
)

// Resolve-specific flag values.
var (
	resolveFlags  flagOverrides
	resolveFormat string
)

// resolveCmd resolves one section and prints its record.
var resolveCmd = &cobra.Command{
	Use:   "resolve <section>",
	Short: "Resolve one section and print its record",
	Long: `Resolve a single section to its presentation record.

The section may be given as its ID (C), its label (C - Drone Awareness)
or its tab title (Section C). Exits with code 3 when the section's data
source is missing; an empty section is not an error.

Examples:
  surveyboard resolve A
  surveyboard resolve "Section C" -f json`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	addDataFlags(resolveCmd, &resolveFlags)
	resolveCmd.Flags().StringVarP(&resolveFormat, "format", "f", "text", "output format: text, markdown or json")
}

func runResolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	rt, err := openRuntime(ctx, resolveFlags)
	if err != nil {
		return err
	}
	defer rt.close() //nolint:errcheck // best-effort close of the data source

	spec, err := rt.catalog.Parse(args[0])
	if err != nil {
		return exitError(ExitInvalidArgs, "surveyboard: %v", err)
	}
	if resolveFormat == "html" {
		return exitError(ExitInvalidArgs, "surveyboard: html output needs the whole dashboard (use render)")
	}
	f, err := output.GetFormatter(resolveFormat)
	if err != nil {
		return exitError(ExitInvalidArgs, "surveyboard: %v", err)
	}

	res, err := rt.newResolver(ctx)
	if err != nil {
		return err
	}
	d, err := output.SectionDashboard(ctx, res, spec, output.Options{SectionColumn: rt.sectionColumn})
	if err != nil {
		return err
	}
	if err := writeOutput(cmd, "", func(w io.Writer) error { return f.Format(d, w) }); err != nil {
		return err
	}

	if d.Panels[0].Record.Status == resolver.StatusSourceMissing {
		return exitError(ExitSourceMissing, "")
	}
	return nil
}
