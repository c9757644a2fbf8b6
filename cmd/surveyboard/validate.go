// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/davetashner/surveyboard/internal/output"
	"github.com/davetashner/surveyboard/internal/resolver"
)

var validateFlags flagOverrides

// validateCmd checks the configuration and that every section resolves.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check configuration and data sources",
	Long: `Validate the configuration and the section mapping, then resolve every
section once and report its status.

Exit codes:
  0  configuration valid and every data source found
  2  invalid configuration or section mapping
  3  at least one data source is missing`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	addDataFlags(validateCmd, &validateFlags)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	rt, err := openRuntime(ctx, validateFlags)
	if err != nil {
		return err
	}
	defer rt.close() //nolint:errcheck // best-effort close of the data source

	res, err := rt.newResolver(ctx)
	if err != nil {
		return err
	}
	records, err := res.ResolveAll(ctx, rt.catalog)
	if err != nil {
		return fmt.Errorf("surveyboard: %w", err)
	}

	tbl := output.NewTextTable(
		output.TextColumn{Header: "SECTION"},
		output.TextColumn{Header: "STATUS", Color: output.ColorStatus},
		output.TextColumn{Header: "ROWS", Align: output.AlignRight},
		output.TextColumn{Header: "SOURCE"},
	)
	missing := 0
	for _, rec := range records {
		if rec.Status == resolver.StatusSourceMissing {
			missing++
		}
		tbl.AddRow(rec.Section.ID, string(rec.Status), strconv.Itoa(rec.Table.Len()), rec.Source)
	}
	w := cmd.OutOrStdout()
	if err := tbl.Render(w); err != nil {
		return err
	}

	if missing > 0 {
		return exitError(ExitSourceMissing, "surveyboard: %d section(s) have no data source; run the EDA step first", missing)
	}
	_, _ = fmt.Fprintf(w, "\nvalid: %s strategy, %d sections\n", res.Strategy().Name(), len(records))
	return nil
}
