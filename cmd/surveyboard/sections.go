// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/davetashner/surveyboard/internal/output"
	"github.com/davetashner/surveyboard/internal/resolver"
	"github.com/davetashner/surveyboard/internal/section"
)

var sectionsFlags flagOverrides

// sectionsCmd lists the survey sections and where each one is read from.
var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List survey sections and their sources",
	Long: `List the five survey sections with their labels and the source each
one resolves from under the configured strategy.`,
	Args: cobra.NoArgs,
	RunE: runSections,
}

func init() {
	addDataFlags(sectionsCmd, &sectionsFlags)
}

func runSections(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(sectionsFlags)
	if err != nil {
		return err
	}
	mode, err := resolver.ParseMode(cfg.Strategy)
	if err != nil {
		return exitError(ExitConfigError, "surveyboard: %v", err)
	}

	catalog := section.NewCatalog(cfg.Labels())
	sources := cfg.Sources()

	tbl := output.NewTextTable(
		output.TextColumn{Header: "ID"},
		output.TextColumn{Header: "TITLE"},
		output.TextColumn{Header: "LABEL"},
		output.TextColumn{Header: "SOURCE"},
	)
	for _, s := range catalog.All() {
		src := cfg.SharedSource
		if mode == resolver.ModeDedicated {
			src = sources[s.ID]
			if src == "" {
				src = "(unmapped)"
			}
		}
		tbl.AddRow(s.ID, s.Title(), s.Label, src)
	}
	return tbl.Render(cmd.OutOrStdout())
}
