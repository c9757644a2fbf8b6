// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	surveylog "github.com/davetashner/surveyboard/internal/log"
)

// Global flag values.
var (
	verbose   bool
	quiet     bool
	noColor   bool
	logFormat string
	projDir   string
)

// rootCmd is the base command for surveyboard.
var rootCmd = &cobra.Command{
	Use:   "surveyboard",
	Short: "Browse farmer survey results section by section",
	Long: `Surveyboard presents precomputed survey-summary tables as a dashboard.

It loads CSV tables from a results directory or a blob bucket, resolves
each survey section (A through E) to its rows, question columns and
charts, and serves them in the browser, renders them to a file, or
exposes them to agents over MCP.

Sections are resolved either by filtering one shared table on its
"section" column, or from one dedicated file per section.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if noColor {
			color.NoColor = true
		}
		if err := surveylog.Setup(verbose, quiet, logFormat); err != nil {
			return exitError(ExitInvalidArgs, "surveyboard: %v", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", surveylog.FormatText, "log format: text or json")
	rootCmd.PersistentFlags().StringVarP(&projDir, "dir", "C", ".", "project directory containing .surveyboard.yaml")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}
