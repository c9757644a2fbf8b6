// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/davetashner/surveyboard/internal/config"
	"github.com/davetashner/surveyboard/internal/loader"
	"github.com/davetashner/surveyboard/internal/resolver"
	"github.com/davetashner/surveyboard/internal/section"
)

// flagOverrides holds CLI flag values that override the merged config.
// Zero-valued fields are skipped so callers only populate the flags their
// command registers.
type flagOverrides struct {
	DataDir        string
	BucketURL      string
	Strategy       string
	SharedSource   string
	SectionColumn  string
	QuestionPrefix string
	ListenAddr     string
	OutputFormat   string
	Title          string
}

// addDataFlags registers the flags that select and scope the data source.
func addDataFlags(cmd *cobra.Command, f *flagOverrides) {
	cmd.Flags().StringVar(&f.DataDir, "data-dir", "", "directory holding the CSV sources (default \"results\")")
	cmd.Flags().StringVar(&f.BucketURL, "bucket", "", "blob bucket URL (file://, mem://, s3://, gs://, azblob://)")
	cmd.Flags().StringVar(&f.Strategy, "strategy", "", "resolution strategy: filter or dedicated")
	cmd.Flags().StringVar(&f.SharedSource, "shared-source", "", "shared table for the filter strategy")
	cmd.Flags().StringVar(&f.SectionColumn, "section-column", "", "column holding the section identifier")
	cmd.Flags().StringVar(&f.QuestionPrefix, "question-prefix", "", "prefix of question columns (default \"f\")")
}

// config converts the flag values to a Config suitable for config.Merge.
func (f flagOverrides) config() *config.Config {
	return &config.Config{
		DataDir:        f.DataDir,
		BucketURL:      f.BucketURL,
		Strategy:       f.Strategy,
		SharedSource:   f.SharedSource,
		SectionColumn:  f.SectionColumn,
		QuestionPrefix: f.QuestionPrefix,
		ListenAddr:     f.ListenAddr,
		OutputFormat:   f.OutputFormat,
		Title:          f.Title,
	}
}

// loadConfig builds the effective configuration:
// flags > repo config > global config > defaults. The result is validated;
// any problem is an ExitConfigError.
func loadConfig(flags flagOverrides) (*config.Config, error) {
	globalCfg, err := config.LoadGlobal()
	if err != nil {
		return nil, exitError(ExitConfigError, "surveyboard: loading global config: %v", err)
	}
	repoCfg, err := config.Load(projDir)
	if err != nil {
		return nil, exitError(ExitConfigError, "surveyboard: loading config: %v", err)
	}

	cfg := config.WithDefaults(config.Merge(config.Merge(globalCfg, repoCfg), flags.config()))
	if err := config.Validate(cfg); err != nil {
		return nil, exitError(ExitConfigError, "surveyboard: %v", err)
	}
	return cfg, nil
}

// runtime is everything a command needs to resolve sections.
type runtime struct {
	cfg           *config.Config
	catalog       section.Catalog
	settings      resolver.Settings
	sectionColumn string
	close         func() error
}

// openRuntime loads the config, opens the data source and validates the
// section mapping. A *resolver.ConfigurationError maps to ExitConfigError.
// Callers must call rt.close when done.
func openRuntime(ctx context.Context, flags flagOverrides) (*runtime, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	mode, err := resolver.ParseMode(cfg.Strategy)
	if err != nil {
		return nil, exitError(ExitConfigError, "surveyboard: %v", err)
	}

	dataDir := cfg.DataDir
	if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(projDir, dataDir)
	}
	ld, closeFn, err := loader.Open(ctx, loader.Options{DataDir: dataDir, BucketURL: cfg.BucketURL})
	if err != nil {
		return nil, exitError(ExitConfigError, "surveyboard: opening data source: %v", err)
	}

	sectionColumn := cfg.SectionColumn
	if sectionColumn == "" {
		sectionColumn = resolver.DefaultSectionColumn
	}

	rt := &runtime{
		cfg:     cfg,
		catalog: section.NewCatalog(cfg.Labels()),
		settings: resolver.Settings{
			Mode:           mode,
			SharedSource:   cfg.SharedSource,
			SectionColumn:  sectionColumn,
			Sources:        cfg.Sources(),
			QuestionPrefix: cfg.QuestionPrefix,
			Loader:         ld,
		},
		sectionColumn: sectionColumn,
		close:         closeFn,
	}

	if err := rt.settings.Validate(rt.catalog); err != nil {
		_ = closeFn()
		var ce *resolver.ConfigurationError
		if errors.As(err, &ce) {
			return nil, exitError(ExitConfigError, "surveyboard: %v", ce)
		}
		return nil, exitError(ExitConfigError, "surveyboard: %v", err)
	}

	slog.Debug("runtime ready",
		"strategy", mode,
		"data_dir", dataDir,
		"bucket", cfg.BucketURL != "",
		"sections", len(rt.catalog.All()))
	return rt, nil
}

// newResolver builds a fresh resolver, wrapping load failures.
func (rt *runtime) newResolver(ctx context.Context) (*resolver.Resolver, error) {
	res, err := rt.settings.NewResolver(ctx)
	if err != nil {
		return nil, fmt.Errorf("surveyboard: %w", err)
	}
	return res, nil
}
