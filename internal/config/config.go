// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

// Package config handles .surveyboard.yaml (or .surveyboard.toml)
// configuration files.
package config

// Config represents the contents of a .surveyboard.yaml file.
type Config struct {
	// DataDir is the local directory holding the CSV sources.
	DataDir string `yaml:"data_dir,omitempty" toml:"data_dir,omitempty"`
	// BucketURL selects a gocloud.dev blob bucket instead of DataDir.
	BucketURL string `yaml:"bucket_url,omitempty" toml:"bucket_url,omitempty"`
	// Strategy is "filter" (one shared table) or "dedicated" (one source
	// per section).
	Strategy       string `yaml:"strategy,omitempty" toml:"strategy,omitempty"`
	SharedSource   string `yaml:"shared_source,omitempty" toml:"shared_source,omitempty"`
	SectionColumn  string `yaml:"section_column,omitempty" toml:"section_column,omitempty"`
	QuestionPrefix string `yaml:"question_prefix,omitempty" toml:"question_prefix,omitempty"`
	ListenAddr     string `yaml:"listen_addr,omitempty" toml:"listen_addr,omitempty"`
	MetricsEnabled *bool  `yaml:"metrics_enabled,omitempty" toml:"metrics_enabled,omitempty"`
	OutputFormat   string `yaml:"output_format,omitempty" toml:"output_format,omitempty"`
	Title          string `yaml:"title,omitempty" toml:"title,omitempty"`

	Sections map[string]SectionConfig `yaml:"sections,omitempty" toml:"sections,omitempty"`
}

// SectionConfig holds per-section settings in the config file.
type SectionConfig struct {
	Label  string `yaml:"label,omitempty" toml:"label,omitempty"`
	Source string `yaml:"source,omitempty" toml:"source,omitempty"`
}

// File names looked up in a project directory, in order.
const (
	FileName     = ".surveyboard.yaml"
	TOMLFileName = ".surveyboard.toml"
)

// Defaults applied by WithDefaults.
const (
	DefaultDataDir      = "results"
	DefaultSharedSource = "summary_statistics.csv"
	DefaultListenAddr   = ":8501"
	DefaultOutputFormat = "html"
)

// WithDefaults returns a copy of cfg with empty fields set to their defaults.
// Section sources have no default; dedicated mode must map every section.
func WithDefaults(cfg *Config) *Config {
	out := Merge(&Config{
		DataDir:      DefaultDataDir,
		Strategy:     "filter",
		SharedSource: DefaultSharedSource,
		ListenAddr:   DefaultListenAddr,
		OutputFormat: DefaultOutputFormat,
	}, cfg)
	if out.MetricsEnabled == nil {
		enabled := true
		out.MetricsEnabled = &enabled
	}
	return out
}

// Labels returns the configured section labels keyed by section ID.
func (c *Config) Labels() map[string]string {
	labels := make(map[string]string, len(c.Sections))
	for id, sc := range c.Sections {
		if sc.Label != "" {
			labels[id] = sc.Label
		}
	}
	return labels
}

// Sources returns the configured dedicated sources keyed by section ID.
func (c *Config) Sources() map[string]string {
	sources := make(map[string]string, len(c.Sections))
	for id, sc := range c.Sections {
		if sc.Source != "" {
			sources[id] = sc.Source
		}
	}
	return sources
}

// Metrics reports whether the /metrics endpoint is enabled.
func (c *Config) Metrics() bool {
	return c.MetricsEnabled == nil || *c.MetricsEnabled
}
