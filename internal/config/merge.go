// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package config

// Merge layers override on top of base and returns the result. Non-zero
// override fields win; zero fields fall through to base. Sections merge
// per ID and per field. Neither input is modified.
func Merge(base, override *Config) *Config {
	if base == nil {
		base = &Config{}
	}
	if override == nil {
		override = &Config{}
	}
	result := *base

	pick := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	pick(&result.DataDir, override.DataDir)
	pick(&result.BucketURL, override.BucketURL)
	pick(&result.Strategy, override.Strategy)
	pick(&result.SharedSource, override.SharedSource)
	pick(&result.SectionColumn, override.SectionColumn)
	pick(&result.QuestionPrefix, override.QuestionPrefix)
	pick(&result.ListenAddr, override.ListenAddr)
	pick(&result.OutputFormat, override.OutputFormat)
	pick(&result.Title, override.Title)

	if override.MetricsEnabled != nil {
		v := *override.MetricsEnabled
		result.MetricsEnabled = &v
	}

	if len(base.Sections) > 0 || len(override.Sections) > 0 {
		result.Sections = make(map[string]SectionConfig, len(base.Sections)+len(override.Sections))
		for id, sc := range base.Sections {
			result.Sections[id] = sc
		}
		for id, sc := range override.Sections {
			merged := result.Sections[id]
			pick(&merged.Label, sc.Label)
			pick(&merged.Source, sc.Source)
			result.Sections[id] = merged
		}
	}

	return &result
}
