// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		OutputFormat:   "json",
		Strategy:       "dedicated",
		BucketURL:      "s3://survey-results?region=eu-west-1",
		QuestionPrefix: "f",
		ListenAddr:     "127.0.0.1:8501",
		Sections:       map[string]SectionConfig{"A": {Source: "a.csv"}},
	}
	require.NoError(t, Validate(cfg))
}

func TestValidate_EmptyConfig(t *testing.T) {
	require.NoError(t, Validate(&Config{}))
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"format", Config{OutputFormat: "xml"}, "output_format"},
		{"strategy", Config{Strategy: "sharded"}, "strategy"},
		{"bucket_scheme", Config{BucketURL: "ftp://host/bucket"}, `unsupported scheme "ftp"`},
		{"bucket_parse", Config{BucketURL: "s3://%zz"}, "bucket_url"},
		{"prefix", Config{QuestionPrefix: "f-"}, "question_prefix"},
		{"listen", Config{ListenAddr: "8501"}, "listen_addr"},
		{"section", Config{Sections: map[string]SectionConfig{"F": {}}}, "sections.F: unknown section"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &Config{OutputFormat: "xml", Strategy: "bad", ListenAddr: "nope"}
	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output_format")
	assert.Contains(t, err.Error(), "strategy")
	assert.Contains(t, err.Error(), "listen_addr")
}
