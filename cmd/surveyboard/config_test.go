// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/surveyboard/internal/config"
)

func TestConfigGet_Default(t *testing.T) {
	dir := setupProject(t)

	stdout, _, err := execute(t, "-C", dir, "config", "get", "strategy")
	require.NoError(t, err)
	assert.Equal(t, "filter\n", stdout)
}

func TestConfigGet_Section(t *testing.T) {
	dir := setupProject(t)
	writeTestFile(t, dir, config.FileName, "sections:\n  C:\n    source: c.csv\n")

	stdout, _, err := execute(t, "-C", dir, "config", "get", "sections.C.source")
	require.NoError(t, err)
	assert.Equal(t, "c.csv\n", stdout)

	stdout, _, err = execute(t, "-C", dir, "config", "get", "sections")
	require.NoError(t, err)
	assert.Contains(t, stdout, "source: c.csv")
}

func TestConfigGet_UnknownKey(t *testing.T) {
	dir := setupProject(t)

	_, _, err := execute(t, "-C", dir, "config", "get", "nope")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArgs, exitCode(err))
}

func TestConfigSet_WritesYAML(t *testing.T) {
	dir := setupProject(t)

	stdout, _, err := execute(t, "-C", dir, "config", "set", "sections.A.source", "a.csv")
	require.NoError(t, err)
	assert.Equal(t, "Set sections.A.source = a.csv\n", stdout)

	cfg, err := config.LoadFile(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "a.csv", cfg.Sections["A"].Source)
}

func TestConfigSet_KeepsTOML(t *testing.T) {
	dir := setupProject(t)
	writeTestFile(t, dir, config.TOMLFileName, "title = \"Pilot\"\n")

	_, _, err := execute(t, "-C", dir, "config", "set", "strategy", "dedicated")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, config.FileName))
	assert.True(t, os.IsNotExist(err), "no YAML file should be created")

	cfg, err := config.LoadFile(filepath.Join(dir, config.TOMLFileName))
	require.NoError(t, err)
	assert.Equal(t, "Pilot", cfg.Title)
	assert.Equal(t, "dedicated", cfg.Strategy)
}

func TestConfigSet_Global(t *testing.T) {
	dir := setupProject(t)

	_, _, err := execute(t, "-C", dir, "config", "set", "--global", "metrics_enabled", "false")
	require.NoError(t, err)

	cfg, err := config.LoadGlobal()
	require.NoError(t, err)
	require.NotNil(t, cfg.MetricsEnabled)
	assert.False(t, *cfg.MetricsEnabled)
}

func TestConfigSet_Invalid(t *testing.T) {
	dir := setupProject(t)

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"unknown key", []string{"config", "set", "colour", "red"}, ExitInvalidArgs},
		{"unknown section", []string{"config", "set", "sections.Q.source", "q.csv"}, ExitInvalidArgs},
		{"invalid value", []string{"config", "set", "strategy", "random"}, ExitConfigError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, append([]string{"-C", dir}, tt.args...)...)
			require.Error(t, err)
			assert.Equal(t, tt.code, exitCode(err))
		})
	}
	_, err := os.Stat(filepath.Join(dir, config.FileName))
	assert.True(t, os.IsNotExist(err), "failed sets must not write")
}

func TestConfigList_Sources(t *testing.T) {
	dir := setupProject(t)
	writeTestFile(t, dir, config.FileName, "title: Repo Title\n")
	writeTestFile(t, filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "surveyboard"), "config.yaml", "listen_addr: \":9000\"\n")

	stdout, _, err := execute(t, "-C", dir, "config", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "title = Repo Title (repo)")
	assert.Contains(t, stdout, "listen_addr = :9000 (global)")
	assert.Contains(t, stdout, "data_dir = results (default)")
}
