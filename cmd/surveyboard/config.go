// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/davetashner/surveyboard/internal/config"
)

// Config command flags.
var configGlobal bool

// configCmd is the parent command for config subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and modify surveyboard configuration",
	Long: `View and modify surveyboard configuration.

Surveyboard reads .surveyboard.yaml (or .surveyboard.toml) from the project
directory. A global config at ~/.config/surveyboard/config.yaml provides
defaults. Repo-level settings override global settings, and command-line
flags override both.

Note: config set does a round-trip and will not preserve comments.`,
}

// configGetCmd retrieves a configuration value by dot-notation key path.
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a configuration value by dot-notation key path.

Examples:
  surveyboard config get strategy
  surveyboard config get sections.C.source
  surveyboard config get sections
  surveyboard config get --global data_dir`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

// configSetCmd sets a configuration value.
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the config file.

Values are auto-detected as bool, int, float, or string. Writes to the
project's .surveyboard.yaml (or its existing .surveyboard.toml).
Use --global to write to ~/.config/surveyboard/config.yaml.

Examples:
  surveyboard config set strategy dedicated
  surveyboard config set sections.A.source section_a.csv
  surveyboard config set sections.A.label "A - Household"
  surveyboard config set --global metrics_enabled false`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

// configListCmd lists all configuration values with their source.
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Long: `List every effective configuration value, annotated with whether it
comes from the repo config, the global config, or the built-in defaults.`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

func init() {
	configGetCmd.Flags().BoolVar(&configGlobal, "global", false, "use global config (~/.config/surveyboard/config.yaml)")
	configSetCmd.Flags().BoolVar(&configGlobal, "global", false, "write to global config (~/.config/surveyboard/config.yaml)")

	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	keyPath := args[0]

	var cfg *config.Config
	if configGlobal {
		g, err := config.LoadGlobal()
		if err != nil {
			return exitError(ExitConfigError, "surveyboard: loading global config: %v", err)
		}
		cfg = g
	} else {
		globalCfg, err := config.LoadGlobal()
		if err != nil {
			return exitError(ExitConfigError, "surveyboard: loading global config: %v", err)
		}
		repoCfg, err := config.Load(projDir)
		if err != nil {
			return exitError(ExitConfigError, "surveyboard: loading repo config: %v", err)
		}
		cfg = config.WithDefaults(config.Merge(globalCfg, repoCfg))
	}

	val, err := config.GetValue(cfg, keyPath)
	if err != nil {
		return exitError(ExitInvalidArgs, "surveyboard: %v", err)
	}
	return printValue(cmd, val)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	keyPath, rawValue := args[0], args[1]

	if err := config.ValidateKeyPath(keyPath); err != nil {
		return exitError(ExitInvalidArgs, "surveyboard: %v", err)
	}

	targetPath := configTarget()
	existing, err := config.LoadFile(targetPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		existing = &config.Config{}
	case err != nil:
		return exitError(ExitConfigError, "surveyboard: loading config file: %v", err)
	}

	data, err := config.ToMap(existing)
	if err != nil {
		return fmt.Errorf("surveyboard: marshaling config: %w", err)
	}
	if err := config.SetValue(data, keyPath, rawValue); err != nil {
		return exitError(ExitInvalidArgs, "surveyboard: setting value: %v", err)
	}

	// Round-trip validate: unmarshal to Config and validate.
	roundTrip, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("surveyboard: marshaling config: %w", err)
	}
	var updated config.Config
	if err := yaml.Unmarshal(roundTrip, &updated); err != nil {
		return exitError(ExitInvalidArgs, "surveyboard: invalid config after set: %v", err)
	}
	if err := config.Validate(&updated); err != nil {
		return exitError(ExitConfigError, "surveyboard: %v", err)
	}

	if err := cmdFS.MkdirAll(filepath.Dir(targetPath), 0o750); err != nil {
		return fmt.Errorf("surveyboard: creating config dir: %w", err)
	}
	f, err := cmdFS.Create(targetPath)
	if err != nil {
		return fmt.Errorf("surveyboard: writing config: %w", err)
	}
	write := config.Write
	if strings.EqualFold(filepath.Ext(targetPath), ".toml") {
		write = config.WriteTOML
	}
	if err := write(f, &updated); err != nil {
		_ = f.Close()
		return fmt.Errorf("surveyboard: writing config: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("surveyboard: writing config: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", keyPath, rawValue)
	return nil
}

// configTarget returns the file config set writes to. An existing TOML
// project config is kept as TOML.
func configTarget() string {
	if configGlobal {
		return config.GlobalConfigPath()
	}
	yamlPath := filepath.Join(projDir, config.FileName)
	tomlPath := filepath.Join(projDir, config.TOMLFileName)
	if _, err := cmdFS.Stat(yamlPath); err != nil {
		if _, err := cmdFS.Stat(tomlPath); err == nil {
			return tomlPath
		}
	}
	return yamlPath
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	globalCfg, err := config.LoadGlobal()
	if err != nil {
		return exitError(ExitConfigError, "surveyboard: loading global config: %v", err)
	}
	repoCfg, err := config.Load(projDir)
	if err != nil {
		return exitError(ExitConfigError, "surveyboard: loading repo config: %v", err)
	}

	type entry struct {
		value  any
		source string
	}
	seen := make(map[string]entry)
	layers := []struct {
		source string
		cfg    *config.Config
	}{
		{"default", config.WithDefaults(&config.Config{})},
		{"global", globalCfg},
		{"repo", repoCfg},
	}
	for _, layer := range layers {
		m, err := config.ToMap(layer.cfg)
		if err != nil {
			return fmt.Errorf("surveyboard: marshaling config: %w", err)
		}
		for k, v := range config.FlattenMap(m, "") {
			seen[k] = entry{value: v, source: layer.source}
		}
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		e := seen[k]
		_, _ = fmt.Fprintf(w, "%s = %v %s\n", k, e.value, formatSource(e.source))
	}
	return nil
}

// printValue outputs a value: scalars as plain text, maps/slices as YAML.
func printValue(cmd *cobra.Command, val any) error {
	switch v := val.(type) {
	case map[string]any, []any:
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(cmd.OutOrStdout(), string(data))
	default:
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}

var (
	globalColor = color.New(color.FgCyan)
	repoColor   = color.New(color.FgGreen)
)

// formatSource returns a colorized source annotation.
func formatSource(source string) string {
	switch source {
	case "global":
		return globalColor.Sprint("(global)")
	case "repo":
		return repoColor.Sprint("(repo)")
	default:
		return fmt.Sprintf("(%s)", source)
	}
}
