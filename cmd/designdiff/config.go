package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".designdiff.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence, only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment
// variables. Separated from loadConfig to allow testing without a cobra
// command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (DESIGNDIFF_* prefix)
	if err := k.Load(env.Provider("DESIGNDIFF_", ".", func(s string) string {
		// DESIGNDIFF_CHECK_TOKENS -> check.tokens
		// DESIGNDIFF_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "DESIGNDIFF_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// checkSettings is the resolved configuration for one review run.
type checkSettings struct {
	Components   []string
	SpecDir      string
	ImplPatterns []string
	TokensPath   string
	OutputFormat string
	ReportPath   string
	Quiet        bool
	Color        bool
	Verbose      bool
}

// buildCheckSettings constructs run settings from koanf state.
func buildCheckSettings() checkSettings {
	settings := checkSettings{
		SpecDir:      getStringWithFallback("spec-dir", "check.spec-dir", "design/specs"),
		TokensPath:   getStringWithFallback("tokens", "check.tokens", "design/tokens.json"),
		OutputFormat: getStringWithFallback("output-format", "check.output-format", ""),
		ReportPath:   getStringWithFallback("out", "check.out", ""),
		Quiet:        getBoolWithFallback("quiet", "quiet", false),
		Color:        getBoolWithFallback("color", "color", false),
		Verbose:      getBoolWithFallback("verbose", "verbose", false),
	}

	// Components and patterns: check flag key first, then config key
	if components := k.Strings("component"); len(components) > 0 {
		settings.Components = components
	} else {
		settings.Components = k.Strings("components")
	}

	if patterns := k.Strings("impl"); len(patterns) > 0 {
		settings.ImplPatterns = patterns
	} else if patterns := k.Strings("check.impl"); len(patterns) > 0 {
		settings.ImplPatterns = patterns
	} else {
		settings.ImplPatterns = []string{"src/**/*.{jsx,tsx,html}"}
	}

	return settings
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
