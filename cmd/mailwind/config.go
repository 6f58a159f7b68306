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
	"github.com/spf13/pflag"

	"github.com/yacobolo/mailwind"
)

const defaultConfigPath = ".mailwind.yaml"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Only explicitly set flags are loaded, so an unset flag never hides
	// the config file value under its fallback key.
	flags := cmd.Flags()
	provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// MAILWIND_CONVERT_BASE-FONT-SIZE is awkward in a shell, so dashes in
	// keys may also be written as double underscores:
	// MAILWIND_CONVERT_BASE__FONT__SIZE -> convert.base-font-size
	if err := k.Load(env.Provider("MAILWIND_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "MAILWIND_"))
	key = strings.ReplaceAll(key, "__", "-")
	return strings.ReplaceAll(key, "_", ".")
}

// buildOptions constructs conversion options from koanf state.
func buildOptions() mailwind.Options {
	defaults := mailwind.DefaultOptions()
	return mailwind.Options{
		Compatibility: mailwind.Compatibility(
			getStringWithFallback("compatibility", "convert.compatibility", string(defaults.Compatibility))),
		BaseFontSize:         getIntWithFallback("base-font-size", "convert.base-font-size", defaults.BaseFontSize),
		IncludeVMLFallbacks:  !getBoolWithFallback("no-vml", "convert.no-vml", !defaults.IncludeVMLFallbacks),
		IncludeMSOProperties: !getBoolWithFallback("no-mso", "convert.no-mso", !defaults.IncludeMSOProperties),
		PreserveClasses:      getBoolWithFallback("preserve-classes", "convert.preserve-classes", defaults.PreserveClasses),
		PreserveUnsupportedClasses: !getBoolWithFallback("drop-classes", "convert.drop-classes",
			!defaults.PreserveUnsupportedClasses),
	}
}

// buildBatchConfig constructs the batch configuration for file arguments.
// Arguments win over configured include patterns.
func buildBatchConfig(args []string) mailwind.BatchConfig {
	inputs := args
	if len(inputs) == 0 {
		if includes := k.Strings("include"); len(includes) > 0 {
			inputs = includes
		} else {
			inputs = k.Strings("convert.include")
		}
	}

	return mailwind.BatchConfig{
		Inputs:    inputs,
		Options:   buildOptions(),
		OutputDir: getStringWithFallback("output-dir", "convert.output-dir", ""),
		InPlace:   getBoolWithFallback("in-place", "convert.in-place", false),
		Suffix:    getStringWithFallback("suffix", "convert.suffix", mailwind.DefaultSuffix),
		Workers:   getIntWithFallback("workers", "convert.workers", 0),
	}
}

// buildLintConfig constructs the library's LintConfig struct from koanf state.
func buildLintConfig(args []string) mailwind.LintConfig {
	var scanPaths []string
	switch {
	case len(args) > 0:
		scanPaths = args
	case len(k.Strings("paths")) > 0:
		scanPaths = k.Strings("paths")
	case len(k.Strings("lint.paths")) > 0:
		scanPaths = k.Strings("lint.paths")
	default:
		scanPaths = []string{"templates/**/*.html"}
	}

	return mailwind.LintConfig{
		Paths:              scanPaths,
		Options:            buildOptions(),
		Strict:             getBoolWithFallback("strict", "lint.strict", false),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
		PrintIssuedLines:   getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:          getBoolWithFallback("color", "color", false),
	}
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

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
