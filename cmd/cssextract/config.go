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
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yacobolo/cssextract"
	"github.com/yacobolo/cssextract/internal/cssmodule"
)

const (
	defaultConfigPath = ".cssextract.yaml"
	envPrefix         = "CSSEXTRACT_"
)

// configSections are the nested blocks of .cssextract.yaml.
var configSections = []string{"extract", "lint"}

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

	// 3. CLI flags (highest precedence, only flags that were explicitly set;
	// defaults are applied by the getters below)
	flags := cmd.Flags()
	provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
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
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSEXTRACT_* prefix)
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to a config key:
//
//	CSSEXTRACT_CLASS_ATTRIBUTE    -> class-attribute
//	CSSEXTRACT_LINT_STRICT        -> lint.strict
//	CSSEXTRACT_LINT_OUTPUT_FORMAT -> lint.output-format
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	for _, section := range configSections {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + strings.ReplaceAll(rest, "_", "-")
		}
	}
	return strings.ReplaceAll(key, "_", "-")
}

// buildExtractConfig constructs the library's ExtractConfig from koanf state.
func buildExtractConfig(sourceFile string, logger *zap.Logger) (cssextract.ExtractConfig, error) {
	naming, err := cssmodule.ParseNaming(getStringWithFallback("naming", "naming", string(cssmodule.KebabCase)))
	if err != nil {
		return cssextract.ExtractConfig{}, err
	}

	// Position and name are per-invocation, flags only
	return cssextract.ExtractConfig{
		SourceFile:     sourceFile,
		Offset:         k.Int("offset"),
		Line:           k.Int("line"),
		Column:         k.Int("column"),
		ClassName:      k.String("name"),
		ClassAttribute: getStringWithFallback("class-attribute", "class-attribute", "className"),
		Naming:         naming,
		StylesIdent:    getStringWithFallback("styles-ident", "styles-ident", "styles"),
		MaxAttempts:    getIntWithFallback("max-attempts", "max-attempts", cssmodule.DefaultMaxAttempts),
		DryRun:         getBoolWithFallback("dry-run", "extract.dry-run", false),
		Logger:         logger,
	}, nil
}

// buildLintConfig constructs the library's LintConfig from koanf state.
func buildLintConfig(logger *zap.Logger) cssextract.LintConfig {
	// Handle paths: check flag key first, then config key
	var paths []string
	if p := k.Strings("paths"); len(p) > 0 {
		paths = p
	} else if p := k.Strings("lint.paths"); len(p) > 0 {
		paths = p
	} else {
		paths = []string{"src/**/*.{jsx,tsx}"}
	}

	return cssextract.LintConfig{
		Paths:              paths,
		Verbose:            getBoolWithFallback("verbose", "verbose", false),
		Strict:             getBoolWithFallback("strict", "lint.strict", false),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
		PrintIssuedLines:   getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:          getBoolWithFallback("color", "color", false),
		Logger:             logger,
	}
}

// newLogger returns a console logger on stderr in verbose mode and a no-op
// logger otherwise.
func newLogger() *zap.Logger {
	if !getBoolWithFallback("verbose", "verbose", false) {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		zap.DebugLevel,
	)
	return zap.New(core)
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
