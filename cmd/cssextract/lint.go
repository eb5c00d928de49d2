package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssextract"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Report inline styles that could move to CSS modules",
	Long: `Scan JSX/TSX sources for style={{ ... }} objects and report every element
with static properties that could live in a CSS module class.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		code, err := runLint(cmd)
		if err != nil {
			return err
		}
		if code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", []string{"src/**/*.{jsx,tsx}"}, "File patterns to scan for inline styles")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json|markdown")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (inlinestyle) suffix on issues")
}

// runLint lints, writes the report and returns the exit code.
func runLint(cmd *cobra.Command) (int, error) {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	lintConfig := buildLintConfig(logger)

	lintResult, err := cssextract.Lint(lintConfig)
	if err != nil {
		return 0, fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := cssextract.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		if err := cssextract.WriteOutput(cmd.OutOrStdout(), lintResult, format, lintConfig); err != nil {
			return 0, err
		}
	}

	// Inline styles are suggestions; only strict mode fails the build
	if lintConfig.Strict && len(lintResult.Issues) > 0 {
		return 1, nil
	}
	return 0, nil
}
