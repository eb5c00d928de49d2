package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssextract"
	"github.com/yacobolo/cssextract/internal/cssmodule"
)

var extractCmd = &cobra.Command{
	Use:   "extract FILE",
	Short: "Move the static inline styles of one element into its CSS module",
	Long: `Find the innermost element with a style={{ ... }} object around the given
position, move its static properties into <FILE base>.module.css under a new
class and reference that class from the element. Dynamic properties stay inline.`,
	Example: `  cssextract extract src/Card.tsx --line 12 --column 9 --name card
  cssextract extract src/Card.tsx --offset 431 --dry-run --json`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := runExtract(cmd.OutOrStdout(), args[0])
		return err
	},
}

var extractOpenCmd = &cobra.Command{
	Use:   "extract-open FILE",
	Short: "Extract, then open the CSS module at the new class",
	Long: `Run extract, print the location of the new rule as css-file:line:column and
open it with the configured editor command. The editor command may use the
placeholders {file}, {line} and {column}; without placeholders the location
is appended as a single file:line:column argument.`,
	Example: `  cssextract extract-open src/Card.tsx --line 12 --column 9 --editor "code -g"
  cssextract extract-open src/Card.tsx --offset 431 --editor "vim +{line} {file}"`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := runExtract(cmd.OutOrStdout(), args[0])
		if err != nil || !result.Changed {
			return err
		}

		if !k.Bool("json") {
			fmt.Fprintf(cmd.OutOrStdout(), "%s:%d:%d\n", result.CSSFile, result.RuleLocation.Line, result.RuleLocation.Column)
		}

		if getBoolWithFallback("dry-run", "extract.dry-run", false) {
			return nil
		}
		editor := getStringWithFallback("editor", "editor", os.Getenv("VISUAL"))
		if editor == "" {
			editor = os.Getenv("EDITOR")
		}
		if editor == "" {
			return nil
		}
		return openEditor(editor, result)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{extractCmd, extractOpenCmd} {
		f := cmd.Flags()
		f.Int("offset", 0, "0-based byte offset of the cursor")
		f.Int("line", 0, "1-based cursor line (takes precedence over --offset)")
		f.Int("column", 1, "1-based cursor column, used with --line")
		f.String("name", "", "Class name (default: <element>-<random>)")
		f.Int("max-attempts", 100, "Attempts to find a free generated class name")
		f.Bool("dry-run", false, "Compute the change without writing files")
		f.Bool("json", false, "Print the result as JSON")
	}
	extractOpenCmd.Flags().String("editor", "", "Editor command (default: $VISUAL, then $EDITOR)")
}

// runExtract runs one extraction from koanf state and reports it on w.
func runExtract(w io.Writer, sourceFile string) (*cssextract.ExtractResult, error) {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	config, err := buildExtractConfig(sourceFile, logger)
	if err != nil {
		return nil, err
	}

	result, err := cssextract.Extract(config)
	if err != nil {
		return nil, err
	}

	if getBoolWithFallback("quiet", "quiet", false) {
		return result, nil
	}
	if k.Bool("json") {
		return result, writeExtractJSON(w, result)
	}
	printExtractResult(w, result, config.DryRun, cssextract.ShouldUseColors(getBoolWithFallback("color", "color", false)))
	return result, nil
}

func writeExtractJSON(w io.Writer, result *cssextract.ExtractResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	return nil
}

func printExtractResult(w io.Writer, result *cssextract.ExtractResult, dryRun bool, useColors bool) {
	if !result.Changed {
		fmt.Fprintf(w, "Nothing to extract: every style property of <%s> is dynamic\n", result.ElementName)
		return
	}

	verb := "Extracted"
	if dryRun {
		verb = "Would extract"
	}
	fmt.Fprintf(w, "%s %d %s from <%s> into %s\n",
		cssextract.RenderStyle(cssextract.StyleGreen, verb, useColors),
		len(result.ExtractedStyles),
		pluralize(len(result.ExtractedStyles), "property", "properties"),
		result.ElementName,
		cssextract.RenderStyle(cssextract.StyleCyan, "."+result.ClassName, useColors))
	fmt.Fprintf(w, "  %s:%d:%d\n", result.CSSFile, result.RuleLocation.Line, result.RuleLocation.Column)

	grouped := cssmodule.CategorizeStyles(result.ExtractedStyles)
	for _, cat := range cssmodule.Categories {
		styles := grouped[cat]
		if len(styles) == 0 {
			continue
		}
		names := make([]string, len(styles))
		for i, s := range styles {
			names[i] = s.Name
		}
		fmt.Fprintf(w, "  %-12s %s\n", string(cat)+":", strings.Join(names, ", "))
	}

	if dryRun {
		fmt.Fprintln(w, "")
		fmt.Fprint(w, result.Rule)
	}
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// editorArgs splits the editor command and fills in the rule location.
func editorArgs(editor string, result *cssextract.ExtractResult) []string {
	file := result.CSSFile
	if abs, err := filepath.Abs(file); err == nil {
		file = abs
	}
	line := strconv.Itoa(result.RuleLocation.Line)
	column := strconv.Itoa(result.RuleLocation.Column)

	fields := strings.Fields(editor)
	replacer := strings.NewReplacer("{file}", file, "{line}", line, "{column}", column)
	templated := false
	for i, field := range fields {
		if strings.Contains(field, "{file}") {
			templated = true
		}
		fields[i] = replacer.Replace(field)
	}
	if !templated {
		fields = append(fields, file+":"+line+":"+column)
	}
	return fields
}

func openEditor(editor string, result *cssextract.ExtractResult) error {
	args := editorArgs(editor, result)
	// #nosec G204 - the editor command is user configuration
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("opening editor %q: %w", args[0], err)
	}
	return nil
}
