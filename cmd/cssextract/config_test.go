package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yacobolo/cssextract"
	"github.com/yacobolo/cssextract/internal/cssmodule"
	"github.com/yacobolo/cssextract/internal/extract"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

// chdir switches to dir for the rest of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssextract.yaml")
	configContent := `
class-attribute: class
naming: camelCase
verbose: true

extract:
  dry-run: true

lint:
  strict: true
  max-same-issues: 3
  paths:
    - "app/**/*.tsx"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "class", k.String("class-attribute"))
	assert.Equal(t, "camelCase", k.String("naming"))
	assert.True(t, k.Bool("verbose"))
	assert.True(t, k.Bool("extract.dry-run"))
	assert.True(t, k.Bool("lint.strict"))
	assert.Equal(t, 3, k.Int("lint.max-same-issues"))
	assert.Equal(t, []string{"app/**/*.tsx"}, k.Strings("lint.paths"))
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{env: "CSSEXTRACT_VERBOSE", want: "verbose"},
		{env: "CSSEXTRACT_CLASS_ATTRIBUTE", want: "class-attribute"},
		{env: "CSSEXTRACT_MAX_ATTEMPTS", want: "max-attempts"},
		{env: "CSSEXTRACT_LINT_STRICT", want: "lint.strict"},
		{env: "CSSEXTRACT_LINT_OUTPUT_FORMAT", want: "lint.output-format"},
		{env: "CSSEXTRACT_EXTRACT_DRY_RUN", want: "extract.dry-run"},
		{env: "CSSEXTRACT_LINTER", want: "linter"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.env))
		})
	}
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssextract.yaml")
	configContent := `
naming: kebab-case
lint:
  strict: false
  output-format: summary
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	t.Setenv("CSSEXTRACT_NAMING", "camelCase")
	t.Setenv("CSSEXTRACT_LINT_STRICT", "true")
	t.Setenv("CSSEXTRACT_LINT_OUTPUT_FORMAT", "json")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "camelCase", k.String("naming"))
	assert.True(t, k.Bool("lint.strict"))
	assert.Equal(t, "json", k.String("lint.output-format"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	require.NoError(t, loadConfigFromPath("/nonexistent/.cssextract.yaml"))

	config, err := buildExtractConfig("src/Card.tsx", nil)
	require.NoError(t, err)
	assert.Equal(t, "src/Card.tsx", config.SourceFile)
	assert.Equal(t, "className", config.ClassAttribute)
	assert.Equal(t, cssmodule.KebabCase, config.Naming)
	assert.Equal(t, "styles", config.StylesIdent)
	assert.Equal(t, cssmodule.DefaultMaxAttempts, config.MaxAttempts)
	assert.False(t, config.DryRun)
}

func TestBuildExtractConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssextract.yaml")
	configContent := `
class-attribute: class
naming: camelCase
styles-ident: css
max-attempts: 5
extract:
  dry-run: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	logger := zap.NewNop()
	config, err := buildExtractConfig("Card.jsx", logger)
	require.NoError(t, err)
	assert.Equal(t, "class", config.ClassAttribute)
	assert.Equal(t, cssmodule.CamelCase, config.Naming)
	assert.Equal(t, "css", config.StylesIdent)
	assert.Equal(t, 5, config.MaxAttempts)
	assert.True(t, config.DryRun)
	assert.Same(t, logger, config.Logger)
}

func TestBuildExtractConfig_InvalidNaming(t *testing.T) {
	resetKoanf()
	require.NoError(t, k.Set("naming", "snake_case"))

	_, err := buildExtractConfig("Card.jsx", nil)
	require.Error(t, err)
}

func TestBuildLintConfig_Defaults(t *testing.T) {
	resetKoanf()

	config := buildLintConfig(nil)
	assert.Equal(t, []string{"src/**/*.{jsx,tsx}"}, config.Paths)
	assert.False(t, config.Strict)
	assert.Equal(t, 0, config.MaxIssuesPerLinter)
	assert.Equal(t, 0, config.MaxSameIssues)
	assert.True(t, config.PrintIssuedLines)
	assert.True(t, config.PrintLinterName)
	assert.False(t, config.UseColors)
}

func TestBuildLintConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssextract.yaml")
	configContent := `
lint:
  strict: true
  paths:
    - "app/**/*.jsx"
  max-issues-per-linter: 10
  print-lines: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildLintConfig(nil)
	assert.True(t, config.Strict)
	assert.Equal(t, []string{"app/**/*.jsx"}, config.Paths)
	assert.Equal(t, 10, config.MaxIssuesPerLinter)
	assert.False(t, config.PrintIssuedLines)
}

func TestFlagKeyWinsOverConfigKey(t *testing.T) {
	resetKoanf()
	require.NoError(t, k.Set("lint.strict", true))
	require.NoError(t, k.Set("strict", false))
	require.NoError(t, k.Set("lint.paths", []string{"from-file/*.tsx"}))
	require.NoError(t, k.Set("paths", []string{"from-flag/*.tsx"}))

	config := buildLintConfig(nil)
	assert.False(t, config.Strict)
	assert.Equal(t, []string{"from-flag/*.tsx"}, config.Paths)
}

func TestEditorArgs(t *testing.T) {
	dir := t.TempDir()
	result := &cssextract.ExtractResult{
		CSSFile:      filepath.Join(dir, "Card.module.css"),
		RuleLocation: cssmodule.RuleLocation{Line: 7, Column: 1},
	}
	cssFile := result.CSSFile

	tests := []struct {
		name   string
		editor string
		want   []string
	}{
		{
			name:   "location appended",
			editor: "code -g",
			want:   []string{"code", "-g", cssFile + ":7:1"},
		},
		{
			name:   "placeholders",
			editor: "vim +{line} {file}",
			want:   []string{"vim", "+7", cssFile},
		},
		{
			name:   "all placeholders in one argument",
			editor: "subl {file}:{line}:{column}",
			want:   []string{"subl", cssFile + ":7:1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, editorArgs(tt.editor, result))
		})
	}
}

func TestExtractCommand(t *testing.T) {
	resetKoanf()
	dir := t.TempDir()
	chdir(t, dir)

	src := "export const Box = () => <div style={{ padding: 8, color: 'red' }} />;\n"
	require.NoError(t, os.WriteFile("Box.jsx", []byte(src), 0644))

	var out bytes.Buffer
	cmd := rootCmd
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"extract", "Box.jsx", "--line", "1", "--column", "27", "--name", "box", "--json"})
	require.NoError(t, cmd.Execute())

	var result cssextract.ExtractResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.True(t, result.Changed)
	assert.Equal(t, "box", result.ClassName)
	assert.Equal(t, "div", result.ElementName)
	assert.Len(t, result.ExtractedStyles, 2)

	data, err := os.ReadFile("Box.jsx")
	require.NoError(t, err)
	assert.Equal(t, "import styles from './Box.module.css';\nexport const Box = () => <div className={styles.box} />;\n", string(data))

	css, err := os.ReadFile("Box.module.css")
	require.NoError(t, err)
	assert.Equal(t, ".box {\n  padding: 8px;\n  color: red;\n}\n", string(css))
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	cmd := rootCmd
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"init"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".cssextract.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "class-attribute: className")
	assert.Contains(t, string(data), "extract:")
	assert.Contains(t, string(data), "lint:")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(".cssextract.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(".cssextract.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".cssextract.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "naming: kebab-case")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := rootCmd
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "cssextract dev\n", out.String())
}

func TestGetWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - defaults
	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))
	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
	assert.Equal(t, 42, getIntWithFallback("flag-key", "config.key", 42))
}

func TestPrintExtractResult(t *testing.T) {
	result := &cssextract.ExtractResult{
		CSSFile:     "src/Card.module.css",
		ElementName: "div",
		ClassName:   "card",
		Changed:     true,
		ExtractedStyles: []extract.Style{
			{Name: "padding", Value: "8", Numeric: true},
			{Name: "color", Value: "red"},
			{Name: "display", Value: "flex"},
		},
		Rule:         ".card {\n  padding: 8px;\n}\n",
		RuleLocation: cssmodule.RuleLocation{Line: 4, Column: 1},
	}

	var out bytes.Buffer
	printExtractResult(&out, result, false, false)
	assert.Equal(t, "Extracted 3 properties from <div> into .card\n"+
		"  src/Card.module.css:4:1\n"+
		"  Layout:      display, padding\n"+
		"  Visual:      color\n", out.String())

	out.Reset()
	printExtractResult(&out, result, true, false)
	assert.Contains(t, out.String(), "Would extract 3 properties")
	assert.Contains(t, out.String(), ".card {\n  padding: 8px;\n}\n")

	out.Reset()
	printExtractResult(&out, &cssextract.ExtractResult{ElementName: "span"}, false, false)
	assert.Equal(t, "Nothing to extract: every style property of <span> is dynamic\n", out.String())
}

func TestLintCommand(t *testing.T) {
	resetKoanf()
	chdir(t, t.TempDir())

	require.NoError(t, os.MkdirAll("src", 0755))
	require.NoError(t, os.WriteFile("src/A.jsx", []byte("export const A = () => <p style={{ margin: 0 }} />;\n"), 0644))

	var out bytes.Buffer
	cmd := rootCmd
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"lint", "--output-format", "json"})
	require.NoError(t, cmd.Execute())

	var report cssextract.JSONOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, 1, report.Summary.FilesScanned)
	assert.Equal(t, 1, report.Summary.FullyStatic)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, "src/A.jsx", report.Issues[0].File)
}
