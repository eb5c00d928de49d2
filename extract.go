package cssextract

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/yacobolo/cssextract/internal/cssmodule"
	"github.com/yacobolo/cssextract/internal/extract"
	"github.com/yacobolo/cssextract/internal/jsx"
)

// ErrClassExists is returned when an explicit class name is already
// defined in the target CSS module.
var ErrClassExists = errors.New("class already exists in CSS module")

// ErrInvalidClassName is returned when an explicit class name is not a
// CSS identifier.
var ErrInvalidClassName = errors.New("invalid class name")

// ErrPositionOutOfRange is returned when Line/Column do not address a
// position in the source file.
var ErrPositionOutOfRange = errors.New("line/column out of range")

// Extract moves the static styles of the element at the configured
// position into the source file's CSS module.
func Extract(config ExtractConfig) (*ExtractResult, error) {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	maxAttempts := config.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = cssmodule.DefaultMaxAttempts
	}
	if config.ClassName != "" && !cssmodule.ValidClassName(config.ClassName) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidClassName, config.ClassName)
	}

	// 1. Read source and resolve the position
	srcBytes, err := os.ReadFile(config.SourceFile)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	info, err := os.Stat(config.SourceFile)
	if err != nil {
		return nil, fmt.Errorf("stat source: %w", err)
	}

	offset := config.Offset
	if config.Line > 0 {
		column := config.Column
		if column <= 0 {
			column = 1
		}
		var ok bool
		offset, ok = jsx.OffsetAt(srcBytes, config.Line, column)
		if !ok {
			return nil, fmt.Errorf("%w: %d:%d", ErrPositionOutOfRange, config.Line, column)
		}
	}

	// 2. Find and partition the styled element
	target, err := extract.Analyze(string(srcBytes), offset, extract.Options{
		Dialect:        jsx.DialectForPath(config.SourceFile),
		ClassAttribute: config.ClassAttribute,
		StylesIdent:    config.StylesIdent,
		Logger:         logger,
	})
	if err != nil {
		return nil, err
	}

	cssFile := cssmodule.ModulePath(config.SourceFile)
	result := &ExtractResult{
		SourceFile:      config.SourceFile,
		CSSFile:         cssFile,
		ElementName:     target.ElementName(),
		ExtractedStyles: []extract.Style{},
		Source:          target.Source,
	}

	if !target.Partition.HasStatic() {
		logger.Info("nothing to extract",
			zap.String("file", config.SourceFile),
			zap.String("element", result.ElementName))
		return result, nil
	}

	// 3. Pick a class name that is free in the module
	css, err := readModule(cssFile)
	if err != nil {
		return nil, err
	}
	result.CSS = css

	className := config.ClassName
	if className != "" {
		if cssmodule.ClassExists(css, className) {
			return nil, fmt.Errorf("%w: .%s in %s", ErrClassExists, className, cssFile)
		}
	} else {
		className, err = cssmodule.GenerateUnique(css, target.ElementName(), maxAttempts)
		if err != nil {
			return nil, err
		}
	}

	// 4. Rewrite the element and the module
	applied, err := target.Apply(className)
	if err != nil {
		return nil, err
	}

	stylesIdent := config.StylesIdent
	if stylesIdent == "" {
		stylesIdent = extract.DefaultStylesIdent
	}
	source := cssmodule.EnsureImport(applied.TransformedCode, config.SourceFile, stylesIdent)

	rule := cssmodule.FormatRule(className, applied.ExtractedStyles, config.Naming)
	newCSS := cssmodule.AppendRule(css, rule)
	loc, _ := cssmodule.LocateRule(newCSS, className)

	result.ClassName = className
	result.ExtractedStyles = applied.ExtractedStyles
	result.Changed = true
	result.Rule = rule
	result.RuleLocation = loc
	result.Source = source
	result.CSS = newCSS

	if config.DryRun {
		logger.Info("dry run, nothing written",
			zap.String("file", config.SourceFile),
			zap.String("class", className))
		return result, nil
	}

	// 5. Write the module first so the import never dangles
	if err := os.WriteFile(cssFile, []byte(newCSS), 0644); err != nil {
		return nil, fmt.Errorf("write CSS module: %w", err)
	}
	if err := os.WriteFile(config.SourceFile, []byte(source), info.Mode().Perm()); err != nil {
		return nil, fmt.Errorf("write source: %w", err)
	}

	logger.Info("extracted inline style",
		zap.String("file", config.SourceFile),
		zap.String("css", cssFile),
		zap.String("element", result.ElementName),
		zap.String("class", className),
		zap.Int("properties", len(result.ExtractedStyles)))

	return result, nil
}

// readModule returns the module's content, "" when it does not exist yet.
func readModule(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read CSS module: %w", err)
	}
	return string(data), nil
}
