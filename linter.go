package cssextract

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/yacobolo/cssextract/internal/cssmodule"
	"github.com/yacobolo/cssextract/internal/extract"
)

// maxQuickWins bounds the Quick Wins list.
const maxQuickWins = 10

// Lint scans the configured paths for inline style objects and reports the
// ones with properties that could live in a CSS module.
func Lint(config LintConfig) (*LintResult, error) {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	// Step 1: Discover files
	files, stats, err := expandGlobPatterns(config.Paths, newFileFilter(".gitignore"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}
	log.Debug("discovered files",
		zap.Int("scanned", stats.FilesScanned),
		zap.Int("skipped", stats.FilesSkipped))

	result := &LintResult{
		FilesScanned: stats.FilesScanned,
		FilesSkipped: stats.FilesSkipped,
		ByCategory:   make(map[cssmodule.PropertyCategory]int),
	}

	// Step 2: Parse every file and collect styled elements
	perFile := make(map[string][]StyledElement, len(files))
	for _, file := range files {
		elements, err := scanFile(file)
		if err != nil {
			result.ParseErrors++
			result.Warnings = append(result.Warnings, fmt.Sprintf("skipped %s: %v", file, err))
			log.Debug("scan failed", zap.String("file", file), zap.Error(err))
			continue
		}
		perFile[file] = elements
		countModuleClasses(result, file, log)
	}

	// Step 3: Analyze
	analyzeElements(result, files, perFile)

	// Step 4: Suggestions
	result.Suggestions = generateSuggestions(result)

	// Step 5: Apply issue limiting if configured
	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}

	return result, nil
}

// countModuleClasses records the CSS module next to file, if there is one
func countModuleClasses(result *LintResult, file string, log *zap.Logger) {
	path := cssmodule.ModulePath(file)
	// #nosec G304 - derived from a scanned source path
	content, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Debug("read css module", zap.String("path", path), zap.Error(err))
		}
		return
	}
	result.CSSModules++
	result.ModuleClasses += len(cssmodule.ListClasses(string(content)))
}

// analyzeElements turns scanned elements into statistics and issues.
// files fixes the iteration order.
func analyzeElements(result *LintResult, files []string, perFile map[string][]StyledElement) {
	declCount := make(map[string]int)
	declFiles := make(map[string]map[string]bool)

	for _, file := range files {
		for _, el := range perFile[file] {
			p := el.Partition
			result.StyledElements++
			result.StaticProperties += len(p.Static)
			result.DynamicProperties += len(p.Dynamic)

			for _, s := range p.Static {
				result.ByCategory[cssmodule.CategorizeProperty(s.Name)]++

				key := declarationKey(s)
				declCount[key]++
				if declFiles[key] == nil {
					declFiles[key] = make(map[string]bool)
				}
				declFiles[key][file] = true
			}

			if !p.HasStatic() {
				continue
			}
			result.ExtractableElems++
			if len(p.Dynamic) == 0 {
				result.FullyStatic++
			}
			result.Issues = append(result.Issues, buildIssue(el))
		}
	}

	total := result.StaticProperties + result.DynamicProperties
	if total > 0 {
		result.ExtractablePercent = float64(result.StaticProperties) / float64(total) * 100
	}

	result.QuickWins = generateQuickWins(declCount, declFiles)

	result.IssuesByCategory = make(map[string][]Issue)
	for _, issue := range result.Issues {
		result.IssuesByCategory[issue.Severity] = append(result.IssuesByCategory[issue.Severity], issue)
	}
}

// declarationKey renders a static style the way it would appear in CSS
func declarationKey(s extract.Style) string {
	return cssmodule.FormatDeclarations([]extract.Style{s}, cssmodule.KebabCase)[0]
}

// buildIssue creates the issue for an element with extractable properties
func buildIssue(el StyledElement) Issue {
	name := el.Element
	if name == "" {
		name = "fragment"
	}

	file := el.Location.File
	if filepath.IsAbs(file) {
		file = GetRelativePath(file)
	}

	p := el.Partition
	issue := Issue{
		FromLinter:  LinterName,
		SourceLines: []string{el.Location.Text},
		Pos: IssuePos{
			Filename: file,
			Line:     el.Location.Line,
			Column:   el.Location.Column,
			Offset:   el.Location.Offset,
		},
		Replacement: &Replacement{
			Command: fmt.Sprintf("cssextract extract %s --offset %d", file, el.Location.Offset),
		},
	}

	if len(p.Dynamic) == 0 {
		issue.Severity = SeverityWarning
		issue.Text = fmt.Sprintf(IssueFullyStatic, name,
			pluralizeCount(len(p.Static), "property", "properties"))
	} else {
		issue.Severity = SeverityInfo
		issue.Text = fmt.Sprintf(IssueMixed, name,
			pluralizeCount(len(p.Static), "static property", "static properties"),
			len(p.Dynamic))
	}
	return issue
}

// generateQuickWins lists the most repeated static declarations
func generateQuickWins(declCount map[string]int, declFiles map[string]map[string]bool) []QuickWin {
	var wins []QuickWin
	for decl, count := range declCount {
		if count < 2 {
			continue
		}
		wins = append(wins, QuickWin{
			Declaration: decl,
			Occurrences: count,
			Files:       len(declFiles[decl]),
		})
	}

	// Sort by occurrences (descending), then name for stable output
	sort.Slice(wins, func(i, j int) bool {
		if wins[i].Occurrences != wins[j].Occurrences {
			return wins[i].Occurrences > wins[j].Occurrences
		}
		return wins[i].Declaration < wins[j].Declaration
	})

	if len(wins) > maxQuickWins {
		wins = wins[:maxQuickWins]
	}
	return wins
}

// generateSuggestions creates actionable recommendations
func generateSuggestions(result *LintResult) []string {
	var suggestions []string

	if result.FullyStatic > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("Run `cssextract extract` on the %s flagged as fully static; they need no inline style at all",
				pluralizeCount(result.FullyStatic, "element", "elements")))
	}

	if len(result.QuickWins) > 0 {
		suggestions = append(suggestions, "Repeated declarations (see Quick Wins) are candidates for a shared class")
	}

	if result.StyledElements > 0 && result.ExtractablePercent >= 50 {
		suggestions = append(suggestions, "Most inline style properties are static - start with the largest components")
	}

	if result.ParseErrors > 0 {
		suggestions = append(suggestions, "Some files failed to parse; check their extension matches their syntax (.tsx for TypeScript with JSX)")
	}

	return suggestions
}

// printProgressBar prints a visual progress bar
func printProgressBar(w io.Writer, percentage float64) {
	barWidth := 20
	filled := int(percentage / 100 * float64(barWidth))

	fmt.Fprint(w, "[")
	for i := 0; i < barWidth; i++ {
		if i < filled {
			fmt.Fprint(w, "█")
		} else {
			fmt.Fprint(w, "░")
		}
	}
	fmt.Fprintf(w, "] %.1f%%\n", percentage)
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssuesPerLinter > 0 && len(issues) > config.MaxIssuesPerLinter {
		issues = issues[:config.MaxIssuesPerLinter]
	}

	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		count := messageCounts[issue.Text]
		if count < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
