package cssextract

import (
	"encoding/json"
	"io"
	"time"

	"github.com/yacobolo/cssextract/internal/cssmodule"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string         `json:"version"`
	Timestamp string         `json:"timestamp"`
	Summary   JSONSummary    `json:"summary"`
	Stats     JSONStats      `json:"stats"`
	Issues    []JSONIssue    `json:"issues"`
	QuickWins []JSONQuickWin `json:"quick_wins"`
	Warnings  []string       `json:"warnings,omitempty"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	FullyStatic  int `json:"fully_static"`
	Mixed        int `json:"mixed"`
	FilesScanned int `json:"files_scanned"`
	Truncated    int `json:"truncated"`
}

// JSONStats contains extraction statistics
type JSONStats struct {
	StyledElements     int            `json:"styled_elements"`
	ExtractableElems   int            `json:"extractable_elements"`
	StaticProperties   int            `json:"static_properties"`
	DynamicProperties  int            `json:"dynamic_properties"`
	ExtractablePercent float64        `json:"extractable_percentage"`
	ParseErrors        int            `json:"parse_errors"`
	CSSModules         int            `json:"css_modules"`
	ModuleClasses      int            `json:"module_classes"`
	ByCategory         map[string]int `json:"by_category"`
}

// JSONIssue represents a single linting issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Offset   int    `json:"offset"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"`
	Fix      string `json:"fix,omitempty"`
}

// JSONQuickWin represents a repeated static declaration
type JSONQuickWin struct {
	Declaration string `json:"declaration"`
	Occurrences int    `json:"occurrences"`
	Files       int    `json:"files"`
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result, time.Now()))
}

// buildJSONOutput converts LintResult to JSONOutput
func buildJSONOutput(result *LintResult, now time.Time) JSONOutput {
	var fullyStatic, mixed int
	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		switch issue.Severity {
		case SeverityWarning:
			fullyStatic++
		case SeverityInfo:
			mixed++
		}

		ji := JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Offset:   issue.Pos.Offset,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
		}
		if len(issue.SourceLines) > 0 {
			ji.Source = issue.SourceLines[0]
		}
		if issue.Replacement != nil {
			ji.Fix = issue.Replacement.Command
		}
		jsonIssues[i] = ji
	}

	wins := make([]JSONQuickWin, len(result.QuickWins))
	for i, win := range result.QuickWins {
		wins[i] = JSONQuickWin{
			Declaration: win.Declaration,
			Occurrences: win.Occurrences,
			Files:       win.Files,
		}
	}

	byCategory := make(map[string]int)
	for _, cat := range cssmodule.Categories {
		if n := result.ByCategory[cat]; n > 0 {
			byCategory[string(cat)] = n
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: now.Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			FullyStatic:  fullyStatic,
			Mixed:        mixed,
			FilesScanned: result.FilesScanned,
			Truncated:    result.TruncatedCount,
		},
		Stats: JSONStats{
			StyledElements:     result.StyledElements,
			ExtractableElems:   result.ExtractableElems,
			StaticProperties:   result.StaticProperties,
			DynamicProperties:  result.DynamicProperties,
			ExtractablePercent: result.ExtractablePercent,
			ParseErrors:        result.ParseErrors,
			CSSModules:         result.CSSModules,
			ModuleClasses:      result.ModuleClasses,
			ByCategory:         byCategory,
		},
		Issues:    jsonIssues,
		QuickWins: wins,
		Warnings:  result.Warnings,
	}
}
