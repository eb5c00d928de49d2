package cssextract

import (
	"fmt"
	"io"
)

// DetermineOutputFormat selects the output format from the flag value.
// Unknown or empty values fall back to the issues format.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	}

	return DetermineDefaultOutputFormat()
}

// DetermineDefaultOutputFormat returns the default output format.
// Like golangci-lint: issues only.
func DetermineDefaultOutputFormat() OutputFormat {
	return OutputIssues
}

// WriteOutput writes the lint result in the specified format
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config LintConfig) error {
	switch format {
	case OutputSummary:
		vr := NewVerboseReporter(w, ShouldUseColors(config.UseColors))
		printDetails(vr, *result)

	case OutputFull:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
		printDetails(NewVerboseReporter(w, reporter.UseColors()), *result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}

	case OutputMarkdown:
		if err := WriteMarkdown(w, result); err != nil {
			return fmt.Errorf("writing Markdown: %w", err)
		}

	default:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
		if config.Verbose {
			printDetails(NewVerboseReporter(w, reporter.UseColors()), *result)
		}
	}
	return nil
}

func printDetails(vr *VerboseReporter, result LintResult) {
	vr.PrintStatistics(result)
	vr.PrintCategories(result)
	vr.PrintExtractionPotential(result)
	vr.PrintQuickWins(result)
	vr.PrintWarnings(result)
	vr.PrintSuggestions(result)
}
