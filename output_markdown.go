package cssextract

import (
	"fmt"
	"io"
	"strings"

	"github.com/yacobolo/cssextract/internal/cssmodule"
)

// WriteMarkdown writes the lint result as a Markdown report
func WriteMarkdown(w io.Writer, result *LintResult) error {
	var sb strings.Builder

	sb.WriteString("# Inline Style Report\n\n")

	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Files scanned | %d |\n", result.FilesScanned)
	fmt.Fprintf(&sb, "| Styled elements | %d |\n", result.StyledElements)
	fmt.Fprintf(&sb, "| Extractable elements | %d |\n", result.ExtractableElems)
	fmt.Fprintf(&sb, "| Fully static | %d |\n", result.FullyStatic)
	fmt.Fprintf(&sb, "| Static properties | %d (%.1f%%) |\n", result.StaticProperties, result.ExtractablePercent)
	fmt.Fprintf(&sb, "| Dynamic properties | %d |\n", result.DynamicProperties)

	if result.StaticProperties > 0 {
		sb.WriteString("\n## Categories\n\n")
		for _, cat := range cssmodule.Categories {
			if n := result.ByCategory[cat]; n > 0 {
				fmt.Fprintf(&sb, "- **%s**: %d\n", cat, n)
			}
		}
	}

	if len(result.QuickWins) > 0 {
		sb.WriteString("\n## Quick Wins\n\n")
		for i, win := range result.QuickWins {
			fmt.Fprintf(&sb, "%d. `%s` (%d occurrences, %s)\n",
				i+1, win.Declaration, win.Occurrences, pluralizeCount(win.Files, "file", "files"))
		}
	}

	if len(result.Issues) > 0 {
		sb.WriteString("\n## Issues\n\n")
		sb.WriteString("| Location | Message |\n|---|---|\n")
		for _, issue := range result.Issues {
			fmt.Fprintf(&sb, "| `%s:%d:%d` | %s |\n",
				issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column, escapeMarkdownCell(issue.Text))
		}
	}

	if len(result.Warnings) > 0 {
		sb.WriteString("\n## Warnings\n\n")
		for _, warning := range result.Warnings {
			fmt.Fprintf(&sb, "- %s\n", warning)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// escapeMarkdownCell keeps a message inside one table cell
func escapeMarkdownCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "<", "&lt;")
	return strings.ReplaceAll(s, ">", "&gt;")
}
