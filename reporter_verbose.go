package cssextract

import (
	"fmt"
	"io"

	"github.com/yacobolo/cssextract/internal/cssmodule"
)

// VerboseReporter handles detailed statistics and suggestions
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

func (r *VerboseReporter) section(title string) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, title, r.useColors))
	fmt.Fprintln(r.w, "------------------------")
}

// PrintStatistics outputs detailed linting statistics
func (r *VerboseReporter) PrintStatistics(result LintResult) {
	r.section("Inline Style Statistics")

	fmt.Fprintf(r.w, "Files Scanned:           %d\n", result.FilesScanned)
	if result.ParseErrors > 0 {
		fmt.Fprintf(r.w, "Parse Errors:            %d\n", result.ParseErrors)
	}
	fmt.Fprintf(r.w, "Styled Elements:         %d\n", result.StyledElements)
	fmt.Fprintf(r.w, "Extractable Elements:    %d (%d fully static)\n", result.ExtractableElems, result.FullyStatic)
	fmt.Fprintf(r.w, "Static Properties:       %d\n", result.StaticProperties)
	fmt.Fprintf(r.w, "Dynamic Properties:      %d\n", result.DynamicProperties)
	fmt.Fprintf(r.w, "CSS Modules:             %d (%d classes)\n", result.CSSModules, result.ModuleClasses)
}

// PrintCategories shows static properties per category
func (r *VerboseReporter) PrintCategories(result LintResult) {
	if result.StaticProperties == 0 {
		return
	}

	r.section("Static Properties by Category")
	for _, cat := range cssmodule.Categories {
		if n := result.ByCategory[cat]; n > 0 {
			fmt.Fprintf(r.w, "%-12s %d\n", string(cat)+":", n)
		}
	}
}

// PrintExtractionPotential shows the share of static properties as a bar
func (r *VerboseReporter) PrintExtractionPotential(result LintResult) {
	r.section("Extraction Potential")
	printProgressBar(r.w, result.ExtractablePercent)
}

// PrintQuickWins shows the most repeated static declarations
func (r *VerboseReporter) PrintQuickWins(result LintResult) {
	if len(result.QuickWins) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Quick Wins", r.useColors))
	fmt.Fprintln(r.w, "-------------")
	fmt.Fprintln(r.w, "\nRepeated static declarations:")
	for i, win := range result.QuickWins {
		fmt.Fprintf(r.w, "%d. %q - %d occurrences in %s\n",
			i+1, win.Declaration, win.Occurrences, pluralizeCount(win.Files, "file", "files"))
	}
}

// PrintWarnings shows files that could not be scanned
func (r *VerboseReporter) PrintWarnings(result LintResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// PrintSuggestions shows recommendations
func (r *VerboseReporter) PrintSuggestions(result LintResult) {
	if len(result.Suggestions) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Recommendations", r.useColors))
	fmt.Fprintln(r.w, "------------------")
	for i, s := range result.Suggestions {
		fmt.Fprintf(r.w, "%d. %s\n", i+1, s)
	}
}
