package cssextract

import (
	"go.uber.org/zap"

	"github.com/yacobolo/cssextract/internal/cssmodule"
	"github.com/yacobolo/cssextract/internal/extract"
)

// ExtractConfig holds the inputs of a single extraction.
type ExtractConfig struct {
	SourceFile     string           // "src/components/Card.tsx"
	Offset         int              // 0-based byte offset, used when Line is 0
	Line           int              // 1-based, takes precedence over Offset
	Column         int              // 1-based
	ClassName      string           // "" = generate from the element name
	ClassAttribute string           // "className" (default) or "class"
	Naming         cssmodule.Naming // property naming in the CSS module
	StylesIdent    string           // import identifier, default "styles"
	MaxAttempts    int              // unique name attempts, 0 = default
	DryRun         bool             // compute everything, write nothing
	Logger         *zap.Logger      // nil = no logging
}

// ExtractResult describes what Extract did (or would do in dry-run mode).
type ExtractResult struct {
	SourceFile      string                 `json:"sourceFile"`
	CSSFile         string                 `json:"cssFile"`
	ElementName     string                 `json:"elementName"`
	ClassName       string                 `json:"className"`
	ExtractedStyles []extract.Style        `json:"extractedStyles"`
	Changed         bool                   `json:"changed"`
	Rule            string                 `json:"rule,omitempty"`
	RuleLocation    cssmodule.RuleLocation `json:"ruleLocation"`
	Source          string                 `json:"-"` // new source text
	CSS             string                 `json:"-"` // new CSS module text
}

// LintConfig holds linting configuration
type LintConfig struct {
	Paths   []string // Patterns to scan (e.g., "src/**/*.{jsx,tsx}")
	Verbose bool // Append the detail sections to the issues output
	Strict  bool // Exit with code 1 if issues found

	MaxIssuesPerLinter int  // 0 = unlimited (default)
	MaxSameIssues      int  // 0 = unlimited (default)
	PrintIssuedLines   bool // Show source lines with issues (default: true)
	PrintLinterName    bool // Show (inlinestyle) suffix (default: true)
	UseColors          bool // Force color output

	Logger *zap.Logger
}

// LintResult contains linting analysis results
type LintResult struct {
	// Statistics
	FilesScanned       int
	FilesSkipped       int
	ParseErrors        int
	StyledElements     int // Elements with style={{ ... }}
	ExtractableElems   int // Styled elements with at least one static property
	FullyStatic        int // Styled elements with no dynamic property
	StaticProperties   int
	DynamicProperties  int
	ExtractablePercent float64 // StaticProperties / all properties
	CSSModules         int     // Existing <base>.module.css files next to scanned sources
	ModuleClasses      int     // Classes defined in those modules

	ByCategory map[cssmodule.PropertyCategory]int

	// Issues in golangci-lint format
	Issues           []Issue
	IssuesByCategory map[string][]Issue
	TruncatedCount   int

	Warnings    []string
	Suggestions []string
	QuickWins   []QuickWin
}

// QuickWin is a static declaration repeated across inline styles.
type QuickWin struct {
	Declaration string // "padding: 16px"
	Occurrences int
	Files       int
}

// OutputFormat represents the linter output format
type OutputFormat string

const (
	// OutputIssues shows only issues in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics and Quick Wins only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues, statistics and Quick Wins
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data for tooling
	OutputJSON OutputFormat = "json"
	// OutputMarkdown generates a shareable report
	OutputMarkdown OutputFormat = "markdown"
)
