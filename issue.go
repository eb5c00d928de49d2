package cssextract

// LinterName tags every issue produced by Lint.
const LinterName = "inlinestyle"

// Issue represents a single linting finding in golangci-lint format
type Issue struct {
	FromLinter  string       `json:"FromLinter"`  // "inlinestyle"
	Text        string       `json:"Text"`        // "inline style on <div> has 2 static properties ..."
	Severity    string       `json:"Severity"`    // "" (info) or "warning"
	SourceLines []string     `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos     `json:"Pos"`         // File location
	Replacement *Replacement `json:"Replacement"` // Optional fix suggestion
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "src/components/Card.tsx"
	Line     int    `json:"Line"`     // 12
	Column   int    `json:"Column"`   // 1-based, start of the style attribute
	Offset   int    `json:"Offset"`   // 0-based byte offset, usable with `extract --offset`
}

// Replacement describes the fix `cssextract extract` would apply.
type Replacement struct {
	Command string // "cssextract extract src/Card.tsx --offset 120"
}

// IssueSeverity constants
const (
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Issue messages
const (
	IssueFullyStatic = "inline style on <%s> is fully static (%s); move it to a CSS module class"
	IssueMixed       = "inline style on <%s> has %s that can move to a CSS module class (%d dynamic kept inline)"
)
