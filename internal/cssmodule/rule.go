package cssmodule

import (
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/yacobolo/cssextract/internal/jsx"
)

// RuleLocation is a 1-based position in a stylesheet.
type RuleLocation struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// classSelector is a `.name` occurrence found by the lexer.
type classSelector struct {
	name   string
	offset int
}

// scanClassSelectors lexes css and returns every class selector with the
// byte offset of its dot.
func scanClassSelectors(content string) []classSelector {
	var out []classSelector
	lexer := css.NewLexer(parse.NewInputString(content))

	offset := 0
	dot := -1
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// EOF
			break
		}

		switch {
		case tt == css.DelimToken && len(text) > 0 && text[0] == '.':
			dot = offset
		case tt == css.IdentToken && dot >= 0:
			out = append(out, classSelector{name: string(text), offset: dot})
			dot = -1
		default:
			dot = -1
		}
		offset += len(text)
	}
	return out
}

// LocateRule returns where the rule for .name starts. The last matching
// selector wins, so a freshly appended rule is found even when an older
// compound selector mentions the same class.
func LocateRule(content, name string) (RuleLocation, bool) {
	found := -1
	for _, sel := range scanClassSelectors(content) {
		if sel.name == name {
			found = sel.offset
		}
	}
	if found < 0 {
		return RuleLocation{}, false
	}
	line, col := jsx.LineColumn([]byte(content), found)
	return RuleLocation{Line: line, Column: col}, true
}

// ListClasses returns the distinct class names used in selectors, in order
// of first appearance.
func ListClasses(content string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, sel := range scanClassSelectors(content) {
		if seen[sel.name] {
			continue
		}
		seen[sel.name] = true
		out = append(out, sel.name)
	}
	return out
}
