// Package extract moves constant inline style properties of a JSX element
// into a CSS module class.
//
// The work happens in three steps: the style object is partitioned into
// static and dynamic properties, the element's attributes are rewritten as a
// list of non-overlapping text edits, and the edits are applied to the source
// in one pass. Everything here is pure: no I/O and no shared state.
package extract

import "github.com/yacobolo/cssextract/internal/jsx"

// IsStatic reports whether the value of e is known from the source text
// alone and cannot change between renders.
func IsStatic(e jsx.Expr) bool {
	_, ok := StaticText(e)
	return ok
}

// StaticText returns the textual value of a static expression:
//
//   - string literal: the decoded value
//   - numeric literal: the source text, unformatted
//   - true / false: the keyword
//   - template literal without substitutions: the raw text between backticks
//
// Every other expression is dynamic and yields ok == false.
func StaticText(e jsx.Expr) (string, bool) {
	switch v := e.(type) {
	case *jsx.StringLit:
		return v.Value, true
	case *jsx.NumberLit:
		return v.Raw, true
	case *jsx.BoolLit:
		if v.Value {
			return "true", true
		}
		return "false", true
	case *jsx.TemplateLit:
		if len(v.Substitutions) > 0 {
			return "", false
		}
		return v.Content, true
	case *jsx.ObjectLit, *jsx.Element, *jsx.Opaque:
		return "", false
	default:
		return "", false
	}
}
