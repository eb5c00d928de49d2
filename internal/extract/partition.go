package extract

import "github.com/yacobolo/cssextract/internal/jsx"

// Style is a static declaration lifted out of an inline style. Name is kept
// exactly as written in the source (camelCase or kebab-case). Numeric is set
// when the value was a number literal, which React renders with a unit.
type Style struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Numeric bool   `json:"numeric,omitempty"`
}

// DynamicProperty is an entry that stays inline, captured verbatim.
type DynamicProperty struct {
	Span jsx.Span
	Text string
}

// Partition splits a style object's entries. Both lists keep source order
// and Total == len(Static) + len(Dynamic).
type Partition struct {
	Static  []Style
	Dynamic []DynamicProperty
	Total   int
}

// HasStatic reports whether anything can be extracted.
func (p Partition) HasStatic() bool {
	return len(p.Static) > 0
}

// PartitionStyles classifies every entry of obj. Spreads, methods,
// shorthand entries and keys that are neither identifiers nor strings are
// always dynamic, even when a computed key is itself a string literal.
func PartitionStyles(obj *jsx.ObjectLit, src []byte) Partition {
	var p Partition
	for _, prop := range obj.Properties {
		p.Total++
		if style, ok := staticProperty(prop); ok {
			p.Static = append(p.Static, style)
			continue
		}
		sp := prop.Span()
		p.Dynamic = append(p.Dynamic, DynamicProperty{Span: sp, Text: sp.Text(src)})
	}
	return p
}

func staticProperty(prop jsx.Property) (Style, bool) {
	switch v := prop.(type) {
	case *jsx.KeyedProperty:
		if v.KeyKind != jsx.KeyIdentifier && v.KeyKind != jsx.KeyString {
			return Style{}, false
		}
		if v.Value == nil {
			return Style{}, false
		}
		text, ok := StaticText(v.Value)
		if !ok {
			return Style{}, false
		}
		_, numeric := v.Value.(*jsx.NumberLit)
		return Style{Name: v.Key, Value: text, Numeric: numeric}, true
	case *jsx.SpreadProperty, *jsx.OtherProperty:
		return Style{}, false
	default:
		return Style{}, false
	}
}
