// Package jsx provides a small typed view over a JSX/TSX syntax tree.
//
// The tree is produced by tree-sitter and converted into a closed set of
// node types. Only the shapes needed to locate elements and analyse inline
// style objects get dedicated types; every other construct is kept as an
// Opaque node so that elements nested in arbitrary expressions stay
// reachable. Every node carries its byte span and a back reference to its
// parent.
package jsx

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether offset lies within the span. The end is
// inclusive: a cursor placed right after a node still resolves to it.
func (s Span) Contains(offset int) bool {
	return s.Start <= offset && offset <= s.End
}

// Text returns the source bytes covered by the span.
func (s Span) Text(src []byte) string {
	return string(src[s.Start:s.End])
}

// Node is implemented by every node of the tree.
type Node interface {
	Span() Span
	Parent() Node
	Children() []Node
	node()
}

// Expr is implemented by expression nodes.
type Expr interface {
	Node
	expr()
}

// AttrValue is implemented by the nodes that can appear after `=` in an
// attribute: a string, an expression container or an element.
type AttrValue interface {
	Node
	attrValue()
}

// Property is implemented by the entries of an object literal.
type Property interface {
	Node
	property()
}

type base struct {
	span   Span
	parent Node
}

func (b *base) Span() Span   { return b.span }
func (b *base) Parent() Node { return b.parent }
func (*base) node()          {}

// File is the root of a parsed document.
type File struct {
	base
	Source  []byte
	Dialect Dialect
	Body    []Node
}

// Children returns the top-level statements.
func (f *File) Children() []Node { return f.Body }

// Element is a JSX element. Paired (`<a>..</a>`) and self-closing (`<a/>`)
// elements share this type; for self-closing elements OpenTag covers the
// whole element and Body is empty. Fragments have an empty Name.
type Element struct {
	base
	Name        string
	NameSpan    Span
	SelfClosing bool
	OpenTag     Span
	CloseTag    Span
	Attributes  []*Attribute
	Body        []Node
}

// Children returns the attributes followed by the element's body.
func (e *Element) Children() []Node {
	out := make([]Node, 0, len(e.Attributes)+len(e.Body))
	for _, a := range e.Attributes {
		out = append(out, a)
	}
	return append(out, e.Body...)
}

// Attribute returns the first non-spread attribute named name, or nil.
func (e *Element) Attribute(name string) *Attribute {
	for _, a := range e.Attributes {
		if !a.Spread && a.Name == name {
			return a
		}
	}
	return nil
}

// StyleObject returns the `style` attribute and its object literal when the
// element carries `style={{ ... }}`. Both are nil otherwise.
func (e *Element) StyleObject() (*Attribute, *ObjectLit) {
	attr := e.Attribute("style")
	if attr == nil {
		return nil, nil
	}
	container, ok := attr.Value.(*ExprContainer)
	if !ok {
		return nil, nil
	}
	obj, ok := container.Expr.(*ObjectLit)
	if !ok {
		return nil, nil
	}
	return attr, obj
}

func (*Element) expr()      {}
func (*Element) attrValue() {}

// Attribute is a JSX attribute. Value is nil for boolean shorthand
// (`<input disabled>`). Spread attributes (`{...props}`) have Spread set and
// no name.
type Attribute struct {
	base
	Name     string
	NameSpan Span
	Spread   bool
	Value    AttrValue
}

// Children returns the attribute value, if any.
func (a *Attribute) Children() []Node {
	if a.Value == nil {
		return nil
	}
	return []Node{a.Value}
}

// ExprContainer is a `{ expr }` in attribute or child position. Expr is nil
// for an empty container.
type ExprContainer struct {
	base
	Expr Expr
}

// Children returns the wrapped expression.
func (c *ExprContainer) Children() []Node {
	if c.Expr == nil {
		return nil
	}
	return []Node{c.Expr}
}

func (*ExprContainer) attrValue() {}

// Text is literal text between JSX tags.
type Text struct {
	base
}

// Children returns nil.
func (*Text) Children() []Node { return nil }

// StringLit is a quoted string. Value holds the decoded contents; for JSX
// attribute strings, which have no backslash escapes, it is the text between
// quotes with HTML character references resolved.
type StringLit struct {
	base
	Value string
	Raw   string
}

// Children returns nil.
func (*StringLit) Children() []Node { return nil }
func (*StringLit) expr()            {}
func (*StringLit) attrValue()       {}

// NumberLit is a numeric literal. Raw is its source text.
type NumberLit struct {
	base
	Raw string
}

// Children returns nil.
func (*NumberLit) Children() []Node { return nil }
func (*NumberLit) expr()            {}

// BoolLit is `true` or `false`.
type BoolLit struct {
	base
	Value bool
}

// Children returns nil.
func (*BoolLit) Children() []Node { return nil }
func (*BoolLit) expr()            {}

// TemplateLit is a backtick template. Content is the raw text between the
// backticks.
type TemplateLit struct {
	base
	Content       string
	Substitutions []Expr
}

// Children returns the interpolated expressions.
func (t *TemplateLit) Children() []Node {
	out := make([]Node, 0, len(t.Substitutions))
	for _, s := range t.Substitutions {
		out = append(out, s)
	}
	return out
}

func (*TemplateLit) expr() {}

// ObjectLit is an object literal expression.
type ObjectLit struct {
	base
	Properties []Property
}

// Children returns the properties in source order.
func (o *ObjectLit) Children() []Node {
	out := make([]Node, 0, len(o.Properties))
	for _, p := range o.Properties {
		out = append(out, p)
	}
	return out
}

func (*ObjectLit) expr() {}

// KeyKind tells how a property key was written.
type KeyKind int

const (
	KeyIdentifier KeyKind = iota // color: ...
	KeyString                    // 'background-color': ...
	KeyNumber                    // 1: ...
	KeyComputed                  // [expr]: ...
)

// KeyedProperty is a `key: value` entry. Key is the identifier text or the
// decoded string for identifier and string keys, and the raw source text
// for numeric and computed keys.
type KeyedProperty struct {
	base
	Key     string
	KeyKind KeyKind
	KeySpan Span
	KeyExpr Expr // computed keys only
	Value   Expr
}

// Children returns the computed key expression, if any, and the value.
func (p *KeyedProperty) Children() []Node {
	var out []Node
	if p.KeyExpr != nil {
		out = append(out, p.KeyExpr)
	}
	if p.Value != nil {
		out = append(out, p.Value)
	}
	return out
}

func (*KeyedProperty) property() {}

// SpreadProperty is a `...expr` entry.
type SpreadProperty struct {
	base
	Argument Expr
}

// Children returns the spread argument.
func (p *SpreadProperty) Children() []Node {
	if p.Argument == nil {
		return nil
	}
	return []Node{p.Argument}
}

func (*SpreadProperty) property() {}

// OtherProperty covers methods, accessors and shorthand entries.
type OtherProperty struct {
	base
	Kids []Node
}

// Children returns the converted sub-nodes.
func (p *OtherProperty) Children() []Node { return p.Kids }
func (*OtherProperty) property()          {}

// OpaqueKind classifies nodes the model does not look into.
type OpaqueKind int

const (
	OpaqueOther OpaqueKind = iota
	OpaqueIdentifier
	OpaqueCall
	OpaqueMember
	OpaqueConditional
	OpaqueBinary
	OpaqueFunction
	OpaqueSpread
)

var opaqueKindNames = [...]string{
	OpaqueOther:       "other",
	OpaqueIdentifier:  "identifier",
	OpaqueCall:        "call",
	OpaqueMember:      "member",
	OpaqueConditional: "conditional",
	OpaqueBinary:      "binary",
	OpaqueFunction:    "function",
	OpaqueSpread:      "spread",
}

func (k OpaqueKind) String() string {
	if int(k) < len(opaqueKindNames) {
		return opaqueKindNames[k]
	}
	return "unknown"
}

// Opaque is any syntax node without a dedicated type. Type is the
// tree-sitter node kind.
type Opaque struct {
	base
	Kind OpaqueKind
	Type string
	Kids []Node
}

// Children returns the converted sub-nodes.
func (o *Opaque) Children() []Node { return o.Kids }
func (*Opaque) expr()             {}
