package jsx

import (
	"errors"
	"fmt"
	"html"
	"path/filepath"
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// Dialect selects the grammar used to parse a document.
type Dialect int

const (
	DialectJSX Dialect = iota
	DialectTSX
	DialectTypeScript
)

func (d Dialect) String() string {
	switch d {
	case DialectTSX:
		return "tsx"
	case DialectTypeScript:
		return "typescript"
	default:
		return "jsx"
	}
}

// DialectForPath picks the grammar from a file extension.
func DialectForPath(path string) Dialect {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsx":
		return DialectTSX
	case ".ts", ".mts", ".cts":
		return DialectTypeScript
	default:
		return DialectJSX
	}
}

func (d Dialect) language() *ts.Language {
	switch d {
	case DialectTSX:
		return ts.NewLanguage(tree_sitter_typescript.LanguageTSX())
	case DialectTypeScript:
		return ts.NewLanguage(tree_sitter_typescript.LanguageTypescript())
	default:
		return ts.NewLanguage(tree_sitter_javascript.Language())
	}
}

// ErrSyntax is returned (wrapped in a *SyntaxError) when the source does
// not parse cleanly.
var ErrSyntax = errors.New("syntax error")

// SyntaxError reports the first error node found in the parse tree.
type SyntaxError struct {
	Offset int
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v at %d:%d", ErrSyntax, e.Line, e.Column)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// Parse parses src with the grammar for dialect and converts the result
// into the typed model. The tree-sitter tree is released before returning.
func Parse(src []byte, dialect Dialect) (*File, error) {
	parser := ts.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(dialect.language()); err != nil {
		return nil, fmt.Errorf("load %s grammar: %w", dialect, err)
	}

	tree := parser.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("parse %s: %w", dialect, ErrSyntax)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		offset := firstErrorOffset(root)
		line, col := LineColumn(src, offset)
		return nil, &SyntaxError{Offset: offset, Line: line, Column: col}
	}

	f := &File{Source: src, Dialect: dialect}
	f.span = spanOf(root)
	b := &builder{src: src}
	f.Body = b.nodes(root, f)
	return f, nil
}

// firstErrorOffset finds the start of the first ERROR or MISSING node.
func firstErrorOffset(n *ts.Node) int {
	if n.IsError() || n.IsMissing() {
		return int(n.StartByte())
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child != nil && child.HasError() {
			return firstErrorOffset(child)
		}
	}
	return int(n.StartByte())
}

func spanOf(n *ts.Node) Span {
	return Span{Start: int(n.StartByte()), End: int(n.EndByte())}
}

// builder converts tree-sitter nodes into the typed model.
type builder struct {
	src []byte
}

func (b *builder) text(n *ts.Node) string {
	return string(b.src[n.StartByte():n.EndByte()])
}

// namedChildren returns the named children of n, skipping comments.
func namedChildren(n *ts.Node) []*ts.Node {
	count := n.NamedChildCount()
	out := make([]*ts.Node, 0, count)
	for i := uint(0); i < count; i++ {
		child := n.NamedChild(i)
		if child == nil || isComment(child) {
			continue
		}
		out = append(out, child)
	}
	return out
}

func isComment(n *ts.Node) bool {
	return n.Kind() == "comment" || n.Kind() == "html_comment"
}

// nodes converts every named child of n.
func (b *builder) nodes(n *ts.Node, parent Node) []Node {
	kids := namedChildren(n)
	out := make([]Node, 0, len(kids))
	for _, child := range kids {
		out = append(out, b.node(child, parent))
	}
	return out
}

// node converts n, handling JSX child positions before expressions.
func (b *builder) node(n *ts.Node, parent Node) Node {
	switch n.Kind() {
	case "jsx_expression":
		return b.container(n, parent)
	case "jsx_text":
		return &Text{base: base{span: spanOf(n), parent: parent}}
	default:
		return b.expr(n, parent)
	}
}

func (b *builder) expr(n *ts.Node, parent Node) Expr {
	sp := spanOf(n)
	switch n.Kind() {
	case "jsx_element", "jsx_self_closing_element":
		return b.element(n, parent)
	case "string":
		raw := b.text(n)
		return &StringLit{base: base{span: sp, parent: parent}, Raw: raw, Value: Unquote(raw)}
	case "number":
		return &NumberLit{base: base{span: sp, parent: parent}, Raw: b.text(n)}
	case "true", "false":
		return &BoolLit{base: base{span: sp, parent: parent}, Value: n.Kind() == "true"}
	case "template_string":
		return b.template(n, parent)
	case "object":
		return b.object(n, parent)
	}

	o := &Opaque{base: base{span: sp, parent: parent}, Kind: opaqueKindOf(n.Kind()), Type: n.Kind()}
	o.Kids = b.nodes(n, o)
	return o
}

func opaqueKindOf(kind string) OpaqueKind {
	switch kind {
	case "identifier", "this", "undefined", "null":
		return OpaqueIdentifier
	case "call_expression", "new_expression":
		return OpaqueCall
	case "member_expression", "subscript_expression":
		return OpaqueMember
	case "ternary_expression":
		return OpaqueConditional
	case "binary_expression":
		return OpaqueBinary
	case "arrow_function", "function_expression", "function", "generator_function":
		return OpaqueFunction
	case "spread_element":
		return OpaqueSpread
	default:
		return OpaqueOther
	}
}

func (b *builder) template(n *ts.Node, parent Node) *TemplateLit {
	sp := spanOf(n)
	t := &TemplateLit{base: base{span: sp, parent: parent}}
	if sp.Len() >= 2 {
		t.Content = string(b.src[sp.Start+1 : sp.End-1])
	}
	for _, child := range namedChildren(n) {
		if child.Kind() != "template_substitution" {
			continue
		}
		for _, inner := range namedChildren(child) {
			t.Substitutions = append(t.Substitutions, b.expr(inner, t))
		}
	}
	return t
}

func (b *builder) container(n *ts.Node, parent Node) *ExprContainer {
	c := &ExprContainer{base: base{span: spanOf(n), parent: parent}}
	if kids := namedChildren(n); len(kids) > 0 {
		c.Expr = b.expr(kids[0], c)
	}
	return c
}

func (b *builder) element(n *ts.Node, parent Node) *Element {
	el := &Element{base: base{span: spanOf(n), parent: parent}}

	if n.Kind() == "jsx_self_closing_element" {
		el.SelfClosing = true
		el.OpenTag = el.span
		b.tag(el, n)
		return el
	}

	for _, child := range namedChildren(n) {
		switch child.Kind() {
		case "jsx_opening_element":
			el.OpenTag = spanOf(child)
			b.tag(el, child)
		case "jsx_closing_element":
			el.CloseTag = spanOf(child)
		default:
			el.Body = append(el.Body, b.node(child, el))
		}
	}
	return el
}

// tag fills the name and attributes from an opening or self-closing tag.
func (b *builder) tag(el *Element, n *ts.Node) {
	for _, child := range namedChildren(n) {
		switch child.Kind() {
		case "jsx_attribute":
			el.Attributes = append(el.Attributes, b.attribute(child, el))
		case "jsx_expression":
			attr := &Attribute{base: base{span: spanOf(child), parent: el}, Spread: true}
			attr.Value = b.container(child, attr)
			el.Attributes = append(el.Attributes, attr)
		case "type_arguments":
		default:
			if el.Name == "" {
				el.Name = b.text(child)
				el.NameSpan = spanOf(child)
			}
		}
	}
}

func (b *builder) attribute(n *ts.Node, parent Node) *Attribute {
	attr := &Attribute{base: base{span: spanOf(n), parent: parent}}
	kids := namedChildren(n)
	if len(kids) == 0 {
		return attr
	}
	attr.Name = b.text(kids[0])
	attr.NameSpan = spanOf(kids[0])
	if len(kids) < 2 {
		return attr
	}

	value := kids[1]
	switch value.Kind() {
	case "string":
		raw := b.text(value)
		attr.Value = &StringLit{
			base:  base{span: spanOf(value), parent: attr},
			Raw:   raw,
			Value: html.UnescapeString(trimQuotes(raw)),
		}
	case "jsx_expression":
		attr.Value = b.container(value, attr)
	case "jsx_element", "jsx_self_closing_element":
		attr.Value = b.element(value, attr)
	}
	return attr
}

func (b *builder) object(n *ts.Node, parent Node) *ObjectLit {
	obj := &ObjectLit{base: base{span: spanOf(n), parent: parent}}
	for _, child := range namedChildren(n) {
		obj.Properties = append(obj.Properties, b.property(child, obj))
	}
	return obj
}

func (b *builder) property(n *ts.Node, parent Node) Property {
	sp := spanOf(n)
	switch n.Kind() {
	case "pair":
		p := &KeyedProperty{base: base{span: sp, parent: parent}}
		if key := n.ChildByFieldName("key"); key != nil {
			p.KeySpan = spanOf(key)
			p.Key = b.text(key)
			switch key.Kind() {
			case "string":
				p.KeyKind = KeyString
				p.Key = Unquote(p.Key)
			case "number":
				p.KeyKind = KeyNumber
			case "computed_property_name":
				p.KeyKind = KeyComputed
				if kids := namedChildren(key); len(kids) > 0 {
					p.KeyExpr = b.expr(kids[0], p)
				}
			default:
				p.KeyKind = KeyIdentifier
			}
		}
		if value := n.ChildByFieldName("value"); value != nil {
			p.Value = b.expr(value, p)
		}
		return p
	case "spread_element":
		p := &SpreadProperty{base: base{span: sp, parent: parent}}
		if kids := namedChildren(n); len(kids) > 0 {
			p.Argument = b.expr(kids[0], p)
		}
		return p
	default:
		p := &OtherProperty{base: base{span: sp, parent: parent}}
		p.Kids = b.nodes(n, p)
		return p
	}
}
